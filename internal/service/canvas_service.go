package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"sitebuilder/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Canvas Service — placed components, selection, content editing
// ─────────────────────────────────────────────────────────────

// CanvasService owns the builder canvas state. The selection and the
// component in content-edit mode are weak references by id: they are
// resolved against the store on every read and cleared on delete.
type CanvasService struct {
	mu         sync.Mutex
	store      domain.ComponentStore
	emitter    EventEmitter
	newID      func() string
	selectedID string
	editingID  string
}

// NewCanvasService creates a CanvasService. It panics when store or emitter
// is nil: a canvas without a backing store is a wiring bug.
func NewCanvasService(store domain.ComponentStore, emitter EventEmitter) *CanvasService {
	if store == nil {
		panic("canvas service: nil component store")
	}
	if emitter == nil {
		panic("canvas service: nil event emitter")
	}
	return &CanvasService{
		store:   store,
		emitter: emitter,
		newID:   func() string { return "comp-" + uuid.NewString() },
	}
}

// AddComponent stores c under a fresh id and selects it. Any id set on c is
// ignored.
func (s *CanvasService) AddComponent(ctx context.Context, c domain.PlacedComponent) (*domain.PlacedComponent, error) {
	s.mu.Lock()
	c.ID = s.newID()
	if c.Properties == nil {
		c.Properties = map[string]any{}
	}
	if err := s.store.CreateComponent(&c); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("add component: %w", err)
	}
	s.selectedID = c.ID
	s.mu.Unlock()

	s.emitChanged(ctx, "add", c.ID)
	out := c.Clone()
	return &out, nil
}

// GetComponent returns a component by id.
func (s *CanvasService) GetComponent(id string) (*domain.PlacedComponent, error) {
	return s.store.GetComponent(id)
}

// ListComponents returns all components in insertion order.
func (s *CanvasService) ListComponents() []domain.PlacedComponent {
	return s.store.ListComponents()
}

// UpdateComponent merges patch into the component. Because the selection is
// looked up by id, a selected component reflects the update immediately.
func (s *CanvasService) UpdateComponent(ctx context.Context, id string, patch domain.ComponentPatch) (*domain.PlacedComponent, error) {
	s.mu.Lock()
	c, err := s.store.GetComponent(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	patch.Apply(c)
	if err := s.store.UpdateComponent(c); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("update component: %w", err)
	}
	s.mu.Unlock()

	s.emitChanged(ctx, "update", id)
	return c, nil
}

// MoveComponent sets the canvas position of a component.
func (s *CanvasService) MoveComponent(ctx context.Context, id string, x, y float64) (*domain.PlacedComponent, error) {
	return s.UpdateComponent(ctx, id, domain.PositionPatch(x, y))
}

// ResizeComponent sets the size of a component. Geometry is not validated.
func (s *CanvasService) ResizeComponent(ctx context.Context, id string, width, height float64) (*domain.PlacedComponent, error) {
	return s.UpdateComponent(ctx, id, domain.SizePatch(width, height))
}

// DeleteComponent removes a component, clearing the selection and edit mode
// when they point at it.
func (s *CanvasService) DeleteComponent(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.store.DeleteComponent(id); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.selectedID == id {
		s.selectedID = ""
	}
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()

	s.emitChanged(ctx, "delete", id)
	return nil
}

// SelectComponent selects id, or clears the selection when id is empty or
// unknown. It returns the new selection.
func (s *CanvasService) SelectComponent(ctx context.Context, id string) *domain.PlacedComponent {
	s.mu.Lock()
	var selected *domain.PlacedComponent
	if id != "" {
		if c, err := s.store.GetComponent(id); err == nil {
			selected = c
		}
	}
	if selected != nil {
		s.selectedID = selected.ID
	} else {
		s.selectedID = ""
	}
	selectedID := s.selectedID
	s.mu.Unlock()

	s.emitChanged(ctx, "select", selectedID)
	return selected
}

// Selected returns the selected component, or nil.
func (s *CanvasService) Selected() *domain.PlacedComponent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

// SelectedID returns the id of the selected component, or "".
func (s *CanvasService) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

func (s *CanvasService) selectedLocked() *domain.PlacedComponent {
	if s.selectedID == "" {
		return nil
	}
	c, err := s.store.GetComponent(s.selectedID)
	if err != nil {
		return nil
	}
	return c
}

// ── Content editing ────────────────────────────────────────

// BeginContentEdit puts a single component into content-edit mode. A
// component already being edited leaves edit mode without saving.
func (s *CanvasService) BeginContentEdit(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, err := s.store.GetComponent(id); err != nil {
		s.mu.Unlock()
		return err
	}
	s.editingID = id
	s.mu.Unlock()

	s.emitChanged(ctx, "edit", id)
	return nil
}

// CommitContentEdit saves the edited text and leaves edit mode.
func (s *CanvasService) CommitContentEdit(ctx context.Context, id, content string) (*domain.PlacedComponent, error) {
	c, err := s.UpdateComponent(ctx, id, domain.ContentPatch(content))
	s.mu.Lock()
	if s.editingID == id {
		s.editingID = ""
	}
	s.mu.Unlock()
	return c, err
}

// CancelContentEdit leaves edit mode without saving.
func (s *CanvasService) CancelContentEdit(ctx context.Context) {
	s.mu.Lock()
	id := s.editingID
	s.editingID = ""
	s.mu.Unlock()
	if id != "" {
		s.emitChanged(ctx, "edit", "")
	}
}

// EditingID returns the id of the component in content-edit mode, or "".
func (s *CanvasService) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *CanvasService) emitChanged(ctx context.Context, reason, id string) {
	s.emitter.Emit(ctx, EventCanvasChanged, map[string]string{
		"reason":      reason,
		"componentId": id,
	})
}
