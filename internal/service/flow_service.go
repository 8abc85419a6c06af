package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sitebuilder/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Flow Service — pages, sections and the flow canvas viewport
// ─────────────────────────────────────────────────────────────

// FlowService owns the flow canvas: the page nodes and their sections, the
// title-edit and section-picker state machines, the viewport and the mouse
// and touch gestures acting on it.
type FlowService struct {
	mu      sync.Mutex
	pages   domain.PageStore
	catalog domain.Catalog
	emitter EventEmitter

	// Title editing: at most one page process-wide.
	editingPageID int

	// Section picker.
	currentPageID int
	modal         domain.ModalStep
	chosen        *domain.SectionTemplate

	// Viewport and gestures, reset per session.
	viewport domain.Viewport
	locked   bool
	gesture  gestureState
	pinch    pinchState
}

// InitialPage is the page a fresh flow canvas starts with.
var InitialPage = domain.Page{ID: 1, Title: "Home", Position: domain.Point{X: 300, Y: 200}}

// NewFlowService creates a FlowService. An empty store is seeded with
// InitialPage.
func NewFlowService(pages domain.PageStore, emitter EventEmitter) *FlowService {
	if pages == nil {
		panic("flow service: nil page store")
	}
	if emitter == nil {
		panic("flow service: nil event emitter")
	}
	if pages.CountPages() == 0 {
		seed := InitialPage.Clone()
		if err := pages.CreatePage(&seed); err != nil {
			panic(fmt.Sprintf("flow service: seed page: %v", err))
		}
	}
	return &FlowService{
		pages:    pages,
		catalog:  domain.DefaultCatalog(),
		emitter:  emitter,
		modal:    domain.ModalClosed,
		viewport: domain.NewViewport(),
		gesture:  idleGesture,
	}
}

// Catalog returns the section and layout catalog.
func (s *FlowService) Catalog() domain.Catalog {
	return s.catalog
}

// ListPages returns all pages ordered by id.
func (s *FlowService) ListPages() []domain.Page {
	return s.pages.ListPages()
}

// GetPage returns a page by id.
func (s *FlowService) GetPage(id int) (*domain.Page, error) {
	return s.pages.GetPage(id)
}

// ── Pages ──────────────────────────────────────────────────

// AddPage creates a page next to sourceID. The new page gets the next id in
// sequence, keeps the source's row (or column, for bottom) and becomes the
// current page.
func (s *FlowService) AddPage(ctx context.Context, dir domain.Direction, sourceID int) (*domain.Page, error) {
	offset, ok := dir.Offset()
	if !ok {
		return nil, fmt.Errorf("add page %q: %w", dir, domain.ErrUnknownDirection)
	}

	s.mu.Lock()
	src, err := s.pages.GetPage(sourceID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("add page: %w", err)
	}
	id := s.pages.CountPages() + 1
	p := &domain.Page{
		ID:       id,
		Title:    fmt.Sprintf("Page %d", id),
		Sections: []domain.Section{},
		Position: src.Position.Add(offset),
	}
	if err := s.pages.CreatePage(p); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("add page: %w", err)
	}
	s.currentPageID = id
	s.mu.Unlock()

	s.emitChanged(ctx, "page-added", id)
	return p, nil
}

// ── Section picker ─────────────────────────────────────────

// OpenSectionPicker starts the two-step section picker for pageID. Opening
// it again restarts at the section step.
func (s *FlowService) OpenSectionPicker(ctx context.Context, pageID int) error {
	if _, err := s.pages.GetPage(pageID); err != nil {
		return err
	}
	s.mu.Lock()
	s.currentPageID = pageID
	s.modal = domain.ModalPickingSection
	s.chosen = nil
	s.mu.Unlock()

	s.emitChanged(ctx, "modal", pageID)
	return nil
}

// ChooseSection records the section type and advances to the layout step.
func (s *FlowService) ChooseSection(ctx context.Context, sectionID int) error {
	tmpl, ok := s.catalog.Section(sectionID)
	if !ok {
		return fmt.Errorf("choose section %d: %w", sectionID, domain.ErrUnknownSection)
	}
	s.mu.Lock()
	if s.modal != domain.ModalPickingSection {
		step := s.modal
		s.mu.Unlock()
		return fmt.Errorf("choose section while %s: %w", step, domain.ErrModalState)
	}
	s.chosen = &tmpl
	s.modal = domain.ModalPickingLayout
	pageID := s.currentPageID
	s.mu.Unlock()

	s.emitChanged(ctx, "modal", pageID)
	return nil
}

// ChooseLayout appends the chosen section with layoutID to the current page
// and closes the picker.
func (s *FlowService) ChooseLayout(ctx context.Context, layoutID int) (*domain.Page, error) {
	if _, ok := s.catalog.Layout(layoutID); !ok {
		return nil, fmt.Errorf("choose layout %d: %w", layoutID, domain.ErrUnknownLayout)
	}
	s.mu.Lock()
	if s.modal != domain.ModalPickingLayout || s.chosen == nil {
		step := s.modal
		s.mu.Unlock()
		return nil, fmt.Errorf("choose layout while %s: %w", step, domain.ErrModalState)
	}
	p, err := s.appendSectionLocked(s.currentPageID, *s.chosen, layoutID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.modal = domain.ModalClosed
	s.chosen = nil
	s.mu.Unlock()

	s.emitChanged(ctx, "section-added", p.ID)
	return p, nil
}

// CloseModal closes the picker at any step, discarding the selection.
func (s *FlowService) CloseModal(ctx context.Context) {
	s.mu.Lock()
	wasOpen := s.modal != domain.ModalClosed
	s.modal = domain.ModalClosed
	s.chosen = nil
	pageID := s.currentPageID
	s.mu.Unlock()
	if wasOpen {
		s.emitChanged(ctx, "modal", pageID)
	}
}

// AddSection appends a section to a page without going through the picker.
// The picker state is left untouched.
func (s *FlowService) AddSection(ctx context.Context, pageID, sectionID, layoutID int) (*domain.Page, error) {
	tmpl, ok := s.catalog.Section(sectionID)
	if !ok {
		return nil, fmt.Errorf("add section %d: %w", sectionID, domain.ErrUnknownSection)
	}
	if _, ok := s.catalog.Layout(layoutID); !ok {
		return nil, fmt.Errorf("add section layout %d: %w", layoutID, domain.ErrUnknownLayout)
	}
	s.mu.Lock()
	p, err := s.appendSectionLocked(pageID, tmpl, layoutID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.emitChanged(ctx, "section-added", pageID)
	return p, nil
}

// appendSectionLocked assigns the section id as the page's section count + 1.
// There is no section delete, so the sequence never repeats within a page.
func (s *FlowService) appendSectionLocked(pageID int, tmpl domain.SectionTemplate, layoutID int) (*domain.Page, error) {
	p, err := s.pages.GetPage(pageID)
	if err != nil {
		return nil, fmt.Errorf("append section: %w", err)
	}
	p.Sections = append(p.Sections, domain.Section{
		ID:       len(p.Sections) + 1,
		Title:    tmpl.Title,
		LayoutID: layoutID,
	})
	if err := s.pages.UpdatePage(p); err != nil {
		return nil, fmt.Errorf("append section: %w", err)
	}
	return p, nil
}

// ── Title editing ──────────────────────────────────────────

// StartTitleEdit puts pageID into title-edit mode, taking it away from any
// other page. Page dragging is suspended while a title is being edited.
func (s *FlowService) StartTitleEdit(ctx context.Context, pageID int) error {
	if _, err := s.pages.GetPage(pageID); err != nil {
		return err
	}
	s.mu.Lock()
	s.editingPageID = pageID
	if s.gesture.kind == domain.GesturePageDrag {
		s.gesture = idleGesture
	}
	s.mu.Unlock()

	s.emitChanged(ctx, "title-edit", pageID)
	return nil
}

// CommitTitleEdit stores the trimmed title and leaves edit mode. A blank
// title leaves the page unchanged.
func (s *FlowService) CommitTitleEdit(ctx context.Context, pageID int, title string) (*domain.Page, error) {
	s.mu.Lock()
	if s.editingPageID != pageID {
		s.mu.Unlock()
		return nil, fmt.Errorf("commit title for page %d: %w", pageID, domain.ErrNotEditing)
	}
	s.editingPageID = 0
	p, err := s.renameLocked(pageID, title)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.emitChanged(ctx, "title-edit", pageID)
	return p, nil
}

// CancelTitleEdit leaves edit mode without changing the title.
func (s *FlowService) CancelTitleEdit(ctx context.Context) {
	s.mu.Lock()
	pageID := s.editingPageID
	s.editingPageID = 0
	s.mu.Unlock()
	if pageID != 0 {
		s.emitChanged(ctx, "title-edit", pageID)
	}
}

// RenamePage sets a page title outside the edit state machine. Blank titles
// are ignored in the same way as in CommitTitleEdit.
func (s *FlowService) RenamePage(ctx context.Context, pageID int, title string) (*domain.Page, error) {
	s.mu.Lock()
	p, err := s.renameLocked(pageID, title)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.emitChanged(ctx, "renamed", pageID)
	return p, nil
}

func (s *FlowService) renameLocked(pageID int, title string) (*domain.Page, error) {
	p, err := s.pages.GetPage(pageID)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return p, nil
	}
	p.Title = trimmed
	if err := s.pages.UpdatePage(p); err != nil {
		return nil, fmt.Errorf("rename page: %w", err)
	}
	return p, nil
}

// ── State ──────────────────────────────────────────────────

// State returns the full flow canvas state for rendering.
func (s *FlowService) State() domain.FlowState {
	pages := s.pages.ListPages()
	s.mu.Lock()
	defer s.mu.Unlock()
	st := domain.FlowState{
		Pages:           pages,
		Viewport:        s.viewport,
		Locked:          s.locked,
		EditingPageID:   s.editingPageID,
		CurrentPageID:   s.currentPageID,
		Modal:           s.modal,
		Gesture:         s.gesture.kind,
		PinchInProgress: s.pinch.active,
	}
	if s.chosen != nil {
		chosen := *s.chosen
		st.ChosenSection = &chosen
	}
	if s.gesture.kind == domain.GesturePageDrag {
		st.DraggingPageID = s.gesture.pageID
	}
	return st
}

func (s *FlowService) emitChanged(ctx context.Context, reason string, pageID int) {
	s.emitter.Emit(ctx, EventFlowChanged, map[string]any{
		"reason": reason,
		"pageId": pageID,
	})
}
