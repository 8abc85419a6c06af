package service

import (
	"context"
	"fmt"
	"sync"

	"sitebuilder/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Builder Service — drag-and-drop onto the builder canvas
// ─────────────────────────────────────────────────────────────

// BuilderService turns drag gestures into create or move operations on the
// canvas. Pointer positions arrive in client coordinates together with the
// canvas bounding box the view measured, so no layout lookup happens here.
type BuilderService struct {
	canvas  *CanvasService
	palette domain.Palette
	emitter EventEmitter

	mu     sync.Mutex
	device domain.Device
}

// NewBuilderService creates a BuilderService on top of canvas.
func NewBuilderService(canvas *CanvasService, emitter EventEmitter) *BuilderService {
	if canvas == nil {
		panic("builder service: nil canvas service")
	}
	if emitter == nil {
		panic("builder service: nil event emitter")
	}
	return &BuilderService{
		canvas:  canvas,
		palette: domain.DefaultPalette(),
		emitter: emitter,
		device:  domain.DeviceDesktop,
	}
}

// Palette returns the draggable palette entries.
func (s *BuilderService) Palette() domain.Palette {
	return s.palette
}

// Drop handles the end of a drag over the canvas. An item with an id is
// moved to the drop point; an item without one becomes a new component
// there.
func (s *BuilderService) Drop(ctx context.Context, item domain.DragItem, pointer domain.Point, canvas domain.CanvasRect) (*domain.PlacedComponent, error) {
	at := canvas.Local(pointer)
	if item.IsMove() {
		return s.canvas.MoveComponent(ctx, item.ID, at.X, at.Y)
	}
	return s.Place(ctx, item, at)
}

// Hover repositions a placed component while it is dragged over the canvas.
// Palette items are ignored: hovering never creates anything.
func (s *BuilderService) Hover(ctx context.Context, item domain.DragItem, pointer domain.Point, canvas domain.CanvasRect) (*domain.PlacedComponent, error) {
	if !item.IsMove() {
		return nil, nil
	}
	at := canvas.Local(pointer)
	return s.canvas.MoveComponent(ctx, item.ID, at.X, at.Y)
}

// Place creates a component for item at a canvas-space position with the
// default content and size for its type. Missing name and icon are filled
// from the palette.
func (s *BuilderService) Place(ctx context.Context, item domain.DragItem, at domain.Point) (*domain.PlacedComponent, error) {
	if entry, ok := s.palette.Lookup(item.Type); ok {
		if item.Name == "" {
			item.Name = entry.Name
		}
		if item.Icon == "" {
			item.Icon = entry.Icon
		}
	}
	w, h := domain.DefaultSize(item.Type)
	return s.canvas.AddComponent(ctx, domain.PlacedComponent{
		Type:       item.Type,
		Name:       item.Name,
		Icon:       item.Icon,
		Content:    domain.DefaultContent(item.Type),
		X:          at.X,
		Y:          at.Y,
		Width:      w,
		Height:     h,
		Properties: map[string]any{},
	})
}

// SetDevice switches the canvas frame preset.
func (s *BuilderService) SetDevice(ctx context.Context, d domain.Device) error {
	if !domain.ValidDevice(d) {
		return fmt.Errorf("set device %q: %w", d, domain.ErrInvalidDevice)
	}
	s.mu.Lock()
	s.device = d
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventCanvasChanged, map[string]string{"reason": "device", "device": string(d)})
	return nil
}

// Device returns the active canvas frame preset.
func (s *BuilderService) Device() domain.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// State returns the full builder canvas state for rendering.
func (s *BuilderService) State() domain.BuilderState {
	d := s.Device()
	components := s.canvas.ListComponents()
	if components == nil {
		components = []domain.PlacedComponent{}
	}
	return domain.BuilderState{
		Components: components,
		Selected:   s.canvas.Selected(),
		EditingID:  s.canvas.EditingID(),
		Device:     d,
		CanvasSize: domain.DeviceSize(d),
	}
}
