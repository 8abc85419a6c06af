package service

import (
	"context"

	"sitebuilder/internal/domain"
)

// ZoomStep is the factor applied by the zoom in and zoom out controls.
const ZoomStep = 1.2

// gestureState tracks the single mouse gesture of the current
// mouse-down/up cycle. Moves are only honored while kind is not none.
type gestureState struct {
	kind   domain.GestureKind
	pageID int
	last   domain.Point
}

var idleGesture = gestureState{kind: domain.GestureNone}

// pinchState tracks a two-finger touch gesture.
type pinchState struct {
	active   bool
	prevDist float64
}

// GestureUpdate reports what a pointer move changed.
type GestureUpdate struct {
	Gesture  domain.GestureKind `json:"gesture"`
	Viewport domain.Viewport    `json:"viewport"`
	Page     *domain.Page       `json:"page,omitempty"`
}

// Viewport returns the current pan offset and zoom.
func (s *FlowService) Viewport() domain.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// ScreenToCanvas maps a screen point into canvas space.
func (s *FlowService) ScreenToCanvas(p domain.Point) domain.Point {
	return s.Viewport().ToCanvas(p)
}

// CanvasToScreen maps a canvas point into screen space.
func (s *FlowService) CanvasToScreen(p domain.Point) domain.Point {
	return s.Viewport().ToScreen(p)
}

// Locked reports whether the canvas is locked.
func (s *FlowService) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// ToggleLock flips the lock flag and returns the new value. Locking ends any
// mouse gesture in flight.
func (s *FlowService) ToggleLock(ctx context.Context) bool {
	s.mu.Lock()
	s.locked = !s.locked
	if s.locked {
		s.gesture = idleGesture
	}
	locked := s.locked
	s.mu.Unlock()

	s.emitChanged(ctx, "lock", 0)
	return locked
}

// Pan shifts the viewport by a screen-space delta. It is a no-op while locked.
func (s *FlowService) Pan(ctx context.Context, dx, dy float64) domain.Viewport {
	s.mu.Lock()
	if s.locked {
		vp := s.viewport
		s.mu.Unlock()
		return vp
	}
	s.viewport = s.viewport.Pan(domain.Point{X: dx, Y: dy})
	vp := s.viewport
	s.mu.Unlock()

	s.emitChanged(ctx, "viewport", 0)
	return vp
}

// SetZoom sets a clamped zoom factor. It is a no-op while locked.
func (s *FlowService) SetZoom(ctx context.Context, zoom float64) domain.Viewport {
	return s.scaleZoom(ctx, func(float64) float64 { return zoom })
}

// ZoomIn multiplies the zoom by ZoomStep.
func (s *FlowService) ZoomIn(ctx context.Context) domain.Viewport {
	return s.scaleZoom(ctx, func(z float64) float64 { return z * ZoomStep })
}

// ZoomOut divides the zoom by ZoomStep.
func (s *FlowService) ZoomOut(ctx context.Context) domain.Viewport {
	return s.scaleZoom(ctx, func(z float64) float64 { return z / ZoomStep })
}

// scaleZoom reads and stores the zoom in one critical section.
func (s *FlowService) scaleZoom(ctx context.Context, next func(float64) float64) domain.Viewport {
	s.mu.Lock()
	if s.locked {
		vp := s.viewport
		s.mu.Unlock()
		return vp
	}
	s.viewport = s.viewport.WithZoom(next(s.viewport.Zoom))
	vp := s.viewport
	s.mu.Unlock()

	s.emitChanged(ctx, "viewport", 0)
	return vp
}

// ── Mouse gestures ─────────────────────────────────────────

// MouseDown starts at most one gesture for this mouse-down/up cycle.
// Background presses pan; page header presses drag that page unless some
// page title is being edited. Nothing starts while locked.
func (s *FlowService) MouseDown(ctx context.Context, target domain.PointerTarget, screen domain.Point) domain.GestureKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked || s.gesture.kind != domain.GestureNone {
		return domain.GestureNone
	}
	switch target.Kind {
	case domain.TargetBackground:
		s.gesture = gestureState{kind: domain.GesturePan, last: screen}
	case domain.TargetPageHeader:
		if s.editingPageID != 0 {
			return domain.GestureNone
		}
		if _, err := s.pages.GetPage(target.PageID); err != nil {
			return domain.GestureNone
		}
		s.gesture = gestureState{kind: domain.GesturePageDrag, pageID: target.PageID, last: screen}
	default:
		return domain.GestureNone
	}
	return s.gesture.kind
}

// MouseMove applies the pointer delta since the last event to the active
// gesture. Panning adds the raw delta to the offset; page dragging adds the
// delta divided by zoom to the page position. Without an active gesture the
// move is ignored.
func (s *FlowService) MouseMove(ctx context.Context, screen domain.Point) (GestureUpdate, error) {
	s.mu.Lock()
	g := s.gesture
	update := GestureUpdate{Gesture: g.kind, Viewport: s.viewport}
	if g.kind == domain.GestureNone {
		s.mu.Unlock()
		return update, nil
	}
	delta := screen.Sub(g.last)
	s.gesture.last = screen

	switch g.kind {
	case domain.GesturePan:
		s.viewport = s.viewport.Pan(delta)
		update.Viewport = s.viewport
	case domain.GesturePageDrag:
		p, err := s.pages.GetPage(g.pageID)
		if err != nil {
			s.gesture = idleGesture
			s.mu.Unlock()
			return update, err
		}
		p.Position = p.Position.Add(s.viewport.CanvasDelta(delta))
		if err := s.pages.UpdatePage(p); err != nil {
			s.mu.Unlock()
			return update, err
		}
		update.Page = p
	}
	s.mu.Unlock()
	return update, nil
}

// MouseUp ends the active gesture.
func (s *FlowService) MouseUp(ctx context.Context) {
	s.mu.Lock()
	ended := s.gesture.kind
	s.gesture = idleGesture
	s.mu.Unlock()
	if ended != domain.GestureNone {
		s.emitChanged(ctx, "gesture-end", 0)
	}
}

// ── Touch gestures ─────────────────────────────────────────

// TouchStart begins a pinch when exactly two touches are down. Pinch zoom
// ignores the lock flag.
func (s *FlowService) TouchStart(ctx context.Context, touches []domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(touches) != 2 {
		s.pinch = pinchState{}
		return
	}
	s.pinch = pinchState{active: true, prevDist: domain.Distance(touches[0], touches[1])}
}

// TouchMove rescales the zoom by the ratio of the current two-finger
// distance to the previous one, clamped to the zoom bounds.
func (s *FlowService) TouchMove(ctx context.Context, touches []domain.Point) domain.Viewport {
	s.mu.Lock()
	if !s.pinch.active || len(touches) != 2 {
		vp := s.viewport
		s.mu.Unlock()
		return vp
	}
	dist := domain.Distance(touches[0], touches[1])
	if s.pinch.prevDist > 0 && dist > 0 {
		s.viewport = s.viewport.WithZoom(s.viewport.Zoom * (dist / s.pinch.prevDist))
	}
	if dist > 0 {
		s.pinch.prevDist = dist
	}
	vp := s.viewport
	s.mu.Unlock()

	s.emitChanged(ctx, "viewport", 0)
	return vp
}

// TouchEnd ends the pinch.
func (s *FlowService) TouchEnd(ctx context.Context) {
	s.mu.Lock()
	s.pinch = pinchState{}
	s.mu.Unlock()
}

// ResetSession restores the viewport to identity and drops every transient
// interaction: gestures, lock, title edit and section picker. Pages survive.
func (s *FlowService) ResetSession(ctx context.Context) {
	s.mu.Lock()
	s.viewport = domain.NewViewport()
	s.locked = false
	s.gesture = idleGesture
	s.pinch = pinchState{}
	s.editingPageID = 0
	s.modal = domain.ModalClosed
	s.chosen = nil
	s.mu.Unlock()

	s.emitChanged(ctx, "reset", 0)
}
