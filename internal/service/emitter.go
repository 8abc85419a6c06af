package service

import (
	"context"
	"sync"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from wailsRuntime
// ─────────────────────────────────────────────────────────────

// Events emitted to the frontend after state changes.
const (
	EventCanvasChanged   = "canvas:changed"
	EventFlowChanged     = "flow:changed"
	EventSettingsChanged = "settings:changed"
)

// EventEmitter is an interface for emitting events to the frontend.
// The App struct implements this by delegating to wailsRuntime.EventsEmit.
// Services receive this interface instead of a wailsRuntime context,
// which makes them independently testable with a mock emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// NopEmitter discards every event. Used when no frontend is attached.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, any) {}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// Count returns how many times event was emitted.
func (m *MockEmitter) Count(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Events {
		if e.Event == event {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (m *MockEmitter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = nil
}
