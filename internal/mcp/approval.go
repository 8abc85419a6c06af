package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventApprovalRequired asks the view to confirm a destructive tool call.
// EventApprovalDismissed tells it the request expired.
const (
	EventApprovalRequired  = "mcp:approval-required"
	EventApprovalDismissed = "mcp:approval-dismissed"
)

// EventEmitter allows the approval queue to notify the frontend.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// PendingAction represents a destructive operation awaiting user approval.
type PendingAction struct {
	ID          string `json:"id"`
	Tool        string `json:"tool"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	Metadata    string `json:"metadata"` // JSON with extra context (e.g. component IDs)
}

// actionResult is sent through the channel when user approves/rejects.
type actionResult struct {
	approved bool
}

type pendingEntry struct {
	action PendingAction
	ch     chan actionResult
}

// ApprovalQueue manages human-in-the-loop approval for destructive MCP tool
// calls. Requests block until the view answers through Approve or Reject,
// the timeout passes, or the context is cancelled.
type ApprovalQueue struct {
	mu          sync.Mutex
	pending     map[string]pendingEntry
	ctx         context.Context
	emitter     EventEmitter
	timeout     time.Duration
	autoApprove bool
}

func NewApprovalQueue(ctx context.Context, emitter EventEmitter) *ApprovalQueue {
	return &ApprovalQueue{
		pending: make(map[string]pendingEntry),
		ctx:     ctx,
		emitter: emitter,
		timeout: 120 * time.Second,
	}
}

// SetAutoApprove makes every request succeed without asking.
func (q *ApprovalQueue) SetAutoApprove(v bool) {
	q.mu.Lock()
	q.autoApprove = v
	q.mu.Unlock()
}

// SetTimeout changes how long a request waits for an answer.
func (q *ApprovalQueue) SetTimeout(d time.Duration) {
	q.mu.Lock()
	q.timeout = d
	q.mu.Unlock()
}

// Request sends an approval request and blocks until approved/rejected.
// metadata is optional JSON with extra context (e.g. component IDs for highlighting).
func (q *ApprovalQueue) Request(ctx context.Context, tool, description string, metadata ...string) (bool, error) {
	q.mu.Lock()
	auto, timeout := q.autoApprove, q.timeout
	q.mu.Unlock()
	if auto {
		return true, nil
	}

	meta := "{}"
	if len(metadata) > 0 && metadata[0] != "" {
		meta = metadata[0]
	}
	action := PendingAction{
		ID:          uuid.New().String(),
		Tool:        tool,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Metadata:    meta,
	}
	ch := make(chan actionResult, 1)

	q.mu.Lock()
	q.pending[action.ID] = pendingEntry{action: action, ch: ch}
	q.mu.Unlock()
	defer q.cleanup(action.ID)

	q.emitter.Emit(q.ctx, EventApprovalRequired, action)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-ch:
		if !result.approved {
			return false, fmt.Errorf("action rejected by user: %s", tool)
		}
		return true, nil
	case <-timer.C:
		q.emitter.Emit(q.ctx, EventApprovalDismissed, map[string]string{"id": action.ID})
		return false, fmt.Errorf("action timed out after %s: %s", timeout, tool)
	case <-ctx.Done():
		q.emitter.Emit(q.ctx, EventApprovalDismissed, map[string]string{"id": action.ID})
		return false, fmt.Errorf("approval for %s: %w", tool, ctx.Err())
	case <-q.ctx.Done():
		return false, fmt.Errorf("approval for %s: %w", tool, q.ctx.Err())
	}
}

// Approve marks a pending action as approved.
func (q *ApprovalQueue) Approve(actionID string) {
	q.resolve(actionID, true)
}

// Reject marks a pending action as rejected.
func (q *ApprovalQueue) Reject(actionID string) {
	q.resolve(actionID, false)
}

func (q *ApprovalQueue) resolve(actionID string, approved bool) {
	q.mu.Lock()
	entry, ok := q.pending[actionID]
	q.mu.Unlock()
	if !ok {
		return
	}
	select {
	case entry.ch <- actionResult{approved: approved}:
	default: // already answered
	}
}

// Pending returns the outstanding requests, oldest first.
func (q *ApprovalQueue) Pending() []PendingAction {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]PendingAction, 0, len(q.pending))
	for _, e := range q.pending {
		out = append(out, e.action)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out
}

func (q *ApprovalQueue) cleanup(id string) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}
