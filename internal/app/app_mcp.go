package app

import mcpserver "sitebuilder/internal/mcp"

// ============================================================
// MCP approvals
// ============================================================

// ApproveAction lets a pending destructive agent call proceed.
func (a *App) ApproveAction(actionID string) error {
	if a.mcp == nil {
		return ErrNotStarted
	}
	a.mcp.Approve(actionID)
	return nil
}

// RejectAction refuses a pending destructive agent call.
func (a *App) RejectAction(actionID string) error {
	if a.mcp == nil {
		return ErrNotStarted
	}
	a.mcp.Reject(actionID)
	return nil
}

// ListPendingActions returns approvals the view has not answered yet, so a
// reloaded view can show them again.
func (a *App) ListPendingActions() ([]mcpserver.PendingAction, error) {
	if a.mcp == nil {
		return nil, ErrNotStarted
	}
	return a.mcp.PendingActions(), nil
}

func (a *App) GetMCPStatus() MCPStatus {
	st := MCPStatus{Enabled: a.cfg.MCP.Enabled, Addr: a.cfg.MCP.Addr}
	if a.mcp != nil {
		st.Pending = len(a.mcp.PendingActions())
	}
	return st
}
