package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"sitebuilder/internal/domain"
)

func (s *Server) registerNavigationTools() {
	// ── get_viewport ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_viewport",
		mcp.WithDescription("Get the flow canvas pan offset, zoom and lock state"),
	), s.handleGetViewport)

	// ── set_zoom ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_zoom",
		mcp.WithDescription("Set the flow canvas zoom, clamped to 0.1-3.0. Ignored while the canvas is locked."),
		mcp.WithNumber("zoom", mcp.Description("Zoom factor"), mcp.Required()),
	), s.handleSetZoom)

	// ── pan_viewport ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("pan_viewport",
		mcp.WithDescription("Pan the flow canvas by a screen-space offset. Ignored while the canvas is locked."),
		mcp.WithNumber("dx", mcp.Description("Horizontal offset in pixels")),
		mcp.WithNumber("dy", mcp.Description("Vertical offset in pixels")),
	), s.handlePanViewport)
}

type viewportInfo struct {
	domain.Viewport
	Locked bool `json:"locked"`
}

func (s *Server) handleGetViewport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(viewportInfo{Viewport: s.flow.Viewport(), Locked: s.flow.Locked()})
}

func (s *Server) handleSetZoom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	zoom, ok := req.GetArguments()["zoom"].(float64)
	if !ok {
		return nil, fmt.Errorf("zoom is required")
	}
	vp := s.flow.SetZoom(ctx, zoom)
	return jsonResult(viewportInfo{Viewport: vp, Locked: s.flow.Locked()})
}

func (s *Server) handlePanViewport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	vp := s.flow.Pan(ctx, getFloat(args, "dx", 0), getFloat(args, "dy", 0))
	return jsonResult(viewportInfo{Viewport: vp, Locked: s.flow.Locked()})
}
