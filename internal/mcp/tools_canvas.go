package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"sitebuilder/internal/domain"
)

func (s *Server) registerCanvasTools() {
	// ── list_components ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_components",
		mcp.WithDescription("List all components on the builder canvas in insertion order, optionally filtered by type"),
		mcp.WithString("type", mcp.Description("Filter by component type (optional)")),
	), s.handleListComponents)

	// ── add_component ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_component",
		mcp.WithDescription("Place a new component on the builder canvas. Default content and size come from its type."),
		mcp.WithString("type",
			mcp.Description("Component type: text, image, button, input, card, header, footer, section, grid, list"),
			mcp.Required(),
		),
		mcp.WithNumber("x", mcp.Description("X position in canvas pixels"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Y position in canvas pixels"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Width (optional, type default)")),
		mcp.WithNumber("height", mcp.Description("Height (optional, type default)")),
		mcp.WithString("content", mcp.Description("Initial content (optional, type default)")),
	), s.handleAddComponent)

	// ── move_component ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_component",
		mcp.WithDescription("Move a component to a new canvas position"),
		mcp.WithString("componentId", mcp.Description("Component ID"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("New X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("New Y position"), mcp.Required()),
	), s.handleMoveComponent)

	// ── resize_component ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("resize_component",
		mcp.WithDescription("Resize a component"),
		mcp.WithString("componentId", mcp.Description("Component ID"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("New width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("New height"), mcp.Required()),
	), s.handleResizeComponent)

	// ── update_component_content ───────────────────────
	s.mcp.AddTool(mcp.NewTool("update_component_content",
		mcp.WithDescription("Replace the content text of a component. Optionally replace its properties with a JSON object."),
		mcp.WithString("componentId", mcp.Description("Component ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New content"), mcp.Required()),
		mcp.WithString("properties", mcp.Description("JSON object replacing the component's properties (optional)")),
	), s.handleUpdateComponentContent)

	// ── select_component ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("select_component",
		mcp.WithDescription("Select a component in the view. An empty or unknown ID clears the selection."),
		mcp.WithString("componentId", mcp.Description("Component ID (empty to clear)")),
	), s.handleSelectComponent)

	// ── delete_component (destructive) ─────────────────
	s.mcp.AddTool(mcp.NewTool("delete_component",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a component. Requires user approval."),
		mcp.WithString("componentId", mcp.Description("Component ID to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteComponent)
}

// ── Handlers ───────────────────────────────────────────────

type componentSummary struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Preview string  `json:"preview"` // first 200 chars of content
}

func summarizeComponent(c domain.PlacedComponent) componentSummary {
	preview := c.Content
	if r := []rune(preview); len(r) > 200 {
		preview = string(r[:200]) + "..."
	}
	return componentSummary{
		ID:      c.ID,
		Type:    string(c.Type),
		Name:    c.Name,
		X:       c.X,
		Y:       c.Y,
		Width:   c.Width,
		Height:  c.Height,
		Preview: preview,
	}
}

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filterType := req.GetString("type", "")
	summaries := []componentSummary{}
	for _, c := range s.canvas.ListComponents() {
		if filterType != "" && string(c.Type) != filterType {
			continue
		}
		summaries = append(summaries, summarizeComponent(c))
	}
	return jsonResult(summaries)
}

func (s *Server) handleAddComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	typ, _ := getString(args, "type")
	if typ == "" {
		return nil, fmt.Errorf("type is required")
	}
	x, hasX := args["x"].(float64)
	y, hasY := args["y"].(float64)
	if !hasX || !hasY {
		return nil, fmt.Errorf("x and y are required")
	}

	c, err := s.builder.Place(ctx, domain.DragItem{Type: domain.ComponentType(typ)}, domain.Point{X: x, Y: y})
	if err != nil {
		return nil, fmt.Errorf("add component: %w", err)
	}

	var patch domain.ComponentPatch
	changed := false
	if w, ok := args["width"].(float64); ok {
		patch.Width = &w
		changed = true
	}
	if h, ok := args["height"].(float64); ok {
		patch.Height = &h
		changed = true
	}
	if content, ok := getString(args, "content"); ok && content != "" {
		patch.Content = &content
		changed = true
	}
	if changed {
		if c, err = s.canvas.UpdateComponent(ctx, c.ID, patch); err != nil {
			return nil, fmt.Errorf("add component: %w", err)
		}
	}
	return jsonResult(c)
}

func (s *Server) handleMoveComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := req.GetString("componentId", "")
	if id == "" {
		return nil, fmt.Errorf("componentId is required")
	}
	x, hasX := args["x"].(float64)
	y, hasY := args["y"].(float64)
	if !hasX || !hasY {
		return nil, fmt.Errorf("x and y are required")
	}
	c, err := s.canvas.MoveComponent(ctx, id, x, y)
	if err != nil {
		return nil, fmt.Errorf("move component: %w", err)
	}
	return textResult(fmt.Sprintf("Component %s moved to (%.0f, %.0f)", c.ID, c.X, c.Y)), nil
}

func (s *Server) handleResizeComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := req.GetString("componentId", "")
	if id == "" {
		return nil, fmt.Errorf("componentId is required")
	}
	w, hasW := args["width"].(float64)
	h, hasH := args["height"].(float64)
	if !hasW || !hasH {
		return nil, fmt.Errorf("width and height are required")
	}
	c, err := s.canvas.ResizeComponent(ctx, id, w, h)
	if err != nil {
		return nil, fmt.Errorf("resize component: %w", err)
	}
	return textResult(fmt.Sprintf("Component %s resized to %.0fx%.0f", c.ID, c.Width, c.Height)), nil
}

func (s *Server) handleUpdateComponentContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id := req.GetString("componentId", "")
	if id == "" {
		return nil, fmt.Errorf("componentId is required")
	}
	content, ok := getString(args, "content")
	if !ok {
		return nil, fmt.Errorf("content is required")
	}
	patch := domain.ContentPatch(content)
	if raw, _ := getString(args, "properties"); raw != "" {
		var props map[string]any
		if err := parseJSON(raw, &props); err != nil {
			return nil, fmt.Errorf("invalid properties JSON: %w", err)
		}
		if props == nil {
			props = map[string]any{}
		}
		patch.Properties = props
	}
	if _, err := s.canvas.UpdateComponent(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	return textResult(fmt.Sprintf("Component %s content updated", id)), nil
}

func (s *Server) handleSelectComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel := s.canvas.SelectComponent(ctx, req.GetString("componentId", ""))
	if sel == nil {
		return textResult("Selection cleared"), nil
	}
	return jsonResult(sel)
}

func (s *Server) handleDeleteComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("componentId", "")
	if id == "" {
		return nil, fmt.Errorf("componentId is required")
	}
	c, err := s.canvas.GetComponent(id)
	if err != nil {
		return nil, err
	}

	// Require approval (with metadata for frontend highlight)
	meta := fmt.Sprintf(`{"componentIds":[%q]}`, c.ID)
	approved, err := s.approval.Request(ctx, "delete_component",
		fmt.Sprintf("Delete %s component %s", c.Type, c.ID), meta)
	if err != nil || !approved {
		return textResult("Action rejected by user"), nil
	}

	if err := s.canvas.DeleteComponent(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("delete component: %w", err)
	}
	return textResult(fmt.Sprintf("Component %s deleted", c.ID)), nil
}
