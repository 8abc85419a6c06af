package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"sitebuilder/internal/domain"
)

func (s *Server) registerFlowTools() {
	// ── list_pages ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List all pages on the flow canvas with their sections and positions"),
	), s.handleListPages)

	// ── add_page ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_page",
		mcp.WithDescription("Add a page next to an existing page on the flow canvas"),
		mcp.WithString("direction",
			mcp.Description("Where to place the new page relative to the source page"),
			mcp.Enum("left", "right", "bottom"),
			mcp.Required(),
		),
		mcp.WithNumber("sourcePageId", mcp.Description("ID of the page to place the new page beside"), mcp.Required()),
	), s.handleAddPage)

	// ── add_section ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_section",
		mcp.WithDescription("Append a section to a page. Use get_catalog for section and layout IDs."),
		mcp.WithNumber("pageId", mcp.Description("Page ID"), mcp.Required()),
		mcp.WithNumber("sectionId", mcp.Description("Section type ID from the catalog"), mcp.Required()),
		mcp.WithNumber("layoutId", mcp.Description("Layout ID from the catalog"), mcp.Required()),
	), s.handleAddSection)

	// ── rename_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("rename_page",
		mcp.WithDescription("Rename a page. Surrounding whitespace is trimmed; a blank title keeps the current one."),
		mcp.WithNumber("pageId", mcp.Description("Page ID"), mcp.Required()),
		mcp.WithString("title", mcp.Description("New title"), mcp.Required()),
	), s.handleRenamePage)
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.flow.ListPages())
}

func (s *Server) handleAddPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	dir := req.GetString("direction", "")
	if dir == "" {
		return nil, fmt.Errorf("direction is required")
	}
	sourceID, err := pageIDArg(args, "sourcePageId")
	if err != nil {
		return nil, err
	}
	p, err := s.flow.AddPage(ctx, domain.Direction(dir), sourceID)
	if err != nil {
		return nil, fmt.Errorf("add page: %w", err)
	}
	return jsonResult(p)
}

func (s *Server) handleAddSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pageID, err := pageIDArg(args, "pageId")
	if err != nil {
		return nil, err
	}
	sectionID, err := pageIDArg(args, "sectionId")
	if err != nil {
		return nil, err
	}
	layoutID, err := pageIDArg(args, "layoutId")
	if err != nil {
		return nil, err
	}
	p, err := s.flow.AddSection(ctx, pageID, sectionID, layoutID)
	if err != nil {
		return nil, fmt.Errorf("add section: %w", err)
	}
	return jsonResult(p)
}

func (s *Server) handleRenamePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pageID, err := pageIDArg(args, "pageId")
	if err != nil {
		return nil, err
	}
	title, ok := getString(args, "title")
	if !ok {
		return nil, fmt.Errorf("title is required")
	}
	p, err := s.flow.RenamePage(ctx, pageID, title)
	if err != nil {
		return nil, fmt.Errorf("rename page: %w", err)
	}
	return textResult(fmt.Sprintf("Page %d is now %q", p.ID, p.Title)), nil
}
