package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"sitebuilder/internal/domain"
)

func (s *Server) registerSiteTools() {
	// ── get_catalog ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_catalog",
		mcp.WithDescription("Get the section types, layouts and component palette"),
	), s.handleGetCatalog)

	// ── get_site_settings ──────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_site_settings",
		mcp.WithDescription("Get the site title, description and theme"),
	), s.handleGetSiteSettings)

	// ── update_site_settings ───────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_site_settings",
		mcp.WithDescription("Update site settings. Omitted fields are left unchanged."),
		mcp.WithString("title", mcp.Description("Site title")),
		mcp.WithString("description", mcp.Description("Site description")),
		mcp.WithString("theme",
			mcp.Description("Color theme"),
			mcp.Enum(string(domain.ThemeLight), string(domain.ThemeDark), string(domain.ThemeSystem)),
		),
	), s.handleUpdateSiteSettings)
}

type catalogInfo struct {
	domain.Catalog
	Palette domain.Palette `json:"palette"`
}

func (s *Server) handleGetCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(catalogInfo{Catalog: s.flow.Catalog(), Palette: s.builder.Palette()})
}

func (s *Server) handleGetSiteSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.site.Settings())
}

func (s *Server) handleUpdateSiteSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var patch domain.SiteSettingsPatch
	if v, ok := getString(args, "title"); ok {
		patch.Title = &v
	}
	if v, ok := getString(args, "description"); ok {
		patch.Description = &v
	}
	if v, ok := getString(args, "theme"); ok {
		theme := domain.Theme(v)
		patch.Theme = &theme
	}
	settings, err := s.site.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update site settings: %w", err)
	}
	return jsonResult(settings)
}
