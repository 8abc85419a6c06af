package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	uriComponents = "sitebuilder://components"
	uriPages      = "sitebuilder://pages"
	uriPagePrefix = "sitebuilder://page/"
)

func (s *Server) registerResources() {
	// ── sitebuilder://components ───────────────────────
	s.mcp.AddResource(mcp.NewResource(
		uriComponents,
		"Builder Canvas Components",
		mcp.WithMIMEType("application/json"),
	), s.handleComponentsResource)

	// ── sitebuilder://pages ────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		uriPages,
		"Flow Pages",
		mcp.WithMIMEType("application/json"),
	), s.handlePagesResource)

	// ── sitebuilder://page/{pageId} ────────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			uriPagePrefix+"{pageId}",
			"A Flow Page",
		),
		s.handlePageResource,
	)
}

func (s *Server) handleComponentsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	components := s.canvas.ListComponents()
	summaries := make([]componentSummary, len(components))
	for i, c := range components {
		summaries[i] = summarizeComponent(c)
	}
	return jsonResource(uriComponents, summaries)
}

func (s *Server) handlePagesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(uriPages, s.flow.ListPages())
}

func (s *Server) handlePageResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	id, err := pageIDFromURI(uri)
	if err != nil {
		return nil, err
	}
	p, err := s.flow.GetPage(id)
	if err != nil {
		return nil, err
	}
	return jsonResource(uri, p)
}

// pageIDFromURI extracts the page ID from "sitebuilder://page/{id}".
func pageIDFromURI(uri string) (int, error) {
	rest, ok := strings.CutPrefix(uri, uriPagePrefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("could not extract pageId from URI: %s", uri)
	}
	id, err := strconv.Atoi(strings.TrimSuffix(rest, "/"))
	if err != nil {
		return 0, fmt.Errorf("could not extract pageId from URI %s: %w", uri, err)
	}
	return id, nil
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
