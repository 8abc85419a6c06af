package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("landing_page",
		mcp.WithPromptDescription("Guide through laying out a landing page on the builder canvas"),
		mcp.WithArgument("product",
			mcp.ArgumentDescription("Product or business the page is for"),
			mcp.RequiredArgument(),
		),
	), s.handleLandingPagePrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("site_map",
		mcp.WithPromptDescription("Sketch a multi-page site on the flow canvas with sections for each page"),
		mcp.WithArgument("siteName",
			mcp.ArgumentDescription("Name of the site"),
			mcp.RequiredArgument(),
		),
	), s.handleSiteMapPrompt)
}

func (s *Server) handleLandingPagePrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	product := req.Params.Arguments["product"]
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Lay out a landing page for: %s", product),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Lay out a landing page for "%s" on the builder canvas. Follow these steps:

1. Call list_components to see what is already placed
2. Add a header component at the top (add_component type "header", y 0)
3. Below it, add a text component with a headline and a button with a call to action
4. Add an image component beside the headline
5. Add a footer component at the bottom
6. Use update_component_content to write real copy for "%s" into each component

Keep components from overlapping: place each one below the previous component's y + height.`, product, product),
				},
			},
		},
	}, nil
}

func (s *Server) handleSiteMapPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	siteName := req.Params.Arguments["siteName"]
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Sketch the site map for: %s", siteName),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Sketch the site map for "%s" on the flow canvas. Follow these steps:

1. Call list_pages and get_catalog
2. Rename page 1 to the home page title with rename_page
3. Use add_page with direction "right" for sibling pages and "bottom" for sub-pages
4. For every page, use add_section to add the sections it needs (for example Hero, Features, Contact) with a fitting layout
5. Finish with get_viewport and set_zoom so the whole map is visible`, siteName),
				},
			},
		},
	}, nil
}
