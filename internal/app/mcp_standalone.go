package app

import (
	"context"

	"sitebuilder/internal/logging"
	mcpserver "sitebuilder/internal/mcp"
	"sitebuilder/internal/service"
	"sitebuilder/internal/storage"
)

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no
// GUI. The logger is taken from ctx and must write to stderr: stdout carries
// the protocol.
func ServeMCP(ctx context.Context) error {
	return newStandaloneServer(ctx).ServeStdio()
}

// newStandaloneServer wires in-memory services to an MCP server. Nobody can
// answer approval prompts, so destructive tools are auto-approved.
func newStandaloneServer(ctx context.Context) *mcpserver.Server {
	logger := logging.FromContext(ctx)
	emitter := service.NopEmitter{}

	canvas := service.NewCanvasService(storage.NewComponentStore(), emitter)
	srv := mcpserver.New(ctx, mcpserver.Deps{
		Emitter:     emitter,
		Canvas:      canvas,
		Builder:     service.NewBuilderService(canvas, emitter),
		Flow:        service.NewFlowService(storage.NewPageStore(), emitter),
		Site:        service.NewSiteService(emitter),
		Logger:      logger,
		AutoApprove: true,
	})

	logger.Info("starting standalone stdio server", "autoApprove", true)
	return srv
}
