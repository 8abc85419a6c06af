package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sitebuilder/internal/service"
)

// Server is the MCP server for the site builder.
// It exposes tools, resources, and prompts so AI agents can edit the canvas
// and the page flow through the same services the desktop view uses.
type Server struct {
	mcp      *server.MCPServer
	emitter  EventEmitter
	approval *ApprovalQueue
	logger   *log.Logger

	// The listener is built up front so Shutdown can stop it even when it
	// lands before ServeHTTP has started listening.
	httpMu      sync.Mutex
	httpStopped bool
	httpSrv     *http.Server
	streamable  *server.StreamableHTTPServer

	canvas  *service.CanvasService
	builder *service.BuilderService
	flow    *service.FlowService
	site    *service.SiteService
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Emitter EventEmitter
	Canvas  *service.CanvasService
	Builder *service.BuilderService
	Flow    *service.FlowService
	Site    *service.SiteService
	Logger  *log.Logger

	// AutoApprove skips the approval prompt for destructive tools. Used by
	// the headless stdio server, which has no view to ask.
	AutoApprove bool
}

// New creates and configures a new MCP server with all tools and resources.
func New(ctx context.Context, deps Deps) *Server {
	emitter := deps.Emitter
	if emitter == nil {
		emitter = service.NopEmitter{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	approval := NewApprovalQueue(ctx, emitter)
	approval.SetAutoApprove(deps.AutoApprove)

	s := &Server{
		emitter:  emitter,
		approval: approval,
		logger:   logger.WithPrefix("mcp"),
		canvas:   deps.Canvas,
		builder:  deps.Builder,
		flow:     deps.Flow,
		site:     deps.Site,
	}

	s.mcp = server.NewMCPServer(
		"sitebuilder-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerCanvasTools()
	s.registerFlowTools()
	s.registerNavigationTools()
	s.registerSiteTools()
	s.registerResources()
	s.registerPrompts()

	s.httpSrv = &http.Server{}
	s.streamable = server.NewStreamableHTTPServer(s.mcp, server.WithStreamableHTTPServer(s.httpSrv))
	mux := http.NewServeMux()
	mux.Handle(mcpEndpoint, s.streamable)
	s.httpSrv.Handler = mux

	return s
}

// mcpEndpoint is the path the streamable HTTP transport is mounted on.
const mcpEndpoint = "/mcp"

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("starting stdio server")
	return server.ServeStdio(s.mcp)
}

// ServeHTTP serves streamable HTTP on addr until Shutdown is called. After
// Shutdown it returns http.ErrServerClosed without listening.
func (s *Server) ServeHTTP(addr string) error {
	s.httpMu.Lock()
	stopped := s.httpStopped
	s.httpMu.Unlock()
	if stopped {
		return http.ErrServerClosed
	}
	s.logger.Info("starting http server", "addr", addr)
	return s.streamable.Start(addr)
}

// Shutdown stops the HTTP listener. It is safe to call before, during or
// after ServeHTTP, and any later ServeHTTP returns http.ErrServerClosed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.httpMu.Lock()
	s.httpStopped = true
	s.httpMu.Unlock()
	return s.streamable.Shutdown(ctx)
}

// Approve forwards a user approval to the approval queue.
func (s *Server) Approve(actionID string) {
	s.approval.Approve(actionID)
}

// Reject forwards a user rejection to the approval queue.
func (s *Server) Reject(actionID string) {
	s.approval.Reject(actionID)
}

// PendingActions lists the destructive calls waiting for the user.
func (s *Server) PendingActions() []PendingAction {
	return s.approval.Pending()
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func getFloat(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

func getString(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func boolPtr(v bool) *bool { return &v }
