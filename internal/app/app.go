package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"sitebuilder/internal/config"
	mcpserver "sitebuilder/internal/mcp"
	"sitebuilder/internal/service"
	"sitebuilder/internal/storage"
)

// ErrNotStarted is returned by bindings called before Startup.
var ErrNotStarted = errors.New("app not started")

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx    context.Context
	cfg    config.AppConfig
	logger *log.Logger

	canvas  *service.CanvasService
	builder *service.BuilderService
	flow    *service.FlowService
	site    *service.SiteService
	mcp     *mcpserver.Server
}

// New creates a new App.
func New(cfg config.AppConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.start(ctx, a)

	if !a.cfg.MCP.Enabled {
		return
	}
	addr := a.cfg.MCP.Addr
	go func() {
		if err := a.mcp.ServeHTTP(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wailsRuntime.LogErrorf(ctx, "MCP server on %s stopped: %v", addr, err)
		}
	}()
	wailsRuntime.LogInfof(ctx, "MCP server listening on http://%s/mcp", addr)
}

// start builds the in-memory stores and services. Events go to emitter.
func (a *App) start(ctx context.Context, emitter service.EventEmitter) {
	a.canvas = service.NewCanvasService(storage.NewComponentStore(), emitter)
	a.builder = service.NewBuilderService(a.canvas, emitter)
	a.flow = service.NewFlowService(storage.NewPageStore(), emitter)
	a.site = service.NewSiteService(emitter)
	a.mcp = mcpserver.New(ctx, mcpserver.Deps{
		Emitter: emitter,
		Canvas:  a.canvas,
		Builder: a.builder,
		Flow:    a.flow,
		Site:    a.site,
		Logger:  a.logger,
	})
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.flow != nil {
		a.flow.ResetSession(ctx)
	}
	if a.mcp == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := a.mcp.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("mcp shutdown", "err", err)
	}
}

// Emit implements service.EventEmitter. Events always go out on the Wails
// context: callers such as MCP handlers pass request contexts the runtime
// does not know.
func (a *App) Emit(_ context.Context, event string, data any) {
	wailsRuntime.EventsEmit(a.ctx, event, data)
}

func (a *App) ready() error {
	if a.canvas == nil || a.flow == nil || a.site == nil {
		return ErrNotStarted
	}
	return nil
}

// bindingCtx is the context handed to services from bindings.
func (a *App) bindingCtx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
