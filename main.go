package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	siteApp "sitebuilder/internal/app"
	"sitebuilder/internal/config"
	"sitebuilder/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

// load reads the config and builds a stderr logger. The --log-level flag
// wins over the file and the environment.
func (f *rootFlags) load() (config.AppConfig, *log.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(os.Stderr, level), nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "sitebuilder",
		Short:        "Visual website builder",
		Long:         `Site Builder is a desktop editor for laying out web pages on a canvas and sketching a site's page flow.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			return runDesktop(cfg, logger)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/sitebuilder/config.yaml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(&cobra.Command{
		Use:   "mcp",
		Short: "Serve the MCP tools on stdin/stdout without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := flags.load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if err := siteApp.ServeMCP(logging.WithLogger(ctx, logger)); err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	})

	return root
}

func runDesktop(cfg config.AppConfig, logger *log.Logger) error {
	app := siteApp.New(cfg, logger)

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	return wails.Run(&options.App{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 245, G: 246, B: 248, A: 1},
		Menu:             appMenu,
		Logger:           logging.NewWailsLogger(logger),
		LogLevel:         logging.WailsLevel(logger.GetLevel()),
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				HideTitleBar:               false,
				FullSizeContent:            true,
				UseToolbar:                 true,
				HideToolbarSeparator:       true,
			},
			About: &mac.AboutInfo{
				Title:   cfg.Window.Title,
				Message: "Drag-and-drop page builder with a page flow canvas",
			},
		},
	})
}
