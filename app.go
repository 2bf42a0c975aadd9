package main

import (
	"context"
	"embed"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// App owns the window lifecycle and wires the controller to the bridge
type App struct {
	ctx        context.Context
	log        zerolog.Logger
	config     *ConfigManager
	controller *Controller
	bridge     *Bridge
}

// NewApp creates a new App application struct
func NewApp() *App {
	log := newLogger(nil)
	if err := applyLogLevel(DefaultLogLevel); err != nil {
		log.Warn().Err(err).Msg("Failed to apply default log level")
	}

	app := &App{
		log:    log,
		config: NewConfigManager(log),
	}
	app.controller = NewController(&wailsDialogs{app: app}, newOSShell(), log)
	app.controller.pdfDirectory = app.config.PDFDirectory
	app.bridge = NewBridge(app.controller)
	return app
}

// linuxGpuPolicy returns the appropriate GPU policy for the current display server.
// On XWayland (Wayland session forced to X11), GPU compositing causes GBM buffer failures,
// so software rendering is used. On native X11, GPU acceleration is allowed.
func linuxGpuPolicy() linux.WebviewGpuPolicy {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return linux.WebviewGpuPolicyNever
	}
	return linux.WebviewGpuPolicyOnDemand
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	a.log.Info().
		Interface("version", currentVersionInfo()).
		Object("host", describeHost()).
		Msg("Application starting")

	a.config.Load()

	cfg := a.config.Config()
	wailsRuntime.WindowSetSize(a.ctx, cfg.WindowWidth, cfg.WindowHeight)
	a.log.Debug().Int("width", cfg.WindowWidth).Int("height", cfg.WindowHeight).Msg("Initial window size set")

	if err := a.config.StartWatcher(); err != nil {
		// The config directory is optional, so a missing one is not worth a warning
		a.log.Debug().Err(err).Msg("Config watcher not started")
	}
}

// shutdown is called during application shutdown
func (a *App) shutdown(ctx context.Context) {
	a.log.Info().Msg("Shutdown initiated")
	a.config.StopWatcher()
	a.log.Info().Msg("Shutdown completed")
}

// createAppOptions creates the Wails application options. The bridge is the only
// bound value. The asset server injects /wails/runtime.js into every page, so the
// Wails runtime (window, clipboard, events, BrowserOpenURL) stays reachable from
// the webview and is not limited by Bind.
func createAppOptions(app *App, assets embed.FS) *options.App {
	return &options.App{
		Title:     "DocBridge",
		Width:     DefaultWindowWidth,
		Height:    DefaultWindowHeight,
		MinWidth:  MinWindowWidth,
		MinHeight: MinWindowHeight,
		AssetServer: &assetserver.Options{
			Assets:     assets,
			Middleware: hostPlatformScriptMiddleware(),
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app.bridge,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			About: &mac.AboutInfo{
				Title:   "DocBridge",
				Message: "Desktop shell for saving and opening documents",
			},
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Linux: &linux.Options{
			ProgramName:      "DocBridge",
			WebviewGpuPolicy: linuxGpuPolicy(),
		},
	}
}
