package main

import (
	"context"
	"log"
	"runtime"

	"win31-sim/internal/apps"
	"win31-sim/internal/colors"
	"win31-sim/internal/config"
	"win31-sim/internal/controllers"
	"win31-sim/internal/logger"
	"win31-sim/internal/models"
	"win31-sim/internal/shutdown"
	"win31-sim/internal/views"
	"win31-sim/internal/wm"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Windows 3.1"
	AppID      = "com.win31sim.desktop"
	AppVersion = "1.0.0"
)

// Application holds the wired desktop.
type Application struct {
	cfg     *config.Config
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	windows    *wm.Manager
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Configuration invalid, using defaults: %v", err)
		cfg = config.Default()
	}

	application := NewApplication(cfg)
	application.Run()

	log.Println("Session ended")
}

// NewApplication builds every component and connects them.
func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.New(cfg.Logging.ZerologLevel(), cfg.Logging.JSON)

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(1024, 768))

	store := models.NewSettingsStore(cfg.Settings.File, appLogger)
	settings := store.Load()

	registry := apps.Builtin()
	mainView := views.NewMainView(window, controllers.DesktopGroups(registry),
		colors.Resolve(settings.BackgroundColor()), cfg.Shell.BootDelay, appLogger)
	mainView.SetFullScreen(cfg.Shell.FullScreen)

	windows := wm.NewManager(mainView.Taskbar(), appLogger)

	controller := controllers.NewMainController(store, settings, appLogger)
	controller.SetMainView(mainView)
	controller.SetLauncher(apps.NewLauncher(fyneApp, registry, windows, controller, appLogger))
	controller.SetQuitFunc(fyneApp.Quit)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("settings", controller)
	shutdownManager.SetOnComplete(func() {
		fyne.Do(fyneApp.Quit)
	})

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":          AppVersion,
		"go_version":       runtime.Version(),
		"settings_file":    store.Path(),
		"background_color": settings.BackgroundColor(),
		"boot_delay":       cfg.Shell.BootDelay.String(),
		"applications":     registry.IDs(),
	})

	return &Application{
		cfg:        cfg,
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       mainView,
		windows:    windows,
		shutdown:   shutdownManager,
	}
}

// Run shows the boot screen and blocks in the event loop until the session ends.
func (a *Application) Run() {
	a.shutdown.Listen()

	ctx, cancel := context.WithCancel(a.shutdown.Context())
	defer cancel()

	a.view.Start(ctx)
	a.fyneApp.Run()

	a.logger.Info("Application", "event loop stopped", map[string]interface{}{
		"open_windows": a.windows.Count(),
	})
}
