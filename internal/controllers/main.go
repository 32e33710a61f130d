package controllers

import (
	"fmt"
	"sync"

	"win31-sim/internal/apps"
	"win31-sim/internal/colors"
	"win31-sim/internal/logger"
	"win31-sim/internal/models"
	"win31-sim/internal/views"
	"win31-sim/internal/wm"
)

// ApplicationLauncher opens application windows by id.
type ApplicationLauncher interface {
	Open(appID string) (wm.InstanceID, error)
}

// MainController owns the settings and connects the desktop view to the
// application launcher.
type MainController struct {
	store    *models.SettingsStore
	settings *models.Settings

	mainView *views.MainView
	launcher ApplicationLauncher
	logger   logger.Logger

	mu   sync.Mutex
	quit func()
}

var _ apps.Host = (*MainController)(nil)

// NewMainController creates a controller around already loaded settings.
func NewMainController(store *models.SettingsStore, settings *models.Settings, log logger.Logger) *MainController {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &MainController{
		store:    store,
		settings: settings,
		logger:   log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) SetLauncher(launcher ApplicationLauncher) {
	mc.launcher = launcher
}

// SetQuitFunc sets how the process leaves the event loop.
func (mc *MainController) SetQuitFunc(fn func()) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.quit = fn
}

func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.SetOpenHandler(mc.OpenApplication)
	mc.mainView.SetExitSessionHandler(mc.ExitSession)
	mc.mainView.SetQuitHandler(mc.Quit)
	mc.mainView.SetBootCompleteHandler(mc.ApplySettings)
}

func (mc *MainController) Settings() *models.Settings {
	return mc.settings
}

// ChangeBackground stores the color, repaints the Program Manager and
// persists the settings. A failed save is logged; the new color stays applied.
func (mc *MainController) ChangeBackground(colorID string) {
	mc.settings.SetBackgroundColor(colorID)
	mc.ApplySettings()

	if err := mc.saveSettings(); err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"background_color": colorID,
		})
	}
}

// ApplySettings pushes the current settings to every Program Manager surface.
func (mc *MainController) ApplySettings() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ApplyBackground(colors.Resolve(mc.settings.BackgroundColor()))
}

// OpenApplication launches appID in a new window.
func (mc *MainController) OpenApplication(appID string) {
	if mc.launcher == nil {
		mc.handleError("Open application failed", fmt.Errorf("no launcher configured"))
		return
	}
	if _, err := mc.launcher.Open(appID); err != nil {
		mc.handleError("Open application failed", err)
	}
}

// ExitSession asks for confirmation, then saves the settings and quits.
func (mc *MainController) ExitSession() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowConfirm("Exit Windows", "Are you sure you want to exit your Windows session?", func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug("MainController", "exit session cancelled", nil)
			return
		}
		if err := mc.saveSettings(); err != nil {
			mc.logger.Error("MainController", err, nil)
		}
		mc.logger.Info("MainController", "session ended", nil)
		mc.Quit()
	})
}

// Quit leaves immediately without saving.
func (mc *MainController) Quit() {
	mc.mu.Lock()
	quit := mc.quit
	mc.mu.Unlock()

	if quit != nil {
		quit()
	}
}

// Shutdown persists the settings. It is registered with the shutdown manager.
func (mc *MainController) Shutdown() {
	if err := mc.saveSettings(); err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"stage": "shutdown",
		})
	}
}

func (mc *MainController) saveSettings() error {
	if mc.store == nil {
		return nil
	}
	return mc.store.Save(mc.settings)
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{"title": title})
	if mc.mainView != nil {
		mc.mainView.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}
