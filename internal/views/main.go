package views

import (
	"context"
	"image/color"
	"time"

	"win31-sim/internal/logger"
	"win31-sim/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the full-screen desktop window: the shell with its two screens
// plus the dialogs the controller raises on top of it.
type MainView struct {
	window         fyne.Window
	boot           *BootScreen
	programManager *ProgramManager
	shell          *Shell
	logger         logger.Logger

	// Event handlers - connected to controller
	openHandler        func(appID string)
	exitSessionHandler func()
	quitHandler        func()
}

// NewMainView creates the desktop view inside window
func NewMainView(window fyne.Window, groups []ProgramGroup, background color.Color, bootDelay time.Duration, log logger.Logger) *MainView {
	view := &MainView{
		window: window,
		logger: log,
	}

	view.initializeComponents(groups, background, bootDelay)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(groups []ProgramGroup, background color.Color, bootDelay time.Duration) {
	mv.boot = NewBootScreen()
	mv.programManager = NewProgramManager(groups, background)
	mv.shell = NewShell(mv.boot.GetContainer(), mv.programManager.GetContainer(), bootDelay, mv.logger)
}

func (mv *MainView) buildLayout() {
	mv.window.SetContent(mv.shell.Content())
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.programManager.SetOpenHandler(func(appID string) {
		if mv.openHandler != nil {
			mv.openHandler(appID)
		}
	})

	mv.programManager.Taskbar().SetExitHandler(func() {
		if mv.exitSessionHandler != nil {
			mv.exitSessionHandler()
		}
	})

	// Escape leaves immediately: no confirmation, nothing saved.
	mv.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape && mv.quitHandler != nil {
			mv.logger.Info("MainView", "escape pressed, quitting", nil)
			mv.quitHandler()
		}
	})

	mv.window.SetCloseIntercept(func() {
		if mv.exitSessionHandler != nil {
			mv.exitSessionHandler()
		}
	})
}

// Event handler setters - called by controller

// SetOpenHandler sets the handler for launch button taps
func (mv *MainView) SetOpenHandler(handler func(appID string)) {
	mv.openHandler = handler
}

// SetExitSessionHandler sets the handler for Exit Session and window close requests
func (mv *MainView) SetExitSessionHandler(handler func()) {
	mv.exitSessionHandler = handler
}

// SetQuitHandler sets the handler for the Escape key
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// SetBootCompleteHandler sets the handler run once the Program Manager is shown
func (mv *MainView) SetBootCompleteHandler(handler func()) {
	mv.shell.SetBootCompleteHandler(handler)
}

// UI update methods - called by controller

// Start shows the window and begins the boot sequence
func (mv *MainView) Start(ctx context.Context) {
	mv.shell.Start(ctx)
	mv.window.Show()
}

// ApplyBackground recolors the Program Manager surfaces
func (mv *MainView) ApplyBackground(c color.Color) {
	mv.programManager.ApplyBackground(c)
}

// SetFullScreen toggles full-screen mode on the desktop window
func (mv *MainView) SetFullScreen(full bool) {
	mv.window.SetFullScreen(full)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// GetWindow returns the desktop window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Shell returns the screen switcher
func (mv *MainView) Shell() *Shell {
	return mv.shell
}

// ProgramManager returns the Program Manager screen
func (mv *MainView) ProgramManager() *ProgramManager {
	return mv.programManager
}

// Taskbar returns the Program Manager taskbar
func (mv *MainView) Taskbar() *components.Taskbar {
	return mv.programManager.Taskbar()
}
