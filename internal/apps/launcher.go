package apps

import (
	"win31-sim/internal/logger"
	"win31-sim/internal/services"
	"win31-sim/internal/wm"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Launcher turns an application id into a live, tracked sub-window.
type Launcher struct {
	app        fyne.App
	registry   *Registry
	windows    *wm.Manager
	host       Host
	calculator *services.Calculator
	reporter   *services.SystemReporter
	logger     logger.Logger
}

func NewLauncher(app fyne.App, registry *Registry, windows *wm.Manager, host Host, log logger.Logger) *Launcher {
	return &Launcher{
		app:        app,
		registry:   registry,
		windows:    windows,
		host:       host,
		calculator: services.NewCalculator(),
		reporter:   services.NewSystemReporter(nil),
		logger:     log,
	}
}

// Open creates a window for appID with a minimize/close title bar, fills it
// with the application's content and hands it to the window manager.
func (l *Launcher) Open(appID string) (wm.InstanceID, error) {
	desc, err := l.registry.Lookup(appID)
	if err != nil {
		return "", err
	}

	window := l.app.NewWindow(desc.Title)
	env := &Env{
		Window:     window,
		Host:       l.host,
		Logger:     l.logger,
		Calculator: l.calculator,
		Reporter:   l.reporter,
	}
	body := desc.Build(env)

	var id wm.InstanceID
	titleBar := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButton("X", func() { l.close(id) }),
		widget.NewButton("_", func() { l.minimize(id) }),
	)

	window.SetContent(container.NewBorder(titleBar, nil, nil, nil, body))
	window.Resize(desc.Size)

	id = l.windows.Register(desc.ID, desc.Title, window)

	window.SetCloseIntercept(func() { l.close(id) })
	window.SetOnClosed(env.runCleanups)
	window.Show()

	l.logger.Info("Launcher", "application opened", map[string]interface{}{
		"app":      desc.ID,
		"instance": string(id),
	})
	return id, nil
}

func (l *Launcher) minimize(id wm.InstanceID) {
	if err := l.windows.Minimize(id); err != nil {
		l.logger.Error("Launcher", err, map[string]interface{}{"instance": string(id)})
	}
}

func (l *Launcher) close(id wm.InstanceID) {
	if err := l.windows.Close(id); err != nil {
		l.logger.Error("Launcher", err, map[string]interface{}{"instance": string(id)})
	}
}
