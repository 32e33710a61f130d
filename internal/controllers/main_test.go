package controllers

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"win31-sim/internal/apps"
	"win31-sim/internal/colors"
	"win31-sim/internal/logger"
	"win31-sim/internal/models"
	"win31-sim/internal/views"
	"win31-sim/internal/wm"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type desktop struct {
	app        fyne.App
	view       *views.MainView
	controller *MainController
	windows    *wm.Manager
	store      *models.SettingsStore
	quits      int
}

func newDesktop(t *testing.T) *desktop {
	t.Helper()
	log := logger.NoOpLogger{}
	d := &desktop{app: test.NewTempApp(t)}

	d.store = models.NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"), log)
	settings := d.store.Load()

	registry := apps.Builtin()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	d.view = views.NewMainView(window, DesktopGroups(registry), colors.Resolve(settings.BackgroundColor()), 10*time.Millisecond, log)
	d.windows = wm.NewManager(d.view.Taskbar(), log)

	d.controller = NewMainController(d.store, settings, log)
	d.controller.SetMainView(d.view)
	d.controller.SetLauncher(apps.NewLauncher(d.app, registry, d.windows, d.controller, log))
	d.controller.SetQuitFunc(func() { d.quits++ })
	return d
}

func (d *desktop) boot(t *testing.T) {
	t.Helper()
	d.view.Start(context.Background())
	select {
	case <-d.view.Shell().Booted():
	case <-time.After(5 * time.Second):
		t.Fatal("boot did not complete")
	}
}

// tapDialogButton presses the button labelled text in the topmost overlay.
func tapDialogButton(t *testing.T, window fyne.Window, text string) {
	t.Helper()
	top := window.Canvas().Overlays().Top()
	require.NotNil(t, top, "no dialog shown")
	for _, o := range test.LaidOutObjects(top) {
		if b, ok := o.(*widget.Button); ok && b.Text == text {
			test.Tap(b)
			return
		}
	}
	t.Fatalf("no %q button in dialog", text)
}

func TestDesktopGroups(t *testing.T) {
	groups := DesktopGroups(apps.Builtin())
	require.Len(t, groups, 2)

	assert.Equal(t, "Program Manager", groups[0].Title)
	assert.Equal(t, []views.ProgramItem{
		{ID: apps.NotepadID, Label: "Notepad"},
		{ID: apps.ControlPanelID, Label: "Control Panel"},
	}, groups[0].Items)

	assert.Equal(t, "Manager", groups[1].Title)
	assert.Equal(t, []views.ProgramItem{
		{ID: apps.CalculatorID, Label: "Calculator"},
		{ID: apps.PaintID, Label: "Paint"},
	}, groups[1].Items)
}

func TestBootOpenMinimizeRestore(t *testing.T) {
	d := newDesktop(t)
	d.boot(t)

	assert.Equal(t, views.ScreenProgramManager, d.view.Shell().Screen())
	for _, c := range d.view.ProgramManager().BackgroundColors() {
		assert.Equal(t, colors.Resolve("lightgray"), c)
	}

	test.Tap(d.view.ProgramManager().LaunchButton(apps.CalculatorID))
	instances := d.windows.Instances()
	require.Len(t, instances, 1)
	calc := instances[0]
	assert.Equal(t, apps.CalculatorID, calc.AppID)
	assert.Empty(t, d.view.Taskbar().Labels())

	require.NoError(t, d.windows.Minimize(calc.ID))
	assert.Equal(t, []string{"Calculator"}, d.view.Taskbar().Labels())
	assert.Equal(t, wm.StateMinimized, d.windows.State(calc.ID))

	test.Tap(d.view.Taskbar().Entries()[0])
	assert.Empty(t, d.view.Taskbar().Labels())
	assert.Equal(t, wm.StateOpen, d.windows.State(calc.ID))
}

func TestChangeBackgroundAppliesAndPersists(t *testing.T) {
	d := newDesktop(t)
	d.boot(t)

	d.controller.ChangeBackground("#008080")

	teal := color.RGBA{0, 0x80, 0x80, 0xff}
	for _, c := range d.view.ProgramManager().BackgroundColors() {
		assert.Equal(t, teal, c)
	}
	assert.Equal(t, "#008080", d.controller.Settings().BackgroundColor())
	assert.Equal(t, "#008080", d.store.Load().BackgroundColor())
}

func TestChangeBackgroundSaveFailureKeepsColor(t *testing.T) {
	test.NewTempApp(t)
	dir := t.TempDir()
	store := models.NewSettingsStore(filepath.Join(dir, "missing", "settings.json"), logger.NoOpLogger{})

	controller := NewMainController(store, nil, logger.NoOpLogger{})
	controller.ChangeBackground("blue")

	assert.Equal(t, "blue", controller.Settings().BackgroundColor())
	_, err := os.Stat(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestUnknownBackgroundFallsBackToDefault(t *testing.T) {
	d := newDesktop(t)
	d.boot(t)

	d.controller.ChangeBackground("no-such-color")
	for _, c := range d.view.ProgramManager().BackgroundColors() {
		assert.Equal(t, colors.Resolve(colors.DefaultBackground), c)
	}
}

func TestOpenUnknownApplicationShowsError(t *testing.T) {
	d := newDesktop(t)

	d.controller.OpenApplication("Solitaire")
	assert.Zero(t, d.windows.Count())
	assert.NotNil(t, d.view.GetWindow().Canvas().Overlays().Top())
}

func TestExitSessionConfirmed(t *testing.T) {
	d := newDesktop(t)
	d.boot(t)
	d.controller.Settings().SetBackgroundColor("navy")

	test.Tap(d.view.Taskbar().ExitButton())
	tapDialogButton(t, d.view.GetWindow(), "Yes")

	assert.Equal(t, 1, d.quits)
	assert.Equal(t, "navy", d.store.Load().BackgroundColor())
}

func TestExitSessionDeclined(t *testing.T) {
	d := newDesktop(t)
	d.boot(t)
	d.controller.Settings().SetBackgroundColor("navy")

	d.controller.ExitSession()
	tapDialogButton(t, d.view.GetWindow(), "No")

	assert.Zero(t, d.quits)
	assert.Equal(t, colors.DefaultBackground, d.store.Load().BackgroundColor())
}

func TestQuitDoesNotSave(t *testing.T) {
	d := newDesktop(t)
	d.controller.Settings().SetBackgroundColor("navy")

	d.controller.Quit()

	assert.Equal(t, 1, d.quits)
	assert.Equal(t, colors.DefaultBackground, d.store.Load().BackgroundColor())
}

func TestShutdownSaves(t *testing.T) {
	d := newDesktop(t)
	d.controller.Settings().SetBackgroundColor("maroon")

	d.controller.Shutdown()
	assert.Equal(t, "maroon", d.store.Load().BackgroundColor())
	assert.Zero(t, d.quits)
}
