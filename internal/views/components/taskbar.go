package components

import (
	"image/color"

	"win31-sim/internal/wm"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var taskbarColor = color.RGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff} // darkgray

const taskbarHeight = 40

// Taskbar hosts restore buttons for minimized windows and the Exit Session
// button. It satisfies wm.Taskbar.
type Taskbar struct {
	container  *fyne.Container
	background *canvas.Rectangle
	entries    *fyne.Container
	exitButton *widget.Button

	exitHandler func()
}

// NewTaskbar creates a new taskbar component
func NewTaskbar() *Taskbar {
	taskbar := &Taskbar{}
	taskbar.createComponents()
	taskbar.buildLayout()
	return taskbar
}

func (t *Taskbar) createComponents() {
	t.background = canvas.NewRectangle(taskbarColor)
	t.background.SetMinSize(fyne.NewSize(0, taskbarHeight))

	t.entries = container.NewHBox()

	t.exitButton = widget.NewButton("Exit Session", func() {
		if t.exitHandler != nil {
			t.exitHandler()
		}
	})
}

func (t *Taskbar) buildLayout() {
	t.container = container.NewStack(
		t.background,
		container.NewBorder(nil, nil, nil, t.exitButton, t.entries),
	)
}

// SetExitHandler sets the handler for the Exit Session button
func (t *Taskbar) SetExitHandler(handler func()) {
	t.exitHandler = handler
}

// Add appends a restore button labelled with the window title.
func (t *Taskbar) Add(label string, onRestore func()) wm.TaskbarEntry {
	button := widget.NewButton(label, onRestore)
	t.entries.Add(button)
	return &taskbarEntry{button: button, parent: t.entries}
}

// Entries returns the restore buttons currently on the taskbar.
func (t *Taskbar) Entries() []*widget.Button {
	buttons := make([]*widget.Button, 0, len(t.entries.Objects))
	for _, obj := range t.entries.Objects {
		if b, ok := obj.(*widget.Button); ok {
			buttons = append(buttons, b)
		}
	}
	return buttons
}

// Labels returns the entry labels, left to right.
func (t *Taskbar) Labels() []string {
	labels := make([]string, 0, len(t.entries.Objects))
	for _, b := range t.Entries() {
		labels = append(labels, b.Text)
	}
	return labels
}

// ExitButton returns the Exit Session button
func (t *Taskbar) ExitButton() *widget.Button {
	return t.exitButton
}

// GetContainer returns the taskbar container
func (t *Taskbar) GetContainer() fyne.CanvasObject {
	return t.container
}

type taskbarEntry struct {
	button *widget.Button
	parent *fyne.Container
}

func (e *taskbarEntry) Remove() {
	e.parent.Remove(e.button)
}
