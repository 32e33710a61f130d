package views

import (
	"image/color"

	"win31-sim/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProgramItem is one launch button.
type ProgramItem struct {
	ID    string
	Label string
}

// ProgramGroup is a titled area of launch buttons.
type ProgramGroup struct {
	Title string
	Items []ProgramItem
}

// ProgramManager is the desktop screen: program groups above, taskbar below.
// The frame and every group area carry their own background so a color
// change repaints all of them.
type ProgramManager struct {
	container        *fyne.Container
	frameBackground  *canvas.Rectangle
	groupBackgrounds []*canvas.Rectangle
	buttons          map[string]*widget.Button
	taskbar          *components.Taskbar

	openHandler func(appID string)
}

// NewProgramManager creates the Program Manager screen
func NewProgramManager(groups []ProgramGroup, background color.Color) *ProgramManager {
	pm := &ProgramManager{
		frameBackground: canvas.NewRectangle(background),
		buttons:         make(map[string]*widget.Button),
		taskbar:         components.NewTaskbar(),
	}

	body := container.NewVBox()
	for _, group := range groups {
		heading := widget.NewLabelWithStyle(group.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

		buttons := container.NewVBox()
		for _, item := range group.Items {
			buttons.Add(pm.newLaunchButton(item))
		}

		areaBackground := canvas.NewRectangle(background)
		pm.groupBackgrounds = append(pm.groupBackgrounds, areaBackground)

		body.Add(heading)
		body.Add(container.NewCenter(container.NewStack(areaBackground, container.NewPadded(buttons))))
	}

	pm.container = container.NewStack(
		pm.frameBackground,
		container.NewBorder(nil, pm.taskbar.GetContainer(), nil, nil, body),
	)
	return pm
}

func (pm *ProgramManager) newLaunchButton(item ProgramItem) fyne.CanvasObject {
	id := item.ID
	button := widget.NewButton(item.Label, func() {
		if pm.openHandler != nil {
			pm.openHandler(id)
		}
	})
	pm.buttons[id] = button

	// Fixed width keeps the groups aligned like a launcher list.
	return container.NewGridWrap(fyne.NewSize(200, 36), button)
}

// SetOpenHandler sets the handler invoked with the application id of a launch button
func (pm *ProgramManager) SetOpenHandler(handler func(appID string)) {
	pm.openHandler = handler
}

// ApplyBackground repaints the frame and every group area.
func (pm *ProgramManager) ApplyBackground(c color.Color) {
	pm.frameBackground.FillColor = c
	pm.frameBackground.Refresh()
	for _, bg := range pm.groupBackgrounds {
		bg.FillColor = c
		bg.Refresh()
	}
}

// BackgroundColors returns the frame color followed by each group area color.
func (pm *ProgramManager) BackgroundColors() []color.Color {
	out := []color.Color{pm.frameBackground.FillColor}
	for _, bg := range pm.groupBackgrounds {
		out = append(out, bg.FillColor)
	}
	return out
}

// LaunchButton returns the button that opens appID, or nil.
func (pm *ProgramManager) LaunchButton(appID string) *widget.Button {
	return pm.buttons[appID]
}

// Taskbar returns the taskbar component
func (pm *ProgramManager) Taskbar() *components.Taskbar {
	return pm.taskbar
}

// GetContainer returns the Program Manager container
func (pm *ProgramManager) GetContainer() fyne.CanvasObject {
	return pm.container
}
