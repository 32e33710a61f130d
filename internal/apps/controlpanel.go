package apps

import (
	"image/color"

	"win31-sim/internal/colors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

type controlPanel struct {
	env *Env
}

func buildControlPanel(env *Env) fyne.CanvasObject {
	cp := &controlPanel{env: env}

	heading := widget.NewLabelWithStyle("Control Panel", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewVBox(
		heading,
		widget.NewButton("Change Background", cp.showColorPicker),
		widget.NewButton("System Performance", cp.showPerformance),
		widget.NewButton("System Information", cp.showSystemInfo),
	)
}

func (cp *controlPanel) showColorPicker() {
	picker := dialog.NewColorPicker("Change Background", "Choose a desktop color", cp.pickColor, cp.env.Window)
	picker.Advanced = true
	if current, err := colors.Parse(cp.env.Host.Settings().BackgroundColor()); err == nil {
		picker.SetColor(current)
	}
	picker.Show()
}

func (cp *controlPanel) pickColor(c color.Color) {
	if c == nil {
		return
	}
	cp.env.Host.ChangeBackground(colors.Hex(c))
}

func (cp *controlPanel) showPerformance() {
	dialog.ShowInformation("System Performance", cp.env.Reporter.PerformanceText(), cp.env.Window)
}

func (cp *controlPanel) showSystemInfo() {
	dialog.ShowInformation("System Information", cp.env.Reporter.SystemInfoText(), cp.env.Window)
}
