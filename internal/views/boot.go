package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var (
	bootBackground = color.Black
	bootPanelColor = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff} // lightblue
)

// BootScreen is the splash shown while the system "starts".
type BootScreen struct {
	container *fyne.Container
}

// NewBootScreen creates the boot splash
func NewBootScreen() *BootScreen {
	flag := bootText("Windows Flag", 18)
	title := bootText("Microsoft Windows 3.1", 28)
	years := bootText("1985 - 1992", 14)

	panel := container.NewStack(
		canvas.NewRectangle(bootPanelColor),
		container.NewBorder(
			container.NewCenter(flag),
			container.NewCenter(years),
			nil, nil,
			container.NewCenter(title),
		),
	)

	return &BootScreen{
		container: container.NewStack(
			canvas.NewRectangle(bootBackground),
			container.NewCenter(container.New(layout.NewGridWrapLayout(fyne.NewSize(800, 400)), panel)),
		),
	}
}

func bootText(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, color.Black)
	t.TextSize = size
	t.Alignment = fyne.TextAlignCenter
	return t
}

// GetContainer returns the boot screen container
func (b *BootScreen) GetContainer() fyne.CanvasObject {
	return b.container
}
