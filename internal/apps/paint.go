package apps

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"gocv.io/x/gocv"
	"golang.org/x/image/colornames"
)

const (
	surfaceWidth  = 480
	surfaceHeight = 320
	brushRadius   = 2
)

// paletteEntry pairs a button label with its brush color.
type paletteEntry struct {
	Name  string
	Color color.RGBA
}

var palette = []paletteEntry{
	{"Black", colornames.Black},
	{"Red", colornames.Red},
	{"Green", colornames.Lime},
	{"Blue", colornames.Blue},
	{"Yellow", colornames.Yellow},
}

// surface is a white BGR raster backed by an OpenCV Mat.
type surface struct {
	mu  sync.Mutex
	mat gocv.Mat
}

func newSurface(width, height int) *surface {
	white := gocv.NewScalar(255, 255, 255, 0)
	return &surface{mat: gocv.NewMatWithSizeFromScalar(white, height, width, gocv.MatTypeCV8UC3)}
}

func (s *surface) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return image.Rect(0, 0, s.mat.Cols(), s.mat.Rows())
}

// Dab paints a filled circle centred on p and reports whether the surface
// changed. Points off the surface are ignored.
func (s *surface) Dab(p image.Point, c color.RGBA) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mat.Empty() || !p.In(image.Rect(0, 0, s.mat.Cols(), s.mat.Rows())) {
		return false, nil
	}
	if err := gocv.Circle(&s.mat, p, brushRadius, c, -1); err != nil {
		return false, fmt.Errorf("paint at %v: %w", p, err)
	}
	return true, nil
}

// At reads back one pixel as RGBA.
func (s *surface) At(x, y int) color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.mat.GetVecbAt(y, x)
	return color.RGBA{R: v[2], G: v[1], B: v[0], A: 0xff}
}

func (s *surface) Image() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mat.Empty() {
		return nil, fmt.Errorf("paint surface released")
	}
	return s.mat.ToImage()
}

func (s *surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mat.Empty() {
		s.mat.Close()
		s.mat = gocv.NewMat()
	}
}

// paintCanvas shows a surface and paints on it while the pointer is dragged.
type paintCanvas struct {
	widget.BaseWidget

	surface *surface
	brush   color.RGBA
	image   *canvas.Image
	onError func(error)
}

var _ fyne.Draggable = (*paintCanvas)(nil)

func newPaintCanvas(s *surface, onError func(error)) *paintCanvas {
	pc := &paintCanvas{
		surface: s,
		brush:   palette[0].Color,
		image:   canvas.NewImageFromImage(nil),
		onError: onError,
	}
	pc.image.FillMode = canvas.ImageFillStretch
	pc.image.ScaleMode = canvas.ImageScalePixels
	pc.ExtendBaseWidget(pc)
	pc.redraw()
	return pc
}

func (pc *paintCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.image)
}

func (pc *paintCanvas) MinSize() fyne.Size {
	return fyne.NewSize(surfaceWidth/2, surfaceHeight/2)
}

func (pc *paintCanvas) SetBrush(c color.RGBA) {
	pc.brush = c
}

func (pc *paintCanvas) Dragged(ev *fyne.DragEvent) {
	changed, err := pc.surface.Dab(pc.toSurface(ev.Position), pc.brush)
	if err != nil {
		pc.report(err)
		return
	}
	if changed {
		pc.redraw()
	}
}

func (pc *paintCanvas) DragEnd() {}

// toSurface maps a widget-relative position onto surface pixels.
func (pc *paintCanvas) toSurface(pos fyne.Position) image.Point {
	bounds := pc.surface.Bounds()
	size := pc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return image.Pt(int(pos.X), int(pos.Y))
	}
	return image.Pt(
		int(pos.X*float32(bounds.Dx())/size.Width),
		int(pos.Y*float32(bounds.Dy())/size.Height),
	)
}

func (pc *paintCanvas) redraw() {
	img, err := pc.surface.Image()
	if err != nil {
		pc.report(err)
		return
	}
	pc.image.Image = img
	pc.image.Refresh()
}

func (pc *paintCanvas) report(err error) {
	if pc.onError != nil {
		pc.onError(err)
	}
}

func buildPaint(env *Env) fyne.CanvasObject {
	s := newSurface(surfaceWidth, surfaceHeight)
	env.OnClose(s.Close)

	pc := newPaintCanvas(s, func(err error) {
		env.Logger.Error("Paint", err, nil)
	})

	buttons := make([]fyne.CanvasObject, 0, len(palette))
	for _, entry := range palette {
		c := entry.Color
		buttons = append(buttons, widget.NewButton(entry.Name, func() { pc.SetBrush(c) }))
	}
	return container.NewBorder(nil, container.NewHBox(buttons...), nil, nil, pc)
}
