package apps

import (
	"errors"
	"fmt"

	"win31-sim/internal/logger"
	"win31-sim/internal/models"
	"win31-sim/internal/services"

	"fyne.io/fyne/v2"
)

const (
	NotepadID      = "notepad"
	PaintID        = "paint"
	CalculatorID   = "calculator"
	ControlPanelID = "controlpanel"
)

var ErrUnknownApplication = errors.New("unknown application")

// Host is what applications may ask of the desktop that owns them.
type Host interface {
	Settings() *models.Settings
	// ChangeBackground stores the new color, repaints the Program Manager
	// and persists the settings.
	ChangeBackground(colorID string)
}

// Env is handed to a content builder for one freshly created window.
type Env struct {
	Window     fyne.Window
	Host       Host
	Logger     logger.Logger
	Calculator *services.Calculator
	Reporter   *services.SystemReporter

	cleanups []func()
}

// OnClose registers fn to run once the window is destroyed.
func (e *Env) OnClose(fn func()) {
	e.cleanups = append(e.cleanups, fn)
}

func (e *Env) runCleanups() {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i]()
	}
	e.cleanups = nil
}

// BuildFunc populates the body of a new application window.
type BuildFunc func(env *Env) fyne.CanvasObject

// Descriptor describes one launchable application.
type Descriptor struct {
	ID    string
	Title string
	Size  fyne.Size
	Build BuildFunc
}

// Registry maps application ids to descriptors. It is fixed after construction.
type Registry struct {
	descriptors map[string]Descriptor
	order       []string
}

func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{descriptors: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := r.descriptors[d.ID]; !dup {
			r.order = append(r.order, d.ID)
		}
		r.descriptors[d.ID] = d
	}
	return r
}

// Builtin returns the registry holding the four bundled applications.
func Builtin() *Registry {
	size := fyne.NewSize(500, 400)
	return NewRegistry(
		Descriptor{ID: NotepadID, Title: "Notepad", Size: size, Build: buildNotepad},
		Descriptor{ID: PaintID, Title: "Paint", Size: size, Build: buildPaint},
		Descriptor{ID: CalculatorID, Title: "Calculator", Size: size, Build: buildCalculator},
		Descriptor{ID: ControlPanelID, Title: "Control Panel", Size: size, Build: buildControlPanel},
	)
}

func (r *Registry) Lookup(id string) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownApplication, id)
	}
	return d, nil
}

// IDs returns application ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
