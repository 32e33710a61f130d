package wm

import "errors"

// InstanceID identifies one opened application window.
type InstanceID string

// State is the lifecycle state of an instance.
type State int

const (
	// StateOpen indicates the window is visible.
	StateOpen State = iota
	// StateMinimized indicates the window is hidden and has a taskbar entry.
	StateMinimized
	// StateClosed indicates the window was destroyed. Closed instances are
	// no longer tracked; State reports this for unknown ids.
	StateClosed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateMinimized:
		return "minimized"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Window is the handle the manager drives. fyne.Window satisfies it.
type Window interface {
	Show()
	Hide()
	Close()
}

// Taskbar creates restore affordances for minimized windows.
type Taskbar interface {
	Add(label string, onRestore func()) TaskbarEntry
}

// TaskbarEntry is a live affordance on the taskbar.
type TaskbarEntry interface {
	Remove()
}

// Instance is a read-only view of a tracked window.
type Instance struct {
	ID    InstanceID
	AppID string
	Title string
	State State
}

// ErrInstanceNotFound is returned for ids that were never registered or are closed.
var ErrInstanceNotFound = errors.New("window instance not found")
