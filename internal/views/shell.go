package views

import (
	"context"
	"sync"
	"time"

	"win31-sim/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Screen identifies one of the mutually exclusive top-level views.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenBoot
	ScreenProgramManager
)

func (s Screen) String() string {
	switch s {
	case ScreenBoot:
		return "boot"
	case ScreenProgramManager:
		return "program_manager"
	default:
		return "none"
	}
}

// Shell switches between the boot screen and the Program Manager. Both
// screens stay mounted in one stack; switching only toggles visibility.
type Shell struct {
	mu      sync.RWMutex
	content *fyne.Container
	screens map[Screen]fyne.CanvasObject
	current Screen
	delay   time.Duration
	logger  logger.Logger

	bootCompleteHandler func()
	booted              chan struct{}
	bootOnce            sync.Once
}

// NewShell mounts both screens hidden. Call Start to show the boot screen.
func NewShell(boot, programManager fyne.CanvasObject, delay time.Duration, log logger.Logger) *Shell {
	boot.Hide()
	programManager.Hide()

	return &Shell{
		content: container.NewStack(boot, programManager),
		screens: map[Screen]fyne.CanvasObject{
			ScreenBoot:           boot,
			ScreenProgramManager: programManager,
		},
		delay:  delay,
		logger: log,
		booted: make(chan struct{}),
	}
}

// SetBootCompleteHandler runs on the UI goroutine right after the Program
// Manager becomes visible.
func (s *Shell) SetBootCompleteHandler(handler func()) {
	s.bootCompleteHandler = handler
}

// Content returns the stack holding both screens
func (s *Shell) Content() fyne.CanvasObject {
	return s.content
}

// Start shows the boot screen and schedules the switch to the Program
// Manager. The waiting goroutine never touches widgets; it posts the
// transition back to the UI goroutine. Cancelling ctx abandons it.
func (s *Shell) Start(ctx context.Context) {
	s.SwitchTo(ScreenBoot)

	s.logger.Info("Shell", "boot sequence started", map[string]interface{}{
		"delay": s.delay.String(),
	})

	go func() {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			fyne.Do(s.onBootComplete)
		case <-ctx.Done():
			s.logger.Debug("Shell", "boot sequence abandoned", nil)
		}
	}()
}

func (s *Shell) onBootComplete() {
	s.SwitchTo(ScreenProgramManager)
	if s.bootCompleteHandler != nil {
		s.bootCompleteHandler()
	}
	s.bootOnce.Do(func() { close(s.booted) })

	s.logger.Info("Shell", "boot sequence completed", nil)
}

// SwitchTo hides the visible screen and shows the requested one.
func (s *Shell) SwitchTo(screen Screen) {
	next, ok := s.screens[screen]
	if !ok {
		return
	}

	s.mu.Lock()
	previous := s.current
	s.current = screen
	s.mu.Unlock()

	if previous == screen {
		return
	}
	if obj, ok := s.screens[previous]; ok {
		obj.Hide()
	}
	next.Show()

	s.logger.Debug("Shell", "screen switched", map[string]interface{}{
		"from": previous.String(),
		"to":   screen.String(),
	})
}

// Screen reports the visible screen.
func (s *Shell) Screen() Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Booted is closed once the Program Manager has been shown by Start.
func (s *Shell) Booted() <-chan struct{} {
	return s.booted
}
