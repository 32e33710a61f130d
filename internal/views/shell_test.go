package views

import (
	"context"
	"testing"
	"time"

	"win31-sim/internal/logger"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(delay time.Duration) (*Shell, *canvas.Rectangle, *canvas.Rectangle) {
	boot := canvas.NewRectangle(nil)
	pm := canvas.NewRectangle(nil)
	return NewShell(boot, pm, delay, logger.NoOpLogger{}), boot, pm
}

func TestShellStartsHidden(t *testing.T) {
	test.NewTempApp(t)
	shell, boot, pm := newTestShell(time.Hour)

	assert.Equal(t, ScreenNone, shell.Screen())
	assert.False(t, boot.Visible())
	assert.False(t, pm.Visible())
}

func TestShellSwitchTo(t *testing.T) {
	test.NewTempApp(t)
	shell, boot, pm := newTestShell(time.Hour)

	shell.SwitchTo(ScreenBoot)
	assert.True(t, boot.Visible())
	assert.False(t, pm.Visible())

	shell.SwitchTo(ScreenProgramManager)
	assert.False(t, boot.Visible())
	assert.True(t, pm.Visible())
	assert.Equal(t, ScreenProgramManager, shell.Screen())

	shell.SwitchTo(ScreenProgramManager)
	assert.True(t, pm.Visible())

	shell.SwitchTo(Screen(99))
	assert.Equal(t, ScreenProgramManager, shell.Screen())
}

func TestShellBootSequence(t *testing.T) {
	test.NewTempApp(t)
	shell, boot, pm := newTestShell(20 * time.Millisecond)

	applied := 0
	shell.SetBootCompleteHandler(func() { applied++ })

	shell.Start(context.Background())
	assert.Equal(t, ScreenBoot, shell.Screen())
	assert.True(t, boot.Visible())

	select {
	case <-shell.Booted():
	case <-time.After(2 * time.Second):
		require.FailNow(t, "boot sequence did not complete")
	}

	assert.Equal(t, ScreenProgramManager, shell.Screen())
	assert.False(t, boot.Visible())
	assert.True(t, pm.Visible())
	assert.Equal(t, 1, applied)
}

func TestShellBootSequenceAbandonedOnCancel(t *testing.T) {
	test.NewTempApp(t)
	shell, _, _ := newTestShell(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	shell.Start(ctx)
	cancel()

	select {
	case <-shell.Booted():
		t.Fatal("boot completed after cancellation")
	case <-time.After(150 * time.Millisecond):
	}
	assert.Equal(t, ScreenBoot, shell.Screen())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "boot", ScreenBoot.String())
	assert.Equal(t, "program_manager", ScreenProgramManager.String())
	assert.Equal(t, "none", ScreenNone.String())
}
