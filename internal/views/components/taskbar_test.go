package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskbarAddAndRemove(t *testing.T) {
	test.NewTempApp(t)
	taskbar := NewTaskbar()

	restored := 0
	calc := taskbar.Add("Calculator", func() { restored++ })
	taskbar.Add("Notepad", func() {})

	assert.Equal(t, []string{"Calculator", "Notepad"}, taskbar.Labels())

	entries := taskbar.Entries()
	require.Len(t, entries, 2)
	test.Tap(entries[0])
	assert.Equal(t, 1, restored)

	calc.Remove()
	assert.Equal(t, []string{"Notepad"}, taskbar.Labels())
}

func TestTaskbarExitButton(t *testing.T) {
	test.NewTempApp(t)
	taskbar := NewTaskbar()

	test.Tap(taskbar.ExitButton())

	exits := 0
	taskbar.SetExitHandler(func() { exits++ })
	test.Tap(taskbar.ExitButton())
	assert.Equal(t, 1, exits)
	assert.Equal(t, "Exit Session", taskbar.ExitButton().Text)
}
