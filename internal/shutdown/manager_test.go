package shutdown

import (
	"testing"
	"time"

	"win31-sim/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(&logger.NoOpLogger{})

	var order []string
	m.Register("settings", Func(func() { order = append(order, "settings") }))
	m.Register("windows", Func(func() { order = append(order, "windows") }))

	completed := 0
	m.SetOnComplete(func() { completed++ })

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"windows", "settings"}, order)
	assert.Equal(t, 1, completed)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownComponentTimeout(t *testing.T) {
	m := NewManager(&logger.NoOpLogger{})
	m.SetComponentTimeout(20 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	m.Register("stuck", Func(func() { <-block }))

	ran := false
	m.Register("quick", Func(func() { ran = true }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestListenStopsWithContext(t *testing.T) {
	m := NewManager(&logger.NoOpLogger{})
	m.Listen()
	m.Shutdown()

	assert.Eventually(t, func() bool { return m.Context().Err() != nil }, time.Second, 10*time.Millisecond)
}
