package wm

import (
	"fmt"
	"sync"

	"win31-sim/internal/logger"

	"github.com/google/uuid"
)

type instance struct {
	id     InstanceID
	appID  string
	title  string
	window Window
	state  State
	entry  TaskbarEntry
}

// Manager owns the window and taskbar bookkeeping. All window and taskbar
// calls happen after the lock is released, so a window's own close callback
// may call back into the manager.
type Manager struct {
	mu        sync.RWMutex
	instances map[InstanceID]*instance
	order     []InstanceID
	taskbar   Taskbar
	logger    logger.Logger
}

func NewManager(taskbar Taskbar, log logger.Logger) *Manager {
	return &Manager{
		instances: make(map[InstanceID]*instance),
		taskbar:   taskbar,
		logger:    log,
	}
}

// Register starts tracking a freshly opened, visible window.
func (m *Manager) Register(appID, title string, window Window) InstanceID {
	id := InstanceID(uuid.New().String())

	m.mu.Lock()
	m.instances[id] = &instance{
		id:     id,
		appID:  appID,
		title:  title,
		window: window,
		state:  StateOpen,
	}
	m.order = append(m.order, id)
	m.mu.Unlock()

	m.logger.Debug("WindowManager", "window registered", map[string]interface{}{
		"instance": string(id),
		"app":      appID,
	})
	return id
}

// Minimize hides the window and adds a taskbar entry that restores it.
// Minimizing an already minimized window does nothing.
func (m *Manager) Minimize(id InstanceID) error {
	m.mu.Lock()
	inst, ok := m.instances[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("minimize %s: %w", id, ErrInstanceNotFound)
	}
	if inst.state == StateMinimized {
		m.mu.Unlock()
		return nil
	}
	inst.state = StateMinimized
	m.mu.Unlock()

	inst.window.Hide()
	entry := m.taskbar.Add(inst.title, func() {
		if err := m.Restore(id); err != nil {
			m.logger.Error("WindowManager", err, map[string]interface{}{
				"instance": string(id),
			})
		}
	})

	m.mu.Lock()
	if current, ok := m.instances[id]; ok && current.state == StateMinimized {
		current.entry = entry
		entry = nil
	}
	m.mu.Unlock()

	// Closed or restored while the entry was being built.
	if entry != nil {
		entry.Remove()
	}

	m.logger.Debug("WindowManager", "window minimized", map[string]interface{}{
		"instance": string(id),
		"app":      inst.appID,
	})
	return nil
}

// Restore shows a minimized window again and removes its taskbar entry.
// Restoring an open window does nothing.
func (m *Manager) Restore(id InstanceID) error {
	m.mu.Lock()
	inst, ok := m.instances[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("restore %s: %w", id, ErrInstanceNotFound)
	}
	if inst.state == StateOpen {
		m.mu.Unlock()
		return nil
	}
	inst.state = StateOpen
	entry := inst.entry
	inst.entry = nil
	m.mu.Unlock()

	inst.window.Show()
	if entry != nil {
		entry.Remove()
	}

	m.logger.Debug("WindowManager", "window restored", map[string]interface{}{
		"instance": string(id),
		"app":      inst.appID,
	})
	return nil
}

// Close destroys the window and any taskbar entry, from either Open or
// Minimized. The instance is forgotten before the window is closed, so a
// second Close from the window's own close callback is a no-op.
func (m *Manager) Close(id InstanceID) error {
	m.mu.Lock()
	inst, ok := m.instances[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("close %s: %w", id, ErrInstanceNotFound)
	}
	delete(m.instances, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	entry := inst.entry
	inst.entry = nil
	inst.state = StateClosed
	m.mu.Unlock()

	if entry != nil {
		entry.Remove()
	}
	inst.window.Close()

	m.logger.Debug("WindowManager", "window closed", map[string]interface{}{
		"instance": string(id),
		"app":      inst.appID,
	})
	return nil
}

// CloseAll closes every tracked window, newest first.
func (m *Manager) CloseAll() {
	m.mu.RLock()
	ids := make([]InstanceID, len(m.order))
	copy(ids, m.order)
	m.mu.RUnlock()

	for i := len(ids) - 1; i >= 0; i-- {
		_ = m.Close(ids[i])
	}
}

// State reports the lifecycle state; unknown ids are StateClosed.
func (m *Manager) State(id InstanceID) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inst, ok := m.instances[id]
	if !ok {
		return StateClosed
	}
	return inst.state
}

// Get returns a snapshot of one instance.
func (m *Manager) Get(id InstanceID) (Instance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inst, ok := m.instances[id]
	if !ok {
		return Instance{}, ErrInstanceNotFound
	}
	return inst.snapshot(), nil
}

// Instances returns all tracked instances in the order they were opened.
func (m *Manager) Instances() []Instance {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Instance, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.instances[id].snapshot())
	}
	return out
}

// Minimized returns the ids that currently hold a taskbar entry.
func (m *Manager) Minimized() []InstanceID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []InstanceID
	for _, id := range m.order {
		if m.instances[id].entry != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of tracked windows.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.instances)
}

func (i *instance) snapshot() Instance {
	return Instance{
		ID:    i.id,
		AppID: i.appID,
		Title: i.title,
		State: i.state,
	}
}
