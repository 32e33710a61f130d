/*
Package wm tracks the sub-windows opened from the Program Manager and the
taskbar entries that stand in for them while they are minimized.

Every opened window gets its own InstanceID, so two Calculators can be
minimized and restored independently. Per instance the lifecycle is

	Open <-> Minimized -> Closed

A taskbar entry exists exactly while its instance is Minimized.

Example usage:

	manager := wm.NewManager(taskbar, log)
	id := manager.Register("calculator", "Calculator", window)
	_ = manager.Minimize(id) // window hidden, taskbar entry added
	_ = manager.Restore(id)  // window shown, taskbar entry removed
	_ = manager.Close(id)    // window closed, instance forgotten
*/
package wm
