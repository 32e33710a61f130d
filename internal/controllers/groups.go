package controllers

import (
	"win31-sim/internal/apps"
	"win31-sim/internal/views"
)

// DesktopGroups lays the registered applications out on the Program Manager.
func DesktopGroups(registry *apps.Registry) []views.ProgramGroup {
	layout := []struct {
		title string
		ids   []string
	}{
		{"Program Manager", []string{apps.NotepadID, apps.ControlPanelID}},
		{"Manager", []string{apps.CalculatorID, apps.PaintID}},
	}

	groups := make([]views.ProgramGroup, 0, len(layout))
	for _, l := range layout {
		group := views.ProgramGroup{Title: l.title}
		for _, id := range l.ids {
			desc, err := registry.Lookup(id)
			if err != nil {
				continue
			}
			group.Items = append(group.Items, views.ProgramItem{ID: desc.ID, Label: desc.Title})
		}
		groups = append(groups, group)
	}
	return groups
}
