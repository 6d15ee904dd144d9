package core

import (
	"sort"

	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// SortTasks returns a copy of tasks in the requested order. All sorts
// are stable: ties keep their relative storage order.
func SortTasks(tasks []models.Task, by models.SortType) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	switch by {
	case models.SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case models.SortByStatus:
		// Incomplete before complete.
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Completed && out[j].Completed
		})
	case models.SortByCreation:
		// Storage order is creation order; nothing to do.
	}
	return out
}
