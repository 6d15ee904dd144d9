package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/taskdeck/internal/storage"
	"github.com/valter-silva-au/taskdeck/pkg/models"
	"pgregory.net/rapid"
)

// Property: adding a task with a non-blank title always succeeds and the
// task appears exactly once in the listing.
func TestProperty_AddNonBlankTitle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		title := rapid.StringN(1, 40, 40).
			Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).
			Draw(rt, "title")

		svc := NewTaskService(storage.NewMemoryStore[models.Task](), nil)

		task, err := svc.AddTask(title)
		if err != nil {
			rt.Fatalf("AddTask(%q) failed: %v", title, err)
		}
		if task.Title != strings.TrimSpace(title) {
			rt.Fatalf("expected trimmed title %q, got %q", strings.TrimSpace(title), task.Title)
		}

		tasks, err := svc.GetAllTasks()
		if err != nil {
			rt.Fatalf("GetAllTasks failed: %v", err)
		}
		seen := 0
		for _, got := range tasks {
			if got.ID == task.ID {
				seen++
			}
		}
		if seen != 1 {
			rt.Fatalf("expected the task exactly once, saw it %d times", seen)
		}
	})
}

// Property: sorting never adds, drops, or mutates tasks; it only
// permutes them, and by-status keeps incomplete tasks ahead of
// completed ones.
func TestProperty_SortIsAPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "n")
		svc := NewTaskService(storage.NewMemoryStore[models.Task](), nil)

		ids := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			title := rapid.StringN(1, 10, 10).
				Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).
				Draw(rt, "title")
			task, err := svc.AddTask(title)
			if err != nil {
				rt.Fatalf("AddTask failed: %v", err)
			}
			if rapid.Bool().Draw(rt, "complete") {
				if _, err := svc.CompleteTask(task.ID); err != nil {
					rt.Fatalf("CompleteTask failed: %v", err)
				}
			}
			ids[task.ID] = true
		}

		by := rapid.SampledFrom([]models.SortType{
			models.SortByTitle, models.SortByStatus, models.SortByCreation,
		}).Draw(rt, "by")

		sorted, err := svc.GetTasksSorted(by)
		if err != nil {
			rt.Fatalf("GetTasksSorted failed: %v", err)
		}
		if len(sorted) != n {
			rt.Fatalf("sort changed the task count: expected %d, got %d", n, len(sorted))
		}
		for _, task := range sorted {
			if !ids[task.ID] {
				rt.Fatalf("sort produced an unknown task %s", task.ID)
			}
		}

		if by == models.SortByStatus {
			sawCompleted := false
			for _, task := range sorted {
				if task.Completed {
					sawCompleted = true
				} else if sawCompleted {
					rt.Fatalf("incomplete task after a completed one in status sort")
				}
			}
		}
	})
}
