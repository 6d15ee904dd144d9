package storage

import (
	"testing"

	"github.com/valter-silva-au/taskdeck/pkg/models"
	"pgregory.net/rapid"
)

// Property: the store preserves insertion order and FetchAll returns
// exactly the items added, no more, no fewer.
func TestProperty_InsertionOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		titles := rapid.SliceOfN(rapid.StringN(1, 20, 20), 1, 50).Draw(rt, "titles")

		store := NewMemoryStore[models.Task]()
		added := make([]models.Task, 0, len(titles))
		for _, title := range titles {
			task := models.NewTask(title)
			if err := store.Add(task); err != nil {
				rt.Fatalf("Add failed: %v", err)
			}
			added = append(added, task)
		}

		tasks, err := store.FetchAll()
		if err != nil {
			rt.Fatalf("FetchAll failed: %v", err)
		}
		if len(tasks) != len(added) {
			rt.Fatalf("expected %d tasks, got %d", len(added), len(tasks))
		}
		for i := range added {
			if tasks[i].ID != added[i].ID {
				rt.Fatalf("order violated at %d: expected %s, got %s", i, added[i].ID, tasks[i].ID)
			}
		}
	})
}

// Property: removing every item in any order always empties the store
// back to the EmptyCollection state.
func TestProperty_RemoveAllEmptiesStore(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(rt, "n")

		store := NewMemoryStore[models.Task]()
		ids := make([]string, 0, n)
		for i := 0; i < n; i++ {
			task := models.NewTask("task")
			if err := store.Add(task); err != nil {
				rt.Fatalf("Add failed: %v", err)
			}
			ids = append(ids, task.ID)
		}

		order := rapid.Permutation(ids).Draw(rt, "order")
		for _, id := range order {
			if err := store.Remove(id); err != nil {
				rt.Fatalf("Remove(%s) failed: %v", id, err)
			}
		}

		if _, err := store.FetchAll(); !models.IsKind(err, models.EmptyCollection) {
			rt.Fatalf("expected EmptyCollection after removing everything, got %v", err)
		}
	})
}
