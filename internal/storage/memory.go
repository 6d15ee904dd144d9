package storage

import (
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// MemoryStore is an ordered, process-local Store implementation.
// It holds items in insertion order and performs linear lookups, which
// is fine for an interactive single-user collection.
type MemoryStore[T Identifiable] struct {
	items []T
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[T Identifiable]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

// Add appends the item. It always succeeds: identifiers are unique by
// construction, so no duplicate check is performed.
func (s *MemoryStore[T]) Add(item T) error {
	s.items = append(s.items, item)
	return nil
}

// Update replaces the stored item with the same identifier in place,
// preserving its position in the sequence.
func (s *MemoryStore[T]) Update(item T) error {
	for i := range s.items {
		if s.items[i].Identifier() == item.Identifier() {
			s.items[i] = item
			return nil
		}
	}
	return models.Errf(models.NotFound, "no item with id %s", item.Identifier())
}

// Remove deletes the item with the given identifier, shifting later
// items forward.
func (s *MemoryStore[T]) Remove(id string) error {
	for i := range s.items {
		if s.items[i].Identifier() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return models.Errf(models.NotFound, "no item with id %s", id)
}

// FetchAll returns a copy of every item in current order.
//
// An empty collection is treated as an error rather than a zero-length
// result. The policy is deliberate and lives only here; callers that
// want "empty is fine" semantics check for models.EmptyCollection.
func (s *MemoryStore[T]) FetchAll() ([]T, error) {
	if len(s.items) == 0 {
		return nil, models.Errf(models.EmptyCollection, "the collection is empty")
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Find returns the item with the given identifier. It is derived from
// FetchAll, so an empty collection surfaces as EmptyCollection.
func (s *MemoryStore[T]) Find(id string) (T, error) {
	item, err := s.FindWhere(func(it T) bool { return it.Identifier() == id })
	if models.IsKind(err, models.NotFound) {
		var zero T
		return zero, models.Errf(models.NotFound, "no item with id %s", id)
	}
	return item, err
}

// FindWhere returns the first item matching the predicate, propagating
// EmptyCollection from the underlying fetch.
func (s *MemoryStore[T]) FindWhere(pred func(T) bool) (T, error) {
	var zero T
	items, err := s.FetchAll()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if pred(it) {
			return it, nil
		}
	}
	return zero, models.Errf(models.NotFound, "no matching item")
}
