// Package storage defines the ordered collection contract for
// identifiable items and provides the in-memory implementation backing
// the task service.
package storage

// Identifiable is an item carrying a unique identifier.
type Identifiable interface {
	Identifier() string
}

// Store defines ordered collection operations over identifiable items.
// Identifiers are assumed unique by construction; Add performs no
// duplicate check.
type Store[T Identifiable] interface {
	// Add appends the item to the collection.
	Add(item T) error
	// Update replaces the stored item carrying the same identifier,
	// keeping its position in the sequence.
	Update(item T) error
	// Remove deletes the item with the given identifier, shifting
	// subsequent items forward.
	Remove(id string) error
	// FetchAll returns every item in current order. Fetching from an
	// empty collection is an error by policy.
	FetchAll() ([]T, error)
	// Find returns the item with the given identifier.
	Find(id string) (T, error)
	// FindWhere returns the first item matching the predicate.
	FindWhere(pred func(T) bool) (T, error)
}
