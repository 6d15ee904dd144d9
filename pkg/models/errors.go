package models

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the closed set of domain failures.
type ErrorKind string

const (
	// NotFound means a lookup by identifier matched nothing.
	NotFound ErrorKind = "not_found"
	// EmptyCollection means a fetch ran against a collection with zero items.
	EmptyCollection ErrorKind = "empty_collection"
	// InvalidData means input validation failed.
	InvalidData ErrorKind = "invalid_data"
	// StorageError is reserved for non-memory backends; the in-memory
	// store never raises it.
	StorageError ErrorKind = "storage_error"
)

// DomainError carries a failure kind and a human-readable reason.
type DomainError struct {
	Kind   ErrorKind
	Reason string
}

func (e *DomainError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	switch e.Kind {
	case NotFound:
		return "item not found"
	case EmptyCollection:
		return "the collection is empty"
	case InvalidData:
		return "invalid data"
	case StorageError:
		return "storage failure"
	}
	return string(e.Kind)
}

// Errf constructs a DomainError of the given kind with a formatted reason.
func Errf(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var derr *DomainError
	return errors.As(err, &derr) && derr.Kind == kind
}
