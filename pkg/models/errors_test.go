package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorDescriptions(t *testing.T) {
	tests := []struct {
		err  *DomainError
		want string
	}{
		{&DomainError{Kind: NotFound}, "item not found"},
		{&DomainError{Kind: EmptyCollection}, "the collection is empty"},
		{&DomainError{Kind: InvalidData}, "invalid data"},
		{&DomainError{Kind: StorageError}, "storage failure"},
		{Errf(NotFound, "no item with id %s", "abc"), "no item with id abc"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := Errf(InvalidData, "bad input")

	if !IsKind(err, InvalidData) {
		t.Errorf("expected IsKind to match the error's own kind")
	}
	if IsKind(err, NotFound) {
		t.Errorf("expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), InvalidData) {
		t.Errorf("expected IsKind to reject non-domain errors")
	}

	// Wrapped domain errors still classify.
	wrapped := fmt.Errorf("completing task: %w", err)
	if !IsKind(wrapped, InvalidData) {
		t.Errorf("expected IsKind to see through wrapping")
	}
}
