package models

import "github.com/google/uuid"

// OpStatus represents the outcome of the most recent service operation.
// It is overwritten on every call and only reflects the last operation.
type OpStatus string

const (
	StatusIdle    OpStatus = "idle"
	StatusLoading OpStatus = "loading"
	StatusLoaded  OpStatus = "loaded"
	StatusError   OpStatus = "error"
)

// SortType selects one of the supported task list orderings.
type SortType string

const (
	SortByTitle    SortType = "title"
	SortByStatus   SortType = "status"
	SortByCreation SortType = "creation"
)

// ValidSortType reports whether s names a supported ordering.
func ValidSortType(s SortType) bool {
	switch s {
	case SortByTitle, SortByStatus, SortByCreation:
		return true
	}
	return false
}

// Task represents a unit of work identified by an opaque unique ID.
// The ID is assigned at construction and never changes; the completion
// flag moves from false to true exactly once.
type Task struct {
	ID        string `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Completed bool   `yaml:"completed" json:"completed"`
}

// NewTask constructs an incomplete task with a fresh identifier.
// Title validation is the service's job, not the entity's.
func NewTask(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Identifier returns the task's unique ID, satisfying the storage contract.
func (t Task) Identifier() string {
	return t.ID
}
