// Package core contains the business logic for taskdeck: task lifecycle
// operations, sort policy, and configuration loading.
package core

import (
	"strings"

	"github.com/valter-silva-au/taskdeck/internal/observability"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// TaskStore is the subset of storage.Store that TaskService needs.
// Defining it here keeps core independent of the storage package.
type TaskStore interface {
	Add(task models.Task) error
	Update(task models.Task) error
	Remove(id string) error
	FetchAll() ([]models.Task, error)
	Find(id string) (models.Task, error)
}

// TaskService defines the interface for task lifecycle operations.
//
// Status and LastReason expose the coarse outcome of the most recent
// call. The field is overwritten on every operation, so it is a display
// hook for the last error message, not an audit trail.
type TaskService interface {
	AddTask(title string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	CompleteTask(id string) (models.Task, error)
	RemoveTask(id string) error
	GetTasksSorted(by models.SortType) ([]models.Task, error)
	Status() models.OpStatus
	LastReason() string
}

// taskService implements TaskService against an injected store and
// operation log.
type taskService struct {
	store  TaskStore
	log    observability.Logger
	status models.OpStatus
	reason string
}

// NewTaskService creates a TaskService with all dependencies injected.
// log may be nil, in which case events are discarded.
func NewTaskService(store TaskStore, log observability.Logger) TaskService {
	if log == nil {
		log = observability.Nop()
	}
	return &taskService{
		store:  store,
		log:    log,
		status: models.StatusIdle,
	}
}

// begin marks the start of an operation. Validation failures overwrite
// this with an error status; success overwrites it with loaded.
func (s *taskService) begin() {
	s.status = models.StatusLoading
	s.reason = ""
}

func (s *taskService) loaded() {
	s.status = models.StatusLoaded
	s.reason = ""
}

// invalid records the human-readable reason before raising InvalidData.
func (s *taskService) invalid(reason string) *models.DomainError {
	s.status = models.StatusError
	s.reason = reason
	return &models.DomainError{Kind: models.InvalidData, Reason: reason}
}

// AddTask validates the title, constructs a new incomplete task with a
// fresh identifier, and appends it to storage.
func (s *taskService) AddTask(title string) (models.Task, error) {
	s.begin()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return models.Task{}, s.invalid("task title must not be empty")
	}

	task := models.NewTask(trimmed)
	if err := s.store.Add(task); err != nil {
		return models.Task{}, err
	}

	s.loaded()
	s.logEvent("task.added", "added task", task)
	return task, nil
}

// GetAllTasks returns the stored tasks in current order, propagating
// EmptyCollection verbatim.
func (s *taskService) GetAllTasks() ([]models.Task, error) {
	s.begin()

	tasks, err := s.store.FetchAll()
	if err != nil {
		return nil, err
	}

	s.loaded()
	s.log.Log(observability.Event{
		Type:    "task.listed",
		Message: "listed tasks",
		Data:    map[string]any{"count": len(tasks)},
	})
	return tasks, nil
}

// CompleteTask flips the task's completion flag. A task completes at
// most once; completing it again is a validation failure. The record is
// updated in place, so its position in the sequence does not change.
func (s *taskService) CompleteTask(id string) (models.Task, error) {
	s.begin()

	task, err := s.store.Find(id)
	if err != nil {
		return models.Task{}, err
	}
	if task.Completed {
		return models.Task{}, s.invalid("task is already completed")
	}

	task.Completed = true
	if err := s.store.Update(task); err != nil {
		return models.Task{}, err
	}

	s.loaded()
	s.logEvent("task.completed", "completed task", task)
	return task, nil
}

// RemoveTask deletes the task with the given identifier, propagating
// NotFound from storage.
func (s *taskService) RemoveTask(id string) error {
	s.begin()

	if err := s.store.Remove(id); err != nil {
		return err
	}

	s.loaded()
	s.log.Log(observability.Event{
		Type:    "task.removed",
		Message: "removed task",
		Data:    map[string]any{"id": id},
	})
	return nil
}

// GetTasksSorted fetches all tasks and applies the requested ordering,
// propagating any fetch error.
func (s *taskService) GetTasksSorted(by models.SortType) ([]models.Task, error) {
	s.begin()

	if !models.ValidSortType(by) {
		return nil, s.invalid("unknown sort type: " + string(by))
	}

	tasks, err := s.store.FetchAll()
	if err != nil {
		return nil, err
	}

	s.loaded()
	return SortTasks(tasks, by), nil
}

func (s *taskService) Status() models.OpStatus {
	return s.status
}

func (s *taskService) LastReason() string {
	return s.reason
}

func (s *taskService) logEvent(eventType, msg string, task models.Task) {
	s.log.Log(observability.Event{
		Type:    eventType,
		Message: msg,
		Data:    map[string]any{"id": task.ID, "title": task.Title},
	})
}
