// Package ops implements task operations over an injected store.
package ops

import (
	"strings"

	"github.com/jacksmith/taskd/internal/model"
)

// Store is the persistence capability the operations depend on. The
// collection is always read and written in full; implementations report
// failures with their own classified error types.
type Store interface {
	LoadAll() ([]model.Task, error)
	SaveAll([]model.Task) error
}

// TaskOptions contains optional fields for creating a new task.
type TaskOptions struct {
	Description string
	Status      string
	Priority    string
	DueDate     string
}

// DeleteResult contains the outcome of a successful delete.
type DeleteResult struct {
	// Deleted is the removed record, exactly as it was persisted.
	Deleted model.Task
	// Remaining is the collection size after removal.
	Remaining int
}

// ValidateTitle checks that a task title is not empty or whitespace-only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	return nil
}

// DeleteTask removes the task with the given ID from the store.
//
// The ID is validated before any I/O: an empty ID fails with
// MissingIDError and a non-digit ID with InvalidIDError, in both cases
// without touching the store. Matching is exact string equality, so
// leading zeros are significant. If duplicate IDs exist only the first
// match is removed. Relative order of the remaining tasks is preserved.
func DeleteTask(s Store, id string) (*DeleteResult, error) {
	if id == "" {
		return nil, &MissingIDError{}
	}
	if !model.ValidTaskID(id) {
		return nil, &InvalidIDError{Provided: id}
	}

	tasks, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotFoundError{ID: id, Available: len(tasks)}
	}

	deleted := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := s.SaveAll(tasks); err != nil {
		return nil, err
	}

	return &DeleteResult{Deleted: deleted, Remaining: len(tasks)}, nil
}

// AddTask creates a new task and appends it to the store. The ID is
// generated from the current time; status and priority fall back to
// defaults when not provided.
func AddTask(s Store, title string, opts TaskOptions) (*model.Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	tasks, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	status := opts.Status
	if status == "" {
		status = model.DefaultStatus
	}
	priority := opts.Priority
	if priority == "" {
		priority = model.DefaultPriority
	}

	task := model.Task{
		ID:          model.NewTaskID(),
		Title:       title,
		Description: opts.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     opts.DueDate,
	}

	tasks = append(tasks, task)
	if err := s.SaveAll(tasks); err != nil {
		return nil, err
	}

	return &task, nil
}

// ListTasks returns the whole collection in persisted order.
func ListTasks(s Store) ([]model.Task, error) {
	return s.LoadAll()
}
