package ops

import "fmt"

// MissingIDError indicates a delete request arrived without a task ID.
type MissingIDError struct{}

func (e *MissingIDError) Error() string {
	return "task ID is required"
}

// InvalidIDError indicates a task ID that is not a digit string.
type InvalidIDError struct {
	Provided string // the rejected value
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid task ID %q: must contain only digits", e.Provided)
}

// NotFoundError indicates no task in the collection has the requested ID.
type NotFoundError struct {
	ID        string // the requested ID
	Available int    // size of the collection that was searched
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found (%d tasks available)", e.ID, e.Available)
}

// ValidationError indicates a task field failed validation on create.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}
