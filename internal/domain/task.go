package domain

import "strings"

// Task is a to-do item. ID is assigned by storage and never changes;
// Description is fixed at creation; Completed is the only mutable field.
type Task struct {
	ID          int64
	Description string
	Completed   bool
}

// NewTask builds an unsaved task with Completed=false.
// Returns a ValidationError if description is blank.
func NewTask(description string) (*Task, error) {
	t := &Task{Description: description}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the fields a caller can set.
// ID is not checked here since unsaved tasks have none yet.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return NewValidationError("descricao", "is required", ErrEmptyDescription)
	}
	return nil
}

// ValidateID checks that id could have been assigned by storage.
func ValidateID(id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	return nil
}
