package roster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSelection is returned by Modify and Delete when no employee is selected.
var ErrNoSelection = errors.New("no employee selected")

// ValidationError indicates one or more form fields were left empty.
type ValidationError struct {
	Fields []string // empty fields, in form order
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// DuplicateIDError indicates the id belongs to another employee.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("employee %s already exists", e.ID)
}

// NotFoundError indicates the selected employee is no longer in the roster.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %s not found", e.ID)
}
