// Package roster holds the in-memory employee roster and its selection.
//
// A Store is owned by one presentation adapter and is not safe for concurrent
// use; adapters that receive requests concurrently must serialise calls.
// Every operation either applies completely or leaves the store unchanged.
package roster

import (
	"fmt"

	"github.com/jacksmith/roster/internal/model"
)

// Store is an ordered collection of employees plus the current selection.
type Store struct {
	employees []model.Employee
	selected  string // id of the selected employee, "" when unselected
}

// New returns an empty store with nothing selected.
func New() *Store {
	return &Store{}
}

// Add stores the form as an employee.
//
// When an employee is selected the form replaces it in place and the outcome
// is OutcomeModified; otherwise the employee is appended and the outcome is
// OutcomeAdded. The id must not belong to any employee other than the
// selected one. Selection is cleared on success.
func (s *Store) Add(f model.Form) (model.Employee, Outcome, error) {
	if err := validate(f); err != nil {
		return model.Employee{}, "", err
	}
	if s.idTakenByOther(f.ID) {
		return model.Employee{}, "", &DuplicateIDError{ID: f.ID}
	}

	e := f.Employee()

	if s.selected == "" {
		s.employees = append(s.employees, e)
		return e, OutcomeAdded, nil
	}

	idx := s.indexOf(s.selected)
	if idx == -1 {
		return model.Employee{}, "", &NotFoundError{ID: s.selected}
	}
	s.employees[idx] = e
	s.selected = ""
	return e, OutcomeModified, nil
}

// Modify replaces the selected employee with the form and clears selection.
func (s *Store) Modify(f model.Form) (model.Employee, error) {
	if s.selected == "" {
		return model.Employee{}, fmt.Errorf("cannot modify: %w", ErrNoSelection)
	}
	if err := validate(f); err != nil {
		return model.Employee{}, err
	}

	idx := s.indexOf(s.selected)
	if idx == -1 {
		return model.Employee{}, &NotFoundError{ID: s.selected}
	}
	if s.idTakenByOther(f.ID) {
		return model.Employee{}, &DuplicateIDError{ID: f.ID}
	}

	e := f.Employee()
	s.employees[idx] = e
	s.selected = ""
	return e, nil
}

// Delete removes the selected employee, clears selection, and returns the
// removed record.
func (s *Store) Delete() (model.Employee, error) {
	if s.selected == "" {
		return model.Employee{}, fmt.Errorf("cannot delete: %w", ErrNoSelection)
	}

	idx := s.indexOf(s.selected)
	if idx == -1 {
		return model.Employee{}, &NotFoundError{ID: s.selected}
	}

	removed := s.employees[idx]
	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	s.selected = ""
	return removed, nil
}

// Select makes the employee with the given id the selection. A miss clears
// the selection.
func (s *Store) Select(id string) (model.Employee, bool) {
	idx := s.indexOf(id)
	if idx == -1 {
		s.selected = ""
		return model.Employee{}, false
	}
	s.selected = id
	return s.employees[idx], true
}

// ClearSelection returns the store to the unselected state.
func (s *Store) ClearSelection() {
	s.selected = ""
}

// Selected returns the id of the selected employee.
func (s *Store) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// FindByID looks up an employee without touching the selection.
func (s *Store) FindByID(id string) (model.Employee, bool) {
	idx := s.indexOf(id)
	if idx == -1 {
		return model.Employee{}, false
	}
	return s.employees[idx], true
}

// List returns a copy of the roster in insertion order.
func (s *Store) List() []model.Employee {
	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Len returns the number of employees.
func (s *Store) Len() int {
	return len(s.employees)
}

func validate(f model.Form) error {
	if missing := f.Missing(); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// idTakenByOther reports whether id belongs to an employee other than the
// selected one. Ids are compared exactly.
func (s *Store) idTakenByOther(id string) bool {
	for _, e := range s.employees {
		if e.ID == id && e.ID != s.selected {
			return true
		}
	}
	return false
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
