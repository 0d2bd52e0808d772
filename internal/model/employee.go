// Package model defines the core data structures for roster.
package model

// Field names in form order. Used for presence checks, key=value parsing and
// snapshot output.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDesignation = "designation"
	FieldGender      = "gender"
	FieldSalary      = "salary"
)

// Fields lists every form field in display order.
var Fields = []string{FieldID, FieldName, FieldDesignation, FieldGender, FieldSalary}

// Gender is one of the choices offered by the form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// DefaultGenders is the choice set used when configuration doesn't override it.
var DefaultGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// Employee is a single roster record. Salary is kept as entered.
type Employee struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Gender      Gender `yaml:"gender"`
	Salary      string `yaml:"salary"`
}

// Form holds the values currently entered in the form fields. A Form becomes
// an Employee once every field is filled in.
type Form struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Gender      Gender `yaml:"gender"`
	Salary      string `yaml:"salary"`
}

// Missing returns the names of empty fields, in form order.
// Values are not trimmed: a field holding only spaces counts as filled.
func (f Form) Missing() []string {
	var missing []string
	for _, name := range Fields {
		if f.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Complete reports whether every field is filled in.
func (f Form) Complete() bool {
	return len(f.Missing()) == 0
}

// Get returns the value of the named field, or "" for an unknown name.
func (f Form) Get(name string) string {
	switch name {
	case FieldID:
		return f.ID
	case FieldName:
		return f.Name
	case FieldDesignation:
		return f.Designation
	case FieldGender:
		return string(f.Gender)
	case FieldSalary:
		return f.Salary
	}
	return ""
}

// Set assigns the named field. It returns false for an unknown name.
func (f *Form) Set(name, value string) bool {
	switch name {
	case FieldID:
		f.ID = value
	case FieldName:
		f.Name = value
	case FieldDesignation:
		f.Designation = value
	case FieldGender:
		f.Gender = Gender(value)
	case FieldSalary:
		f.Salary = value
	default:
		return false
	}
	return true
}

// Employee converts the form into a record. Callers check Complete first.
func (f Form) Employee() Employee {
	return Employee(f)
}

// Form returns a form filled with the employee's fields, as when a table row
// is clicked.
func (e Employee) Form() Form {
	return Form(e)
}

// ClearDetails empties every field except the id, as when a typed id matches
// no record.
func (f *Form) ClearDetails() {
	*f = Form{ID: f.ID}
}
