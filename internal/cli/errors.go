package cli

import (
	"errors"

	"github.com/jacksmith/roster/internal/roster"
)

// Notifications shown after a form action.
const (
	MsgAdded        = "New Employee Added Successfully"
	MsgModified     = "Employee Modified Successfully"
	MsgDeleted      = "Employee Deleted Successfully"
	MsgFillAll      = "Please fill all the fields"
	MsgDuplicateID  = "Employee ID already exists"
	MsgSelectModify = "Please select an employee to modify"
	MsgSelectDelete = "Please select an employee to delete"
	MsgNotFound     = "Selected employee no longer exists"
)

// Action names the form button that triggered an operation.
type Action string

const (
	ActionAdd    Action = "add"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

// Message returns the notification for a successful outcome.
func Message(outcome roster.Outcome) string {
	switch outcome {
	case roster.OutcomeAdded:
		return MsgAdded
	case roster.OutcomeModified:
		return MsgModified
	case roster.OutcomeDeleted:
		return MsgDeleted
	}
	return ""
}

// ErrorMessage returns the notification for an error returned by the store
// while performing action. Errors that didn't come from the store are
// formatted with FormatError.
func ErrorMessage(action Action, err error) string {
	switch roster.OutcomeOf(err) {
	case roster.OutcomeInvalid:
		return MsgFillAll
	case roster.OutcomeDuplicate:
		return MsgDuplicateID
	case roster.OutcomeNoSelection:
		if action == ActionDelete {
			return MsgSelectDelete
		}
		return MsgSelectModify
	case roster.OutcomeNotFound:
		return MsgNotFound
	}
	return FormatError(err)
}

// Detail returns extra context for an error, such as the list of empty
// fields, or "" when the notification says it all.
func Detail(err error) string {
	var verr *roster.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return ""
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
