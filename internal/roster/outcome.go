package roster

import "errors"

// Outcome tells an adapter which notification to show after an operation.
type Outcome string

const (
	OutcomeAdded    Outcome = "added"
	OutcomeModified Outcome = "modified"
	OutcomeDeleted  Outcome = "deleted"

	OutcomeInvalid     Outcome = "invalid"
	OutcomeDuplicate   Outcome = "duplicate"
	OutcomeNoSelection Outcome = "no_selection"
	OutcomeNotFound    Outcome = "not_found"
)

// Failed reports whether the outcome is one of the error kinds.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeAdded, OutcomeModified, OutcomeDeleted:
		return false
	}
	return true
}

// OutcomeOf classifies an error returned by Store. It returns "" for nil and
// for errors that did not come from Store.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	var duplicate *DuplicateIDError
	var notFound *NotFoundError

	switch {
	case errors.As(err, &validation):
		return OutcomeInvalid
	case errors.As(err, &duplicate):
		return OutcomeDuplicate
	case errors.Is(err, ErrNoSelection):
		return OutcomeNoSelection
	case errors.As(err, &notFound):
		return OutcomeNotFound
	}
	return ""
}
