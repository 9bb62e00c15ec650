package domain

import "errors"

// Error taxonomy shared by every component. Wrap with fmt.Errorf("%w: ...")
// to attach the human-readable reason; match with errors.Is.
var (
	// ErrNotFound: the referenced identifier does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput: malformed or rule-violating input (bad dates, unknown
	// city, negative distance, blank name).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState: the operation is not permitted in the entity's current
	// state, e.g. editing a canceled reservation.
	ErrInvalidState = errors.New("invalid state")
)
