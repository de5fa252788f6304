package loan

import "errors"

// ErrNotFound is returned when no loan matches an (id, owner) pair. The
// text is user-visible, so it keeps the wire wording.
var ErrNotFound = errors.New("Loan calculation not found")

// ValidationError is a single domain-rule violation on a loan request.
// Violations are collected in rule order, never raised.
type ValidationError struct {
	Field        string `json:"field"`
	Message      string `json:"message"`
	InvalidValue string `json:"invalidValue,omitempty"`
}
