package bullion

import "errors"

// Sentinel errors surfaced by trade execution and day orchestration. They are
// always returned wrapped with the offending values, match them with errors.Is.
var (
	// ErrInsufficientFunds is returned when a buy requests more cash than the
	// portfolio holds, beyond Epsilon.
	ErrInsufficientFunds = errors.New("insufficient cash")

	// ErrInsufficientShares is returned when a sell requests more shares than
	// the portfolio holds, beyond Epsilon.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrUnsupportedAction is returned by the day runner for a trade request
	// whose action is not one of the four recognized kinds.
	ErrUnsupportedAction = errors.New("unsupported trade action")
)

// ValidationError reports a violated input constraint, such as a non-positive
// price or an allocation split that does not sum to one.
type ValidationError struct {
	Constraint string // human-readable statement of the violated constraint
}

func (e *ValidationError) Error() string { return "invalid input: " + e.Constraint }

// errInvalid is a shorthand constructor for ValidationError.
func errInvalid(constraint string) error { return &ValidationError{Constraint: constraint} }
