package tablespec

import "errors"

var (
	// ErrNilSpec is returned by Build when the spec is nil.
	ErrNilSpec = errors.New("tablespec: nil spec")

	// ErrInvalidRule marks a transition rule missing required fields.
	ErrInvalidRule = errors.New("tablespec: invalid rule")

	// ErrUnknownCondition marks a rule referencing a condition name absent
	// from the registry passed to Build.
	ErrUnknownCondition = errors.New("tablespec: unknown condition")
)
