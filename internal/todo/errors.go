package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	// ErrMalformedGeneration means the generation service returned text
	// that is not a valid JSON object after code-fence stripping. Distinct
	// from valid JSON with missing fields, which is repaired by defaulting.
	ErrMalformedGeneration = errors.New("model output is not a valid JSON object")

	ErrInvalidTodos  = errors.New("todo list payload is invalid")
	ErrInvalidPeriod = errors.New("analysis period must be today or week")
)
