package engine

import "errors"

// Domain errors for engine operations.
var (
	// ErrParameterBounds indicates a runtime parameter value is outside its
	// valid range.
	ErrParameterBounds = errors.New("engine: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name with no engine binding.
	ErrUnknownParameter = errors.New("engine: unknown parameter")
)
