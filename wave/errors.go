package wave

import "errors"

// Errors reported by the simulation core. Callers should test for them with
// errors.Is, since returned errors carry the offending values.
var (
	// ErrInvalidDimensions indicates a grid smaller than 3x3.
	ErrInvalidDimensions = errors.New("wave: invalid grid dimensions")

	// ErrOutOfRange indicates a cell access outside the grid.
	ErrOutOfRange = errors.New("wave: cell out of range")

	// ErrInvalidParameter indicates an argument the solver cannot use, such as
	// a negative splash radius.
	ErrInvalidParameter = errors.New("wave: invalid parameter")
)
