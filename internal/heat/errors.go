package heat

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrInvalidParameter indicates a non-positive length, time or diffusivity,
	// or a grid too small to hold an interior point.
	ErrInvalidParameter = errors.New("heat: invalid parameter")

	// ErrMalformedInitialCondition indicates the initial condition returned
	// the wrong number of values for the grid.
	ErrMalformedInitialCondition = errors.New("heat: malformed initial condition")

	// ErrSingularSystem indicates the implicit matrix could not be inverted.
	ErrSingularSystem = errors.New("heat: singular implicit system")
)

// ParameterError names the offending parameter.
type ParameterError struct {
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %g", ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
