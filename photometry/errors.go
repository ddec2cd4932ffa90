package photometry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidUnitForShape = errors.New("photometry: unit is not valid for light shape")
	ErrMixedState          = errors.New("photometry: selection has mixed values")
	ErrShapeNotSupported   = errors.New("photometry: light shape is not supported yet")
	ErrNonFinite           = errors.New("photometry: value is not finite")
	// ErrDegenerateGeometry is never returned by a conversion. Callers use it to
	// report that an epsilon was substituted for a zero or negative parameter.
	ErrDegenerateGeometry = errors.New("photometry: degenerate geometry")
)

// InvalidUnitError names the rejected unit and the units the shape accepts.
type InvalidUnitError struct {
	Shape Shape
	Unit  Unit
}

func (e *InvalidUnitError) Error() string {
	valid := ValidUnits(e.Shape)
	names := make([]string, len(valid))
	for i, u := range valid {
		names[i] = u.String()
	}
	return fmt.Sprintf("light unit '%s' is not allowed on a %s light, only %s are supported",
		e.Unit, e.Shape, strings.Join(names, ", "))
}

func (e *InvalidUnitError) Unwrap() error {
	return ErrInvalidUnitForShape
}
