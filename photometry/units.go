package photometry

import (
	"fmt"
	"strings"
)

// Shape is the photometric category of a light.
type Shape uint8

const (
	ShapeDirectional Shape = iota
	ShapePoint
	ShapeSpot
	ShapeRectangle
	ShapeDisc

	// ShapeMixed is reported by multi-edit selections whose members disagree.
	// It is never a valid light shape.
	ShapeMixed Shape = 0xFF
)

var shapeNames = map[Shape]string{
	ShapeDirectional: "Directional",
	ShapePoint:       "Point",
	ShapeSpot:        "Spot",
	ShapeRectangle:   "Rectangle",
	ShapeDisc:        "Disc",
	ShapeMixed:       "Mixed",
}

// Shapes lists every concrete shape, in declaration order.
var Shapes = []Shape{ShapeDirectional, ShapePoint, ShapeSpot, ShapeRectangle, ShapeDisc}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// IsArea reports whether s belongs to the area family.
func (s Shape) IsArea() bool {
	return s == ShapeRectangle || s == ShapeDisc
}

func (s Shape) MarshalText() ([]byte, error) {
	if _, ok := shapeNames[s]; !ok || s == ShapeMixed {
		return nil, fmt.Errorf("photometry: cannot marshal shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseShape is case-insensitive.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("photometry: unknown shape %q", name)
}

// Unit is a photometric unit a light intensity can be authored in.
type Unit uint8

const (
	Lumen Unit = iota
	Candela
	Lux
	Ev100
	Nits

	// UnitMixed is reported by multi-edit selections whose members disagree.
	UnitMixed Unit = 0xFF
)

var unitNames = map[Unit]string{
	Lumen:     "Lumen",
	Candela:   "Candela",
	Lux:       "Lux",
	Ev100:     "Ev100",
	Nits:      "Nits",
	UnitMixed: "Mixed",
}

// Units lists every concrete unit, in declaration order.
var Units = []Unit{Lumen, Candela, Lux, Ev100, Nits}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// IsLogarithmic reports whether values in u may legitimately be negative.
func (u Unit) IsLogarithmic() bool {
	return u == Ev100
}

func (u Unit) MarshalText() ([]byte, error) {
	if _, ok := unitNames[u]; !ok || u == UnitMixed {
		return nil, fmt.Errorf("photometry: cannot marshal unit %d", uint8(u))
	}
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseUnit is case-insensitive and accepts "nit" and "ev" as aliases.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(name) {
	case "nit", "cd/m2":
		return Nits, nil
	case "ev", "ev100":
		return Ev100, nil
	case "lm":
		return Lumen, nil
	case "cd":
		return Candela, nil
	case "lx":
		return Lux, nil
	}
	for _, u := range Units {
		if strings.EqualFold(u.String(), name) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("photometry: unknown unit %q", name)
}

// SpotShape selects the solid angle used by a spot light's reflector.
type SpotShape uint8

const (
	SpotCone SpotShape = iota
	// SpotPyramid uses the light's aspect ratio to widen one axis.
	SpotPyramid
)

func (s SpotShape) String() string {
	switch s {
	case SpotCone:
		return "Cone"
	case SpotPyramid:
		return "Pyramid"
	}
	return fmt.Sprintf("SpotShape(%d)", uint8(s))
}

func (s SpotShape) MarshalText() ([]byte, error) {
	if s > SpotPyramid {
		return nil, fmt.Errorf("photometry: cannot marshal spot shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *SpotShape) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "cone":
		*s = SpotCone
	case "pyramid":
		*s = SpotPyramid
	default:
		return fmt.Errorf("photometry: unknown spot shape %q", string(text))
	}
	return nil
}
