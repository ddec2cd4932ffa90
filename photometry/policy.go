package photometry

import (
	"fmt"
	"math"
	"slices"
)

const (
	// DefaultDirectionalIntensity is in lux.
	DefaultDirectionalIntensity = math.Pi
	// DefaultPunctualIntensity is in lumen, roughly 48 candela for a point light.
	DefaultPunctualIntensity = 600.0
	// DefaultAreaIntensity is in lumen, chosen to sit close to a default point light.
	DefaultAreaIntensity = 200.0

	DefaultAreaSize = 0.5
)

// Defaults is what a freshly created light of a given shape starts with.
type Defaults struct {
	Unit      Unit
	Intensity float64

	// DisableShadows is set for shapes that start without shadow casting;
	// the remaining shadow fields only apply when it is set.
	DisableShadows  bool
	ShadowNearPlane float64

	// AreaWidth and AreaHeight are zero for shapes without an emitting surface.
	AreaWidth  float64
	AreaHeight float64
}

type shapeRule struct {
	units     []Unit
	supported bool
	defaults  Defaults
}

var unitPolicy = map[Shape]shapeRule{
	ShapeDirectional: {
		units:     []Unit{Lux},
		supported: true,
		// Kept at π/π·1e5 so lights authored against the older constant keep
		// their brightness.
		defaults: Defaults{Unit: Lux, Intensity: DefaultDirectionalIntensity / math.Pi * 100000},
	},
	ShapePoint: {
		units:     []Unit{Lumen, Candela, Lux, Ev100},
		supported: true,
		defaults:  Defaults{Unit: Lumen, Intensity: DefaultPunctualIntensity},
	},
	ShapeSpot: {
		units:     []Unit{Lumen, Candela, Lux, Ev100},
		supported: true,
		defaults:  Defaults{Unit: Lumen, Intensity: DefaultPunctualIntensity},
	},
	ShapeRectangle: {
		units:     []Unit{Lumen, Nits, Ev100},
		supported: true,
		defaults: Defaults{
			Unit:           Lumen,
			Intensity:      DefaultAreaIntensity,
			DisableShadows: true,
			AreaWidth:      DefaultAreaSize,
			AreaHeight:     DefaultAreaSize,
		},
	},
	// Disc lights convert like any area light but have no defaults yet.
	ShapeDisc: {
		units:     []Unit{Lumen, Nits, Ev100},
		supported: false,
		defaults:  Defaults{Unit: Lumen},
	},
}

// ValidUnits returns the units a light of the given shape may be authored in.
// The result is a copy.
func ValidUnits(shape Shape) []Unit {
	rule, ok := unitPolicy[shape]
	if !ok {
		return nil
	}
	return slices.Clone(rule.units)
}

func IsValid(shape Shape, unit Unit) bool {
	rule, ok := unitPolicy[shape]
	if !ok {
		return false
	}
	return slices.Contains(rule.units, unit)
}

// DefaultUnit is Lux for directional lights and Lumen otherwise.
func DefaultUnit(shape Shape) Unit {
	if rule, ok := unitPolicy[shape]; ok {
		return rule.defaults.Unit
	}
	return Lumen
}

// Supported reports whether shape has a complete policy entry.
func Supported(shape Shape) bool {
	rule, ok := unitPolicy[shape]
	return ok && rule.supported
}

// InitDefault returns the initial unit, intensity and shape specific settings
// for a new light.
func InitDefault(shape Shape) (Defaults, error) {
	if shape == ShapeMixed {
		return Defaults{}, ErrMixedState
	}
	rule, ok := unitPolicy[shape]
	if !ok {
		return Defaults{}, fmt.Errorf("photometry: unknown shape %s", shape)
	}
	if !rule.supported {
		return Defaults{}, fmt.Errorf("%s lights: %w", shape, ErrShapeNotSupported)
	}
	return rule.defaults, nil
}

// CheckUnit validates unit against shape.
func CheckUnit(shape Shape, unit Unit) error {
	if shape == ShapeMixed || unit == UnitMixed {
		return ErrMixedState
	}
	if !IsValid(shape, unit) {
		return &InvalidUnitError{Shape: shape, Unit: unit}
	}
	return nil
}
