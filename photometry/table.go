package photometry

import (
	"fmt"
	"math"
)

type family uint8

const (
	punctualFamily family = iota
	areaFamily
)

func familyOf(shape Shape) family {
	if shape.IsArea() {
		return areaFamily
	}
	return punctualFamily
}

type route struct {
	family   family
	from, to Unit
}

type conversion func(shape Shape, v float64, g Geometry) float64

// conversions is built once; every (family, from, to) pair of distinct valid
// units has exactly one entry.
var conversions = buildConversions()

func buildConversions() map[route]conversion {
	p := func(from, to Unit) route { return route{punctualFamily, from, to} }
	a := func(from, to Unit) route { return route{areaFamily, from, to} }

	return map[route]conversion{
		// Lumen ->
		p(Lumen, Candela): PunctualLumenToCandela,
		p(Lumen, Lux):     PunctualLumenToLux,
		p(Lumen, Ev100):   PunctualLumenToEv100,
		// Candela ->
		p(Candela, Lumen): PunctualCandelaToLumen,
		p(Candela, Lux): func(_ Shape, v float64, g Geometry) float64 {
			return CandelaToLux(v, g.Distance)
		},
		p(Candela, Ev100): func(_ Shape, v float64, _ Geometry) float64 {
			return CandelaToEv100(v)
		},
		// Lux ->
		p(Lux, Lumen): PunctualLuxToLumen,
		p(Lux, Candela): func(_ Shape, v float64, g Geometry) float64 {
			return LuxToCandela(v, g.Distance)
		},
		p(Lux, Ev100): func(_ Shape, v float64, g Geometry) float64 {
			return LuxToEv100(v, g.Distance)
		},
		// EV100 ->
		p(Ev100, Lumen): PunctualEv100ToLumen,
		p(Ev100, Candela): func(_ Shape, v float64, _ Geometry) float64 {
			return Ev100ToCandela(v)
		},
		p(Ev100, Lux): func(_ Shape, v float64, g Geometry) float64 {
			return Ev100ToLux(v, g.Distance)
		},

		a(Lumen, Nits): func(s Shape, v float64, g Geometry) float64 {
			return AreaLumenToLuminance(s, g.AreaWidth, g.AreaHeight, v)
		},
		a(Nits, Lumen): func(s Shape, v float64, g Geometry) float64 {
			return AreaLuminanceToLumen(s, g.AreaWidth, g.AreaHeight, v)
		},
		a(Nits, Ev100): func(_ Shape, v float64, _ Geometry) float64 {
			return LuminanceToEv100(v)
		},
		a(Ev100, Nits): func(_ Shape, v float64, _ Geometry) float64 {
			return Ev100ToLuminance(v)
		},
		a(Lumen, Ev100): func(s Shape, v float64, g Geometry) float64 {
			return AreaLumenToEv100(s, g.AreaWidth, g.AreaHeight, v)
		},
		a(Ev100, Lumen): func(s Shape, v float64, g Geometry) float64 {
			return AreaEv100ToLumen(s, g.AreaWidth, g.AreaHeight, v)
		},
	}
}

// Convert expresses value, given in unit from, in unit to for a light of the
// given shape. Both units must be valid for shape.
func Convert(shape Shape, from, to Unit, value float64, g Geometry) (float64, error) {
	if err := CheckUnit(shape, from); err != nil {
		return value, err
	}
	if err := CheckUnit(shape, to); err != nil {
		return value, err
	}
	if nonFinite(value) {
		return math.NaN(), ErrNonFinite
	}
	if from == to {
		return value, nil
	}
	return convertUnchecked(shape, from, to, value, g)
}

// convertUnchecked skips unit validation so that callers can convert through
// a unit the destination shape does not accept, e.g. when a spot light in
// candela becomes an area light.
func convertUnchecked(shape Shape, from, to Unit, value float64, g Geometry) (float64, error) {
	if from == to {
		return value, nil
	}
	fn, ok := conversions[route{familyOf(shape), from, to}]
	if !ok {
		return value, fmt.Errorf("photometry: no conversion from %s to %s for %s lights: %w",
			from, to, shape, ErrInvalidUnitForShape)
	}
	return fn(shape, value, g), nil
}

// ToLumen converts value to lumen through the algebra of shape. Directional
// lights go through the punctual formulas even though they only accept lux.
func ToLumen(shape Shape, from Unit, value float64, g Geometry) (float64, error) {
	if shape == ShapeMixed || from == UnitMixed {
		return value, ErrMixedState
	}
	if nonFinite(value) {
		return math.NaN(), ErrNonFinite
	}
	return convertUnchecked(shape, from, Lumen, value, g)
}
