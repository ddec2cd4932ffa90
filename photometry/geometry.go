package photometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DistanceEpsilon replaces any reference distance at or below it, in meters.
	DistanceEpsilon = 1e-4
	// SizeEpsilon replaces any area light width/height at or below it, in meters.
	SizeEpsilon = 1e-4
	// LogEpsilon is the smallest argument handed to log2.
	LogEpsilon = 1e-12

	MinAspectRatio = 0.05
	MaxAspectRatio = 20.0

	MinSpotAngleDeg = 1e-3
	MaxSpotAngleDeg = 179.9
)

// Geometry carries every auxiliary parameter a conversion may read.
// Conversions ignore the fields that do not apply to the light shape.
type Geometry struct {
	Reflector    bool
	SpotShape    SpotShape
	SpotAngleDeg float64 // full cone angle
	AspectRatio  float64 // pyramid spots only
	Distance     float64 // reference distance for lux on non-directional lights
	AreaWidth    float64 // disc radius for ShapeDisc
	AreaHeight   float64
}

// Sanitize substitutes the fixed epsilons for degenerate parameters used by
// shape and reports whether any substitution happened.
func (g Geometry) Sanitize(shape Shape) (Geometry, bool) {
	degenerate := false
	fix := func(v *float64, lo, hi float64) {
		if math.IsNaN(*v) || *v < lo || *v > hi {
			degenerate = true
		}
		*v = clampParam(*v, lo, hi)
	}

	switch {
	case shape.IsArea():
		fix(&g.AreaWidth, SizeEpsilon, math.MaxFloat64)
		if shape == ShapeRectangle {
			fix(&g.AreaHeight, SizeEpsilon, math.MaxFloat64)
		}
	case shape == ShapeSpot:
		fix(&g.SpotAngleDeg, MinSpotAngleDeg, MaxSpotAngleDeg)
		if g.SpotShape == SpotPyramid {
			fix(&g.AspectRatio, MinAspectRatio, MaxAspectRatio)
		}
		fallthrough
	case shape == ShapePoint:
		fix(&g.Distance, DistanceEpsilon, math.MaxFloat64)
	}
	return g, degenerate
}

func clampParam(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return mgl64.Clamp(v, lo, hi)
}

func clampDistance(d float64) float64 {
	return clampParam(d, DistanceEpsilon, math.MaxFloat64)
}

func clampSize(s float64) float64 {
	return clampParam(s, SizeEpsilon, math.MaxFloat64)
}

// ClampAspectRatio maps r into [MinAspectRatio, MaxAspectRatio].
func ClampAspectRatio(r float64) float64 {
	return clampParam(r, MinAspectRatio, MaxAspectRatio)
}

func nonFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// linear clamps a linear-unit input to the non-negative domain.
func linear(v float64) float64 {
	return math.Max(v, 0)
}

// finite caps overflowed results.
func finite(v float64) float64 {
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}

func log2(v float64) float64 {
	return math.Log2(math.Max(v, LogEpsilon))
}
