package photometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereSolidAngle is the solid angle a point light emits into.
const SphereSolidAngle = 4 * math.Pi

// PyramidAngles returns the two full apex angles of a pyramid spot whose
// smallest angle is spotAngle (radians). The order of the ratio does not matter.
func PyramidAngles(aspectRatio, spotAngle float64) (angleA, angleB float64) {
	aspectRatio = ClampAspectRatio(aspectRatio)
	if aspectRatio < 1 {
		aspectRatio = 1 / aspectRatio
	}
	angleA = spotAngle
	halfLength := math.Tan(angleA*0.5) * aspectRatio
	angleB = 2 * math.Atan(halfLength)
	return angleA, angleB
}

// SpotSolidAngle returns the solid angle (sr) of the reflector described by g.
func SpotSolidAngle(g Geometry) float64 {
	theta := mgl64.DegToRad(clampParam(g.SpotAngleDeg, MinSpotAngleDeg, MaxSpotAngleDeg))
	if g.SpotShape == SpotPyramid {
		a, b := PyramidAngles(g.AspectRatio, theta)
		return 4 * math.Asin(math.Sin(a*0.5)*math.Sin(b*0.5))
	}
	return 2 * math.Pi * (1 - math.Cos(theta*0.5))
}

// punctualSolidAngle: a spot without reflector only occludes part of a point
// light, so it keeps the full sphere.
func punctualSolidAngle(shape Shape, g Geometry) float64 {
	if shape == ShapeSpot && g.Reflector {
		return SpotSolidAngle(g)
	}
	return SphereSolidAngle
}

func PunctualLumenToCandela(shape Shape, lumen float64, g Geometry) float64 {
	if nonFinite(lumen) {
		return math.NaN()
	}
	return linear(lumen) / punctualSolidAngle(shape, g)
}

func PunctualCandelaToLumen(shape Shape, candela float64, g Geometry) float64 {
	if nonFinite(candela) {
		return math.NaN()
	}
	return finite(linear(candela) * punctualSolidAngle(shape, g))
}

func PunctualLumenToLux(shape Shape, lumen float64, g Geometry) float64 {
	return CandelaToLux(PunctualLumenToCandela(shape, lumen, g), g.Distance)
}

func PunctualLuxToLumen(shape Shape, lux float64, g Geometry) float64 {
	return PunctualCandelaToLumen(shape, LuxToCandela(lux, g.Distance), g)
}

func PunctualLumenToEv100(shape Shape, lumen float64, g Geometry) float64 {
	return CandelaToEv100(PunctualLumenToCandela(shape, lumen, g))
}

func PunctualEv100ToLumen(shape Shape, ev float64, g Geometry) float64 {
	return PunctualCandelaToLumen(shape, Ev100ToCandela(ev), g)
}

// CandelaToLux applies the inverse-square law at distance meters.
func CandelaToLux(candela, distance float64) float64 {
	if nonFinite(candela, distance) {
		return math.NaN()
	}
	d := clampDistance(distance)
	return finite(linear(candela) / (d * d))
}

func LuxToCandela(lux, distance float64) float64 {
	if nonFinite(lux, distance) {
		return math.NaN()
	}
	d := clampDistance(distance)
	return finite(linear(lux) * d * d)
}
