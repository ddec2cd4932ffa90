package photometry

import "math"

// areaFactor converts lumen to nits for a lambertian emitter: flux = L·A·π.
// Disc lights read width as their radius.
func areaFactor(shape Shape, width, height float64) float64 {
	if shape == ShapeDisc {
		r := clampSize(width)
		return math.Pi * r * r * math.Pi
	}
	return clampSize(width) * clampSize(height) * math.Pi
}

func AreaLumenToLuminance(shape Shape, width, height, lumen float64) float64 {
	if nonFinite(width, height, lumen) {
		return math.NaN()
	}
	return finite(linear(lumen) / areaFactor(shape, width, height))
}

func AreaLuminanceToLumen(shape Shape, width, height, nits float64) float64 {
	if nonFinite(width, height, nits) {
		return math.NaN()
	}
	return finite(linear(nits) * areaFactor(shape, width, height))
}

func AreaLumenToEv100(shape Shape, width, height, lumen float64) float64 {
	return LuminanceToEv100(AreaLumenToLuminance(shape, width, height, lumen))
}

func AreaEv100ToLumen(shape Shape, width, height, ev float64) float64 {
	return AreaLuminanceToLumen(shape, width, height, Ev100ToLuminance(ev))
}
