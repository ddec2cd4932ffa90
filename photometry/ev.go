package photometry

import "math"

const (
	// ReflectedLightMeterK is the reflected-light meter calibration constant.
	ReflectedLightMeterK = 12.5
	// LensAttenuation relates scene luminance to sensor saturation (q = 0.65).
	LensAttenuation = 1.2
)

// Ev100ToLuminance maps EV100 to nits: L = K/100 · 2^ev.
func Ev100ToLuminance(ev float64) float64 {
	if nonFinite(ev) {
		return math.NaN()
	}
	return finite(ReflectedLightMeterK / 100 * math.Exp2(ev))
}

// LuminanceToEv100 is log2(L · 100/K), with L floored at LogEpsilon.
func LuminanceToEv100(nits float64) float64 {
	if nonFinite(nits) {
		return math.NaN()
	}
	return log2(nits * 100 / ReflectedLightMeterK)
}

// For a punctual light candela and luminance share the EV mapping.

func CandelaToEv100(candela float64) float64 { return LuminanceToEv100(candela) }

func Ev100ToCandela(ev float64) float64 { return Ev100ToLuminance(ev) }

func LuxToEv100(lux, distance float64) float64 {
	return CandelaToEv100(LuxToCandela(lux, distance))
}

func Ev100ToLux(ev, distance float64) float64 {
	return CandelaToLux(Ev100ToCandela(ev), distance)
}

// EV100ToExposure returns the scalar exposure a camera set to ev applies
// to scene luminance.
func EV100ToExposure(ev float64) float64 {
	if nonFinite(ev) {
		return math.NaN()
	}
	return 1 / (LensAttenuation * math.Exp2(ev))
}

func ExposureToEV100(exposure float64) float64 {
	if nonFinite(exposure) {
		return math.NaN()
	}
	return log2(1 / (LensAttenuation * math.Max(exposure, LogEpsilon)))
}

// ComputeEV100 derives EV100 from physical camera settings: aperture
// (f-number), shutter speed (seconds) and ISO.
func ComputeEV100(aperture, shutterSpeed, iso float64) float64 {
	if nonFinite(aperture, shutterSpeed, iso) {
		return math.NaN()
	}
	t := math.Max(shutterSpeed, LogEpsilon)
	s := math.Max(iso, LogEpsilon)
	return log2(aperture * aperture / t * 100 / s)
}
