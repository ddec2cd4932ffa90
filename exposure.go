package photon

import (
	"math"

	"github.com/gekko3d/photon/photometry"
)

type ExposureMode uint8

const (
	ExposureFixed ExposureMode = iota
	ExposurePhysicalCamera
)

// PhysicalCamera holds the settings that determine EV100 in
// ExposurePhysicalCamera mode.
type PhysicalCamera struct {
	Aperture     float64 `yaml:"aperture" validate:"gt=0"`
	ShutterSpeed float64 `yaml:"shutter_speed" validate:"gt=0"` // seconds
	ISO          float64 `yaml:"iso" validate:"gt=0"`
}

func DefaultPhysicalCamera() PhysicalCamera {
	return PhysicalCamera{Aperture: 16, ShutterSpeed: 1.0 / 200, ISO: 200}
}

// ExposureSource supplies the exposure multiplier applied to every light.
type ExposureSource interface {
	Active() bool
	Exposure() float64
}

// Exposure is a scene exposure setting. The zero value is inactive.
type Exposure struct {
	Enabled bool
	Mode    ExposureMode
	// FixedEV100 is used in ExposureFixed mode.
	FixedEV100 float64
	// Compensation is subtracted from the camera EV100. Fixed mode ignores it.
	Compensation float64
	Camera       PhysicalCamera
}

func NewFixedExposure(ev100 float64) *Exposure {
	return &Exposure{
		Enabled:    true,
		Mode:       ExposureFixed,
		FixedEV100: ev100,
		Camera:     DefaultPhysicalCamera(),
	}
}

func (e *Exposure) Active() bool {
	return e != nil && e.Enabled
}

func (e *Exposure) EV100() float64 {
	if e.Mode == ExposurePhysicalCamera {
		return photometry.ComputeEV100(e.Camera.Aperture, e.Camera.ShutterSpeed, e.Camera.ISO) - e.Compensation
	}
	return e.FixedEV100
}

func (e *Exposure) Exposure() float64 {
	return photometry.EV100ToExposure(e.EV100())
}

// SkyIntensity is the multiplier for a sky authored at skyEV100.
func (e *Exposure) SkyIntensity(skyEV100 float64) float64 {
	return e.Exposure() * photometry.EV100ToExposure(-skyEV100)
}

// ExposureCompositor snapshots the active exposure once per frame and applies
// it to lights.
type ExposureCompositor struct {
	// Epsilon is the smallest exposure change pushed to a light.
	Epsilon float64

	source  ExposureSource
	current float64
	active  bool
}

func NewExposureCompositor() *ExposureCompositor {
	return &ExposureCompositor{Epsilon: DefaultExposureEpsilon, current: 1}
}

// SetSource replaces the exposure source. nil means no exposure.
func (c *ExposureCompositor) SetSource(src ExposureSource) {
	c.source = src
}

func (c *ExposureCompositor) Source() ExposureSource {
	return c.source
}

// Snapshot reads the source and returns the multiplier for this frame. An
// inactive source, or one producing a non-positive or non-finite value,
// yields 1.
func (c *ExposureCompositor) Snapshot() float64 {
	c.current, c.active = 1, false
	if c.source != nil && c.source.Active() {
		v := c.source.Exposure()
		if v > 0 && !math.IsInf(v, 0) {
			c.current, c.active = v, true
		}
	}
	return c.current
}

func (c *ExposureCompositor) Value() float64 {
	return c.current
}

// Apply pushes the current multiplier to light and reports whether its
// native intensity was rewritten.
func (c *ExposureCompositor) Apply(light *PhysicalLight) bool {
	return light.applyExposure(c.current, c.Epsilon)
}

// RelativeEV100 is the light's EV100 relative to the current exposure, or
// the light's own EV100 when no exposure is active. ok is false unless the
// light is authored in EV100.
func (c *ExposureCompositor) RelativeEV100(light *PhysicalLight) (ev float64, ok bool) {
	if light.Unit() != photometry.Ev100 {
		return 0, false
	}
	if !c.active {
		return light.Intensity(), true
	}
	return light.Intensity() - photometry.ExposureToEV100(c.current), true
}
