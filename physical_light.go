package photon

import (
	"errors"
	"fmt"
	"math"

	"github.com/gekko3d/photon/photometry"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const (
	// DefaultExposureEpsilon is the smallest exposure change that rewrites
	// the native intensity.
	DefaultExposureEpsilon = 1e-6

	syncEpsilon = 1e-5
)

var (
	ErrNilLight             = errors.New("photon: nil light component")
	ErrUnsupportedLightType = errors.New("photon: light type has no physical unit")
)

// syncSnapshot is what the component looked like after the last native
// intensity update.
type syncSnapshot struct {
	lightType LightType
	coneAngle float32
	areaSize  mgl32.Vec2
	scale     mgl32.Vec3
	colorTemp float32
	enabled   bool
	native    float32
}

// PhysicalLight authors a LightComponent in photometric units. It is the only
// writer of the component's Intensity.
type PhysicalLight struct {
	id     uuid.UUID
	light  *LightComponent
	logger Logger

	shape               photometry.Shape
	unit                photometry.Unit
	intensity           float64
	enableSpotReflector bool
	spotShape           photometry.SpotShape
	luxAtDistance       float64
	aspectRatio         float64
	exposure            float64

	degenerate bool
	synced     syncSnapshot
}

type lightOptions struct {
	id            uuid.UUID
	logger        Logger
	unit          *photometry.Unit
	intensity     *float64
	luxAtDistance *float64
	reflector     *bool
	spotShape     *photometry.SpotShape
	aspectRatio   *float64
}

type LightOption func(*lightOptions)

func WithID(id uuid.UUID) LightOption {
	return func(o *lightOptions) { o.id = id }
}

func WithLogger(logger Logger) LightOption {
	return func(o *lightOptions) { o.logger = logger }
}

// WithUnit converts the shape's default intensity into unit.
func WithUnit(unit photometry.Unit) LightOption {
	return func(o *lightOptions) { o.unit = &unit }
}

// WithIntensity is applied after WithUnit.
func WithIntensity(v float64) LightOption {
	return func(o *lightOptions) { o.intensity = &v }
}

func WithLuxAtDistance(d float64) LightOption {
	return func(o *lightOptions) { o.luxAtDistance = &d }
}

func WithSpotReflector(enabled bool) LightOption {
	return func(o *lightOptions) { o.reflector = &enabled }
}

func WithSpotShape(shape photometry.SpotShape) LightOption {
	return func(o *lightOptions) { o.spotShape = &shape }
}

func WithAspectRatio(r float64) LightOption {
	return func(o *lightOptions) { o.aspectRatio = &r }
}

// NewPhysicalLight attaches to light and initializes it with the defaults of
// its shape. Shapes without defaults are rejected with
// photometry.ErrShapeNotSupported.
func NewPhysicalLight(light *LightComponent, opts ...LightOption) (*PhysicalLight, error) {
	if light == nil {
		return nil, ErrNilLight
	}
	shape, ok := light.Type.Shape()
	if !ok {
		return nil, fmt.Errorf("%s: %w", light.Type, ErrUnsupportedLightType)
	}
	defaults, err := photometry.InitDefault(shape)
	if err != nil {
		return nil, err
	}

	var o lightOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := newPhysicalLight(light, shape, o)
	p.applyDefaults(defaults)
	p.RecomputeNative()

	if o.unit != nil {
		if err := p.SetUnit(*o.unit); err != nil {
			return nil, err
		}
	}
	if o.intensity != nil {
		p.SetIntensity(*o.intensity)
	}
	return p, nil
}

func newPhysicalLight(light *LightComponent, shape photometry.Shape, o lightOptions) *PhysicalLight {
	p := &PhysicalLight{
		id:                  o.id,
		light:               light,
		logger:              o.logger,
		shape:               shape,
		unit:                photometry.DefaultUnit(shape),
		enableSpotReflector: true,
		spotShape:           photometry.SpotCone,
		luxAtDistance:       1,
		aspectRatio:         1,
		exposure:            1,
	}
	if p.id == uuid.Nil {
		p.id = uuid.New()
	}
	if p.logger == nil {
		p.logger = NewNopLogger()
	}
	if o.reflector != nil {
		p.enableSpotReflector = *o.reflector
	}
	if o.spotShape != nil {
		p.spotShape = *o.spotShape
	}
	if o.aspectRatio != nil {
		p.aspectRatio = photometry.ClampAspectRatio(*o.aspectRatio)
	}
	if o.luxAtDistance != nil {
		p.luxAtDistance = clampDistance(*o.luxAtDistance)
	}
	return p
}

func (p *PhysicalLight) applyDefaults(d photometry.Defaults) {
	p.unit = d.Unit
	p.intensity = clampIntensity(d.Intensity)
	if d.DisableShadows {
		p.light.CastsShadows = false
		p.light.ShadowNearPlane = float32(d.ShadowNearPlane)
	}
	if d.AreaWidth > 0 {
		p.light.AreaSize = mgl32.Vec2{float32(d.AreaWidth), float32(d.AreaHeight)}
	}
	p.light.UseColorTemperature = true
}

func (p *PhysicalLight) ID() uuid.UUID                   { return p.id }
func (p *PhysicalLight) Light() *LightComponent          { return p.light }
func (p *PhysicalLight) Shape() photometry.Shape         { return p.shape }
func (p *PhysicalLight) Unit() photometry.Unit           { return p.unit }
func (p *PhysicalLight) Intensity() float64              { return p.intensity }
func (p *PhysicalLight) NativeIntensity() float32        { return p.light.Intensity }
func (p *PhysicalLight) Exposure() float64               { return p.exposure }
func (p *PhysicalLight) LuxAtDistance() float64          { return p.luxAtDistance }
func (p *PhysicalLight) AspectRatio() float64            { return p.aspectRatio }
func (p *PhysicalLight) EnableSpotReflector() bool       { return p.enableSpotReflector }
func (p *PhysicalLight) SpotShape() photometry.SpotShape { return p.spotShape }

func (p *PhysicalLight) SetLogger(logger Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	p.logger = logger
}

// SupportedUnits lists the units the light may switch to.
func (p *PhysicalLight) SupportedUnits() []photometry.Unit {
	return photometry.ValidUnits(p.shape)
}

func (p *PhysicalLight) geometry() photometry.Geometry {
	return photometry.Geometry{
		Reflector:    p.enableSpotReflector,
		SpotShape:    p.spotShape,
		SpotAngleDeg: float64(p.light.ConeAngle),
		AspectRatio:  p.aspectRatio,
		Distance:     p.luxAtDistance,
		AreaWidth:    float64(p.light.AreaSize.X()),
		AreaHeight:   float64(p.light.AreaSize.Y()),
	}
}

// SetUnit re-expresses the current intensity in unit so that the emitted
// light does not change, unless the converted value falls below zero (a
// negative EV100) and is clamped.
func (p *PhysicalLight) SetUnit(unit photometry.Unit) error {
	if unit == p.unit {
		return nil
	}
	if err := photometry.CheckUnit(p.shape, unit); err != nil {
		p.logger.Errorf("light %s: %v", p.id, err)
		return err
	}
	v, err := photometry.Convert(p.shape, p.unit, unit, p.intensity, p.geometry())
	if err != nil {
		p.logger.Errorf("light %s: converting %s to %s: %v", p.id, p.unit, unit, err)
		return err
	}
	p.logger.Debugf("light %s: %g %s -> %g %s", p.id, p.intensity, p.unit, v, unit)
	p.unit = unit
	p.intensity = clampIntensity(v)
	p.RecomputeNative()
	return nil
}

// SetIntensity sets the value in the current unit. NaN is ignored and the
// result is clamped to [0, MaxFloat32].
func (p *PhysicalLight) SetIntensity(v float64) {
	if math.IsNaN(v) {
		p.logger.Warnf("light %s: ignoring NaN intensity", p.id)
		return
	}
	v = clampIntensity(v)
	if v == p.intensity {
		return
	}
	p.intensity = v
	p.RecomputeNative()
}

// SetIntensityIn switches to unit without conversion and assigns v.
func (p *PhysicalLight) SetIntensityIn(v float64, unit photometry.Unit) error {
	if err := photometry.CheckUnit(p.shape, unit); err != nil {
		p.logger.Errorf("light %s: %v", p.id, err)
		return err
	}
	if math.IsNaN(v) {
		p.logger.Warnf("light %s: ignoring NaN intensity", p.id)
		return photometry.ErrNonFinite
	}
	p.unit = unit
	p.intensity = clampIntensity(v)
	p.RecomputeNative()
	return nil
}

// SetSpotLuxAtDistance makes the light deliver lux at distance meters.
func (p *PhysicalLight) SetSpotLuxAtDistance(lux, distance float64) error {
	if err := photometry.CheckUnit(p.shape, photometry.Lux); err != nil {
		p.logger.Errorf("light %s: %v", p.id, err)
		return err
	}
	if err := p.SetIntensityIn(lux, photometry.Lux); err != nil {
		return err
	}
	p.SetLuxAtDistance(distance)
	return nil
}

func (p *PhysicalLight) SetLuxAtDistance(d float64) {
	if math.IsNaN(d) {
		p.logger.Warnf("light %s: ignoring NaN lux distance", p.id)
		return
	}
	d = clampDistance(d)
	if d == p.luxAtDistance {
		return
	}
	p.luxAtDistance = d
	p.RecomputeNative()
}

func (p *PhysicalLight) SetEnableSpotReflector(enabled bool) {
	if enabled == p.enableSpotReflector {
		return
	}
	p.enableSpotReflector = enabled
	p.RecomputeNative()
}

func (p *PhysicalLight) SetSpotShape(shape photometry.SpotShape) {
	if shape == p.spotShape {
		return
	}
	p.spotShape = shape
	p.RecomputeNative()
}

func (p *PhysicalLight) SetAspectRatio(r float64) {
	r = photometry.ClampAspectRatio(r)
	if r == p.aspectRatio {
		return
	}
	p.aspectRatio = r
	p.RecomputeNative()
}

// SetShape changes the light shape. Crossing the directional boundary resets
// the light to the defaults of the new shape; otherwise a unit the new shape
// rejects is converted to lumen first.
func (p *PhysicalLight) SetShape(shape photometry.Shape) error {
	if shape == p.shape {
		return nil
	}
	if shape == photometry.ShapeMixed {
		return photometry.ErrMixedState
	}
	if len(photometry.ValidUnits(shape)) == 0 {
		return fmt.Errorf("photon: unknown light shape %s", shape)
	}

	old := p.shape
	crossing := (old == photometry.ShapeDirectional) != (shape == photometry.ShapeDirectional)
	switch {
	case crossing:
		d, err := photometry.InitDefault(shape)
		if err != nil {
			p.logger.Errorf("light %s: switching to %s: %v", p.id, shape, err)
			return err
		}
		p.shape = shape
		p.applyDefaults(d)
		p.luxAtDistance = 1
	case !photometry.IsValid(shape, p.unit):
		lumen, err := photometry.ToLumen(old, p.unit, p.intensity, p.geometry())
		if err != nil {
			p.logger.Errorf("light %s: switching to %s: %v", p.id, shape, err)
			return err
		}
		p.shape = shape
		p.unit = photometry.DefaultUnit(shape)
		p.intensity = clampIntensity(lumen)
	default:
		p.shape = shape
	}

	if !crossing {
		p.seedShapeSettings(shape)
	}
	p.light.Type = lightTypeFor(shape)
	p.logger.Debugf("light %s: shape %s -> %s, %g %s", p.id, old, shape, p.intensity, p.unit)
	p.RecomputeNative()
	return nil
}

// seedShapeSettings applies the shadow settings of shape and gives an area
// light without a surface the default size. Intensity is left alone.
func (p *PhysicalLight) seedShapeSettings(shape photometry.Shape) {
	d, err := photometry.InitDefault(shape)
	if err != nil {
		d = photometry.Defaults{}
	}
	if d.DisableShadows {
		p.light.CastsShadows = false
		p.light.ShadowNearPlane = float32(d.ShadowNearPlane)
	}
	if !shape.IsArea() || p.light.AreaSize.X() > 0 {
		return
	}
	w, h := photometry.DefaultAreaSize, photometry.DefaultAreaSize
	if d.AreaWidth > 0 {
		w, h = d.AreaWidth, d.AreaHeight
	}
	p.light.AreaSize = mgl32.Vec2{float32(w), float32(h)}
}

// ApplyExposure scales the native intensity by exposure. It reports whether
// the native intensity was rewritten.
func (p *PhysicalLight) ApplyExposure(exposure float64) bool {
	return p.applyExposure(exposure, DefaultExposureEpsilon)
}

func (p *PhysicalLight) applyExposure(exposure, epsilon float64) bool {
	if math.IsNaN(exposure) || math.IsInf(exposure, 0) || exposure <= 0 {
		p.logger.Warnf("light %s: ignoring exposure %g", p.id, exposure)
		return false
	}
	if math.Abs(exposure-p.exposure) <= epsilon {
		return false
	}
	p.exposure = exposure
	p.RecomputeNative()
	return true
}

// RecomputeNative writes the native intensity to the component.
func (p *PhysicalLight) RecomputeNative() {
	g, degenerate := p.geometry().Sanitize(p.shape)
	if degenerate && !p.degenerate {
		p.logger.Warnf("light %s: %v, substituting epsilon values", p.id, photometry.ErrDegenerateGeometry)
	}
	p.degenerate = degenerate

	native := photometry.Native(p.shape, p.unit, p.intensity, g) * p.exposure
	p.light.Intensity = toFloat32(native)
	p.snapshot()
}

func (p *PhysicalLight) snapshot() {
	l := p.light
	p.synced = syncSnapshot{
		lightType: l.Type,
		coneAngle: l.ConeAngle,
		areaSize:  l.AreaSize,
		scale:     l.Scale,
		colorTemp: l.ColorTemperature,
		enabled:   l.Enabled,
		native:    l.Intensity,
	}
}

// Sync re-derives the native intensity when the component was edited
// directly since the last update. It reports whether anything was rewritten.
func (p *PhysicalLight) Sync() bool {
	l := p.light
	s := p.synced
	if l.Type != s.lightType {
		p.syncType()
		return true
	}
	if !mgl32.FloatEqualThreshold(l.ConeAngle, s.coneAngle, syncEpsilon) ||
		!l.AreaSize.ApproxEqualThreshold(s.areaSize, syncEpsilon) ||
		!l.Scale.ApproxEqualThreshold(s.scale, syncEpsilon) ||
		l.ColorTemperature != s.colorTemp ||
		l.Enabled != s.enabled ||
		l.Intensity != s.native {
		p.logger.Debugf("light %s: component drifted, recomputing", p.id)
		p.RecomputeNative()
		return true
	}
	return false
}

func (p *PhysicalLight) syncType() {
	target, ok := p.light.Type.Shape()
	p.light.Type = lightTypeFor(p.shape)
	if !ok {
		p.logger.Errorf("light %s: %v, keeping %s", p.id, ErrUnsupportedLightType, p.light.Type)
		p.RecomputeNative()
		return
	}
	if err := p.SetShape(target); err != nil {
		p.RecomputeNative()
	}
}

func clampIntensity(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return mgl64.Clamp(v, 0, math.MaxFloat32)
}

func clampDistance(d float64) float64 {
	if math.IsNaN(d) {
		return photometry.DistanceEpsilon
	}
	return mgl64.Clamp(d, photometry.DistanceEpsilon, math.MaxFloat32)
}

func toFloat32(v float64) float32 {
	return float32(clampIntensity(v))
}
