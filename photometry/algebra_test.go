package photometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointLumenToCandela(t *testing.T) {
	got := PunctualLumenToCandela(ShapePoint, 600, Geometry{})
	assert.InDelta(t, 600/(4*math.Pi), got, 1e-9)
	assert.InDelta(t, 47.746, got, 1e-3)

	// Without a reflector a spot is an occluded point light.
	spot := PunctualLumenToCandela(ShapeSpot, 600, Geometry{SpotAngleDeg: 30})
	assert.Equal(t, got, spot)
}

func TestSpotReflectorCone(t *testing.T) {
	g := Geometry{Reflector: true, SpotAngleDeg: 30}

	// 2π(1 - cos 15°)
	omega := SpotSolidAngle(g)
	assert.InDelta(t, 0.214094, omega, 1e-6)

	candela := PunctualLumenToCandela(ShapeSpot, 600, g)
	assert.InDelta(t, 2802.5, candela, 0.5)

	lumen := PunctualCandelaToLumen(ShapeSpot, candela, g)
	assert.InEpsilon(t, 600.0, lumen, 1e-9)
}

func TestPyramidAngles(t *testing.T) {
	theta := math.Pi / 4

	a, b := PyramidAngles(1, theta)
	assert.InDelta(t, theta, a, 1e-12)
	assert.InDelta(t, theta, b, 1e-12)

	a2, b2 := PyramidAngles(2, theta)
	a3, b3 := PyramidAngles(0.5, theta)
	assert.InDelta(t, a2, a3, 1e-12)
	assert.InDelta(t, b2, b3, 1e-12)
	assert.Greater(t, b2, a2)
	assert.InDelta(t, math.Tan(theta/2)*2, math.Tan(b2/2), 1e-12)
}

func TestPyramidSolidAngleWidensWithAspect(t *testing.T) {
	narrow := SpotSolidAngle(Geometry{SpotShape: SpotPyramid, SpotAngleDeg: 40, AspectRatio: 1})
	wide := SpotSolidAngle(Geometry{SpotShape: SpotPyramid, SpotAngleDeg: 40, AspectRatio: 3})
	assert.Greater(t, wide, narrow)

	// Out of range ratios are clamped rather than producing a degenerate frustum.
	assert.Equal(t,
		SpotSolidAngle(Geometry{SpotShape: SpotPyramid, SpotAngleDeg: 40, AspectRatio: 20}),
		SpotSolidAngle(Geometry{SpotShape: SpotPyramid, SpotAngleDeg: 40, AspectRatio: 500}))
}

func TestInverseSquare(t *testing.T) {
	assert.InDelta(t, 25.0, CandelaToLux(100, 2), 1e-12)
	assert.InDelta(t, 100.0, LuxToCandela(25, 2), 1e-12)
}

func TestDegenerateDistanceUsesEpsilon(t *testing.T) {
	for _, d := range []float64{0, -3} {
		lux := CandelaToLux(1, d)
		assert.False(t, math.IsInf(lux, 0))
		assert.InDelta(t, 1/(DistanceEpsilon*DistanceEpsilon), lux, 1e-3)
	}

	_, degenerate := Geometry{Distance: 0}.Sanitize(ShapePoint)
	assert.True(t, degenerate)

	_, degenerate = Geometry{Distance: 1}.Sanitize(ShapePoint)
	assert.False(t, degenerate)

	// Distance is irrelevant for area lights.
	_, degenerate = Geometry{AreaWidth: 1, AreaHeight: 1}.Sanitize(ShapeRectangle)
	assert.False(t, degenerate)

	g, degenerate := Geometry{AreaWidth: 0, AreaHeight: 1}.Sanitize(ShapeRectangle)
	assert.True(t, degenerate)
	assert.Equal(t, SizeEpsilon, g.AreaWidth)
}

func TestEv100Mapping(t *testing.T) {
	// K/100 = 0.125, so 0 EV is 0.125 nits and one stop doubles it.
	assert.InDelta(t, 0.125, Ev100ToLuminance(0), 1e-12)
	assert.InDelta(t, 0.25, Ev100ToLuminance(1), 1e-12)
	assert.InDelta(t, 0.0, CandelaToEv100(0.125), 1e-12)
	assert.InDelta(t, 3.0, CandelaToEv100(1), 1e-12)

	// log2 never sees zero.
	assert.False(t, math.IsInf(LuminanceToEv100(0), 0))
}

func TestAreaLuminance(t *testing.T) {
	nits := AreaLumenToLuminance(ShapeRectangle, 2, 0.5, 200)
	assert.InDelta(t, 200/math.Pi, nits, 1e-9)

	disc := AreaLumenToLuminance(ShapeDisc, 1, 0, math.Pi*math.Pi)
	assert.InDelta(t, 1.0, disc, 1e-9)

	assert.InEpsilon(t, 200.0, AreaLuminanceToLumen(ShapeRectangle, 2, 0.5, nits), 1e-12)
}

func TestExposure(t *testing.T) {
	assert.InDelta(t, 1/1.2, EV100ToExposure(0), 1e-12)
	assert.InDelta(t, 0.5, EV100ToExposure(math.Log2(1/0.6)), 1e-12)
	assert.InDelta(t, 7.5, ExposureToEV100(EV100ToExposure(7.5)), 1e-9)

	// f/1, 1s, ISO 100 is the EV100 origin.
	assert.InDelta(t, 0.0, ComputeEV100(1, 1, 100), 1e-12)
	// Sunny 16: f/16, 1/100s, ISO 100 is close to EV 15.
	assert.InDelta(t, 14.64, ComputeEV100(16, 0.01, 100), 0.01)
}

func TestNonFiniteInputs(t *testing.T) {
	assert.True(t, math.IsNaN(PunctualLumenToCandela(ShapePoint, math.NaN(), Geometry{})))
	assert.True(t, math.IsNaN(CandelaToLux(math.Inf(1), 1)))
	assert.True(t, math.IsNaN(LuxToCandela(1, math.NaN())))
	assert.True(t, math.IsNaN(Ev100ToLuminance(math.Inf(-1))))
	assert.True(t, math.IsNaN(AreaLumenToLuminance(ShapeRectangle, math.NaN(), 1, 1)))
}

func TestNegativeLinearInputs(t *testing.T) {
	assert.Equal(t, 0.0, PunctualLumenToCandela(ShapePoint, -5, Geometry{}))
	assert.Equal(t, 0.0, CandelaToLux(-5, 1))
	assert.Equal(t, 0.0, AreaLumenToLuminance(ShapeRectangle, 1, 1, -5))
}

func TestNativeDerivation(t *testing.T) {
	g := Geometry{Distance: 2, AreaWidth: 1, AreaHeight: 1, SpotAngleDeg: 30}

	assert.InDelta(t, 100/(4*math.Pi), Native(ShapePoint, Lumen, 100, g), 1e-9)
	assert.Equal(t, 100.0, Native(ShapeDirectional, Lumen, 100, g))
	assert.Equal(t, 100.0, Native(ShapeDirectional, Lux, 100, g))
	assert.InDelta(t, 400.0, Native(ShapeSpot, Lux, 100, g), 1e-9)
	assert.Equal(t, 100.0, Native(ShapePoint, Candela, 100, g))
	assert.InDelta(t, 100/math.Pi, Native(ShapeRectangle, Lumen, 100, g), 1e-9)
	assert.Equal(t, 100.0, Native(ShapeRectangle, Nits, 100, g))
	assert.InDelta(t, 0.125*8, Native(ShapeRectangle, Ev100, 3, g), 1e-12)
	assert.Equal(t, Native(ShapeRectangle, Ev100, 3, g), Native(ShapePoint, Ev100, 3, g))
}
