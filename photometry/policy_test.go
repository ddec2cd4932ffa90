package photometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUnits(t *testing.T) {
	assert.Equal(t, []Unit{Lux}, ValidUnits(ShapeDirectional))
	assert.Equal(t, []Unit{Lumen, Candela, Lux, Ev100}, ValidUnits(ShapePoint))
	assert.Equal(t, []Unit{Lumen, Candela, Lux, Ev100}, ValidUnits(ShapeSpot))
	assert.Equal(t, []Unit{Lumen, Nits, Ev100}, ValidUnits(ShapeRectangle))
	assert.Equal(t, []Unit{Lumen, Nits, Ev100}, ValidUnits(ShapeDisc))
	assert.Nil(t, ValidUnits(ShapeMixed))

	// Callers get a copy.
	units := ValidUnits(ShapePoint)
	units[0] = Nits
	assert.Equal(t, Lumen, ValidUnits(ShapePoint)[0])
}

func TestDefaultUnit(t *testing.T) {
	assert.Equal(t, Lux, DefaultUnit(ShapeDirectional))
	assert.Equal(t, Lumen, DefaultUnit(ShapePoint))
	assert.Equal(t, Lumen, DefaultUnit(ShapeSpot))
	assert.Equal(t, Lumen, DefaultUnit(ShapeRectangle))
	assert.Equal(t, Lumen, DefaultUnit(ShapeDisc))

	for _, s := range Shapes {
		assert.True(t, IsValid(s, DefaultUnit(s)), s.String())
	}
}

func TestInitDefault(t *testing.T) {
	d, err := InitDefault(ShapeDirectional)
	require.NoError(t, err)
	assert.Equal(t, Lux, d.Unit)
	assert.InDelta(t, 100000.0, d.Intensity, 1e-6)

	for _, s := range []Shape{ShapePoint, ShapeSpot} {
		d, err := InitDefault(s)
		require.NoError(t, err)
		assert.Equal(t, Lumen, d.Unit)
		assert.Equal(t, 600.0, d.Intensity)
		assert.False(t, d.DisableShadows)
	}

	d, err = InitDefault(ShapeRectangle)
	require.NoError(t, err)
	assert.Equal(t, Lumen, d.Unit)
	assert.Equal(t, 200.0, d.Intensity)
	assert.True(t, d.DisableShadows)
	assert.Equal(t, 0.0, d.ShadowNearPlane)
	assert.Equal(t, 0.5, d.AreaWidth)
	assert.Equal(t, 0.5, d.AreaHeight)
}

func TestDiscIsNotSupportedYet(t *testing.T) {
	assert.False(t, Supported(ShapeDisc))
	assert.True(t, Supported(ShapeRectangle))

	_, err := InitDefault(ShapeDisc)
	assert.ErrorIs(t, err, ErrShapeNotSupported)

	_, err = InitDefault(ShapeMixed)
	assert.ErrorIs(t, err, ErrMixedState)
}

func TestCheckUnit(t *testing.T) {
	err := CheckUnit(ShapePoint, Nits)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnitForShape))

	var unitErr *InvalidUnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, Nits, unitErr.Unit)
	assert.Contains(t, err.Error(), "'Nits'")
	assert.Contains(t, err.Error(), "Lumen, Candela, Lux, Ev100")

	assert.NoError(t, CheckUnit(ShapeRectangle, Nits))
	assert.ErrorIs(t, CheckUnit(ShapePoint, UnitMixed), ErrMixedState)
	assert.ErrorIs(t, CheckUnit(ShapeMixed, Lumen), ErrMixedState)
}

func TestDefaultDirectionalKeepsLegacyScale(t *testing.T) {
	assert.Equal(t, math.Pi, DefaultDirectionalIntensity)
}
