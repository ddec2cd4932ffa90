package photon

import (
	"testing"

	"github.com/gekko3d/photon/photometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommonState(t *testing.T) {
	a := newTestLight(t, LightTypePoint)
	b := newTestLight(t, LightTypeSpot)
	batch := NewBatch(a, b)

	assert.Equal(t, 2, batch.Len())
	assert.Equal(t, photometry.Lumen, batch.Unit())
	assert.Equal(t, photometry.ShapeMixed, batch.Shape())
	assert.Nil(t, batch.SupportedUnits())

	v, mixed := batch.Intensity()
	assert.Equal(t, 600.0, v)
	assert.False(t, mixed)

	b.SetIntensity(10)
	_, mixed = batch.Intensity()
	assert.True(t, mixed)

	empty := NewBatch()
	assert.Equal(t, photometry.UnitMixed, empty.Unit())
	assert.Equal(t, photometry.ShapeMixed, empty.Shape())
	assert.NoError(t, empty.SetUnit(photometry.Lux))
}

func TestBatchSetUnit(t *testing.T) {
	a := newTestLight(t, LightTypePoint)
	b := newTestLight(t, LightTypePoint, WithIntensity(1200))
	batch := NewBatch(a, b)

	require.NoError(t, batch.SetUnit(photometry.Candela))
	assert.Equal(t, photometry.Candela, batch.Unit())
	assert.InDelta(t, 2*a.Intensity(), b.Intensity(), 1e-9)

	err := batch.SetUnit(photometry.Nits)
	assert.ErrorIs(t, err, photometry.ErrInvalidUnitForShape)
	assert.Equal(t, photometry.Candela, a.Unit())
	assert.Equal(t, photometry.Candela, b.Unit())
}

func TestBatchMixedUnitsRefuseSynchronizedEdit(t *testing.T) {
	a := newTestLight(t, LightTypePoint)
	b := newTestLight(t, LightTypePoint, WithUnit(photometry.Candela))
	batch := NewBatch(a, b)
	require.Equal(t, photometry.UnitMixed, batch.Unit())

	aNative, bNative := a.NativeIntensity(), b.NativeIntensity()
	assert.ErrorIs(t, batch.SetUnit(photometry.Lux), photometry.ErrMixedState)
	assert.Equal(t, photometry.Lumen, a.Unit())
	assert.Equal(t, photometry.Candela, b.Unit())

	require.NoError(t, batch.Reconcile(photometry.Lux))
	assert.Equal(t, photometry.Lux, batch.Unit())
	assert.InEpsilon(t, aNative, a.NativeIntensity(), 1e-5)
	assert.InEpsilon(t, bNative, b.NativeIntensity(), 1e-5)
}

func TestBatchReconcileAcrossShapes(t *testing.T) {
	point := newTestLight(t, LightTypePoint)
	rect := newTestLight(t, LightTypeRectangle)
	batch := NewBatch(point, rect)

	assert.ErrorIs(t, batch.SetUnit(photometry.Candela), photometry.ErrMixedState)

	err := batch.Reconcile(photometry.Candela)
	require.Error(t, err)
	assert.ErrorIs(t, err, photometry.ErrInvalidUnitForShape)
	assert.Contains(t, err.Error(), rect.ID().String())
	assert.Equal(t, photometry.Candela, point.Unit())
	assert.Equal(t, photometry.Lumen, rect.Unit())

	require.NoError(t, batch.Reconcile(photometry.Ev100))
	assert.Equal(t, photometry.Ev100, batch.Unit())
}

func TestBatchSetShape(t *testing.T) {
	a := newTestLight(t, LightTypePoint)
	b := newTestLight(t, LightTypeDirectional)
	batch := NewBatch(a, b)

	err := batch.SetShape(photometry.ShapeDisc)
	assert.ErrorIs(t, err, photometry.ErrShapeNotSupported)
	assert.Equal(t, photometry.ShapeDisc, a.Shape())
	assert.Equal(t, photometry.ShapeDirectional, b.Shape())

	require.NoError(t, batch.SetShape(photometry.ShapeSpot))
	assert.Equal(t, photometry.ShapeSpot, batch.Shape())
	assert.Equal(t, photometry.Lumen, batch.Unit())

	batch.SetIntensity(42)
	v, mixed := batch.Intensity()
	assert.Equal(t, 42.0, v)
	assert.False(t, mixed)
}
