package photon

import (
	"fmt"
	"strings"

	"github.com/gekko3d/photon/photometry"
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
	LightTypeRectangle   LightType = 4
	LightTypeDisc        LightType = 5
)

var lightTypeNames = map[LightType]string{
	LightTypePoint:       "Point",
	LightTypeDirectional: "Directional",
	LightTypeSpot:        "Spot",
	LightTypeAmbient:     "Ambient",
	LightTypeRectangle:   "Rectangle",
	LightTypeDisc:        "Disc",
}

func (t LightType) String() string {
	if name, ok := lightTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LightType(%d)", uint32(t))
}

func (t LightType) MarshalText() ([]byte, error) {
	if _, ok := lightTypeNames[t]; !ok {
		return nil, fmt.Errorf("photon: cannot marshal light type %d", uint32(t))
	}
	return []byte(t.String()), nil
}

func (t *LightType) UnmarshalText(text []byte) error {
	for v, name := range lightTypeNames {
		if strings.EqualFold(name, string(text)) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("photon: unknown light type %q", string(text))
}

// Shape maps the light type to its photometric shape. Ambient lights have no
// physical unit.
func (t LightType) Shape() (photometry.Shape, bool) {
	switch t {
	case LightTypePoint:
		return photometry.ShapePoint, true
	case LightTypeDirectional:
		return photometry.ShapeDirectional, true
	case LightTypeSpot:
		return photometry.ShapeSpot, true
	case LightTypeRectangle:
		return photometry.ShapeRectangle, true
	case LightTypeDisc:
		return photometry.ShapeDisc, true
	}
	return photometry.ShapeMixed, false
}

func lightTypeFor(shape photometry.Shape) LightType {
	switch shape {
	case photometry.ShapeDirectional:
		return LightTypeDirectional
	case photometry.ShapeSpot:
		return LightTypeSpot
	case photometry.ShapeRectangle:
		return LightTypeRectangle
	case photometry.ShapeDisc:
		return LightTypeDisc
	}
	return LightTypePoint
}

type MixedLightingMode uint8

const (
	MixedLightingIndirectOnly MixedLightingMode = iota
	MixedLightingShadowmask
	MixedLightingSubtractive
)

// BakingOutput describes how the lightmapper baked this light.
type BakingOutput struct {
	OcclusionMaskChannel int // -1 when occlusion is not baked separately
	MixedLightingMode    MixedLightingMode
}

// LightComponent is the renderer-facing light. Intensity is the native
// intensity and is owned by the PhysicalLight attached to it.
type LightComponent struct {
	Type      LightType
	Color     [3]float32 // RGB
	Intensity float32
	Range     float32    // For point/spot
	ConeAngle float32    // Full cone angle in degrees (spot)
	AreaSize  mgl32.Vec2 // Width/height; X is the radius for discs
	Scale     mgl32.Vec3 // Lossy world scale

	ColorTemperature    float32
	UseColorTemperature bool

	Enabled         bool
	CastsShadows    bool
	ShadowNearPlane float32

	Baking BakingOutput
}

func NewLightComponent(t LightType) *LightComponent {
	return &LightComponent{
		Type:             t,
		Color:            [3]float32{1, 1, 1},
		Range:            10,
		ConeAngle:        30,
		Scale:            mgl32.Vec3{1, 1, 1},
		ColorTemperature: 6570,
		Enabled:          true,
		CastsShadows:     true,
		ShadowNearPlane:  0.1,
		Baking:           BakingOutput{OcclusionMaskChannel: -1},
	}
}

// IsOverlapping reports whether the light uses baked occlusion for direct
// lighting without its own occlusion channel.
func (l *LightComponent) IsOverlapping() bool {
	separatelyBaked := l.Baking.OcclusionMaskChannel != -1
	directUsesBaked := l.Baking.MixedLightingMode == MixedLightingShadowmask ||
		l.Baking.MixedLightingMode == MixedLightingSubtractive
	return directUsesBaked && !separatelyBaked
}
