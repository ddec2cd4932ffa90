package photon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gekko3d/photon/photometry"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// LightData is the persisted form of a physical light. The native intensity
// is derived and never stored.
type LightData struct {
	ID                  uuid.UUID            `json:"id"`
	Type                LightType            `json:"type"`
	Unit                photometry.Unit      `json:"unit"`
	Intensity           float64              `json:"intensity"`
	EnableSpotReflector bool                 `json:"enable_spot_reflector"`
	SpotShape           photometry.SpotShape `json:"spot_shape"`
	LuxAtDistance       float64              `json:"lux_at_distance"`
	AspectRatio         float64              `json:"aspect_ratio"`
	Color               [3]float32           `json:"color"`
	Range               float32              `json:"range"`
	ConeAngle           float32              `json:"cone_angle"`
	AreaSize            mgl32.Vec2           `json:"area_size"`
	Scale               mgl32.Vec3           `json:"scale"`
	ColorTemperature    float32              `json:"color_temperature"`
	UseColorTemperature bool                 `json:"use_color_temperature"`
	Enabled             bool                 `json:"enabled"`
	CastsShadows        bool                 `json:"casts_shadows"`
	ShadowNearPlane     float32              `json:"shadow_near_plane"`
}

type PresetData struct {
	Lights []LightData `json:"lights"`
}

func (p *PhysicalLight) Data() LightData {
	l := p.light
	return LightData{
		ID:                  p.id,
		Type:                l.Type,
		Unit:                p.unit,
		Intensity:           p.intensity,
		EnableSpotReflector: p.enableSpotReflector,
		SpotShape:           p.spotShape,
		LuxAtDistance:       p.luxAtDistance,
		AspectRatio:         p.aspectRatio,
		Color:               l.Color,
		Range:               l.Range,
		ConeAngle:           l.ConeAngle,
		AreaSize:            l.AreaSize,
		Scale:               l.Scale,
		ColorTemperature:    l.ColorTemperature,
		UseColorTemperature: l.UseColorTemperature,
		Enabled:             l.Enabled,
		CastsShadows:        l.CastsShadows,
		ShadowNearPlane:     l.ShadowNearPlane,
	}
}

// RestoreLight rebuilds a light from its persisted form. Unlike
// NewPhysicalLight it does not need shape defaults, so disc lights load.
func RestoreLight(data LightData, logger Logger) (*PhysicalLight, error) {
	shape, ok := data.Type.Shape()
	if !ok {
		return nil, fmt.Errorf("light %s: %s: %w", data.ID, data.Type, ErrUnsupportedLightType)
	}
	if err := photometry.CheckUnit(shape, data.Unit); err != nil {
		return nil, fmt.Errorf("light %s: %w", data.ID, err)
	}

	light := &LightComponent{
		Type:                data.Type,
		Color:               data.Color,
		Range:               data.Range,
		ConeAngle:           data.ConeAngle,
		AreaSize:            data.AreaSize,
		Scale:               data.Scale,
		ColorTemperature:    data.ColorTemperature,
		UseColorTemperature: data.UseColorTemperature,
		Enabled:             data.Enabled,
		CastsShadows:        data.CastsShadows,
		ShadowNearPlane:     data.ShadowNearPlane,
		Baking:              BakingOutput{OcclusionMaskChannel: -1},
	}
	p := newPhysicalLight(light, shape, lightOptions{
		id:            data.ID,
		logger:        logger,
		reflector:     &data.EnableSpotReflector,
		spotShape:     &data.SpotShape,
		aspectRatio:   &data.AspectRatio,
		luxAtDistance: &data.LuxAtDistance,
	})
	p.unit = data.Unit
	p.intensity = clampIntensity(data.Intensity)
	p.RecomputeNative()
	return p, nil
}

// SavePreset writes every registered light to filename.
func SavePreset(registry *LightRegistry, filename string) error {
	preset := PresetData{Lights: make([]LightData, 0, registry.Len())}
	registry.Each(func(light *PhysicalLight) bool {
		preset.Lights = append(preset.Lights, light.Data())
		return true
	})

	bytes, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, bytes, 0644)
}

// LoadPreset queues the lights in filename for registration. Lights that
// fail to restore are skipped with a warning. Ids already registered or
// queued, or repeated within the file, are replaced by fresh ones.
func LoadPreset(cmd *Commands, filename string) ([]uuid.UUID, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var preset PresetData
	if err := json.Unmarshal(bytes, &preset); err != nil {
		return nil, err
	}

	logger := cmd.Logger()
	var ids []uuid.UUID
	for _, data := range preset.Lights {
		if data.ID == uuid.Nil || cmd.HasLight(data.ID) {
			data.ID = uuid.New()
		}
		light, err := RestoreLight(data, logger)
		if err != nil {
			logger.Warnf("preset %s: skipping light: %v", filename, err)
			continue
		}
		ids = append(ids, cmd.AddLight(light))
	}
	return ids, nil
}
