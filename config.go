package photon

import (
	"fmt"
	"math"
	"os"

	"github.com/gekko3d/photon/photometry"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// ExposureConfig describes the scene exposure. An empty Mode installs no
// exposure source.
type ExposureConfig struct {
	Epsilon      float64        `yaml:"epsilon" validate:"gt=0,lt=1"`
	Mode         string         `yaml:"mode" validate:"omitempty,oneof=fixed physical_camera"`
	FixedEV100   float64        `yaml:"fixed_ev100"`
	Compensation float64        `yaml:"compensation"`
	Camera       PhysicalCamera `yaml:"camera"`
}

// Source builds the configured exposure, or nil when Mode is empty.
func (c ExposureConfig) Source() *Exposure {
	if c.Mode == "" {
		return nil
	}
	e := NewFixedExposure(c.FixedEV100)
	e.Compensation = c.Compensation
	e.Camera = c.Camera
	if c.Mode == "physical_camera" {
		e.Mode = ExposurePhysicalCamera
	}
	return e
}

// SliderRange bounds an intensity slider for one unit.
type SliderRange struct {
	Min float64 `yaml:"min" validate:"gte=0"`
	Max float64 `yaml:"max" validate:"gtfield=Min"`
}

// EditorConfig holds the limits editing surfaces apply before calling into a
// PhysicalLight.
type EditorConfig struct {
	LuxAtDistanceMin float64 `yaml:"lux_at_distance_min" validate:"gt=0"`
	RangeMin         float64 `yaml:"range_min" validate:"gt=0"`
	// Sliders is keyed by unit name, e.g. "Lumen" or "ev".
	Sliders map[string]SliderRange `yaml:"sliders" validate:"dive"`
}

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Exposure ExposureConfig `yaml:"exposure"`
	Editor   EditorConfig   `yaml:"editor"`
}

func DefaultConfig() Config {
	return Config{
		Log:      LogConfig{Prefix: "photon", Level: "info"},
		Exposure: ExposureConfig{Epsilon: DefaultExposureEpsilon, Camera: DefaultPhysicalCamera()},
		Editor: EditorConfig{
			LuxAtDistanceMin: 0.01,
			RangeMin:         0.001,
			Sliders: map[string]SliderRange{
				photometry.Lumen.String():   {Min: 0, Max: 8000},
				photometry.Candela.String(): {Min: 0, Max: 640},
				photometry.Lux.String():     {Min: 0, Max: 130000},
				photometry.Ev100.String():   {Min: 0, Max: 16},
				photometry.Nits.String():    {Min: 0, Max: 5000},
			},
		},
	}
}

var configValidator = validator.New()

// Validate checks field constraints and that every slider key names a unit.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for name := range c.Editor.Sliders {
		if _, err := photometry.ParseUnit(name); err != nil {
			return fmt.Errorf("invalid config: slider %q: %w", name, err)
		}
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("cannot parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Slider returns the slider range for unit.
func (c Config) Slider(unit photometry.Unit) (SliderRange, bool) {
	for name, r := range c.Editor.Sliders {
		if u, err := photometry.ParseUnit(name); err == nil && u == unit {
			return r, true
		}
	}
	return SliderRange{}, false
}

// ClampLuxAtDistance applies the editor minimum to a reference distance.
func (c Config) ClampLuxAtDistance(d float64) float64 {
	if math.IsNaN(d) {
		return c.Editor.LuxAtDistanceMin
	}
	return math.Max(d, c.Editor.LuxAtDistanceMin)
}

func (c Config) ClampRange(r float32) float32 {
	return max(r, float32(c.Editor.RangeMin))
}

func (c Config) Logger() *DefaultLogger {
	logger := NewDefaultLogger(c.Log.Prefix, false)
	if level, err := ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// ConfigModule installs the config and a logger built from it. Install it
// before modules that read the config. A logger installed earlier, e.g. by
// LoggingModule, is kept.
type ConfigModule struct {
	Config Config
}

func (m ConfigModule) Install(app *App, cmd *Commands) {
	cfg := m.Config
	cmd.AddResources(&cfg)
	if _, ok := Resource[DefaultLogger](app); ok {
		app.Logger().Debugf("config: keeping installed logger")
		return
	}
	cmd.AddResources(cfg.Logger())
}
