package photon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/photon/photometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultExposureEpsilon, cfg.Exposure.Epsilon)

	r, ok := cfg.Slider(photometry.Ev100)
	require.True(t, ok)
	assert.Equal(t, 16.0, r.Max)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
log:
  prefix: editor
  level: debug
exposure:
  epsilon: 0.001
editor:
  lux_at_distance_min: 0.5
  sliders:
    Nits:
      min: 1
      max: 100
`))
	require.NoError(t, err)
	assert.Equal(t, "editor", cfg.Log.Prefix)
	assert.Equal(t, 0.001, cfg.Exposure.Epsilon)
	assert.Equal(t, 0.5, cfg.Editor.LuxAtDistanceMin)
	assert.Equal(t, 0.001, cfg.Editor.RangeMin, "unset fields keep their defaults")

	r, ok := cfg.Slider(photometry.Nits)
	require.True(t, ok)
	assert.Equal(t, SliderRange{Min: 1, Max: 100}, r)
	_, ok = cfg.Slider(photometry.Lumen)
	assert.True(t, ok)

	assert.True(t, cfg.Logger().DebugEnabled())
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"level":    "log:\n  level: loud\n",
		"epsilon":  "exposure:\n  epsilon: 0\n",
		"slider":   "editor:\n  sliders:\n    Lux:\n      min: 10\n      max: 1\n",
		"unit":     "editor:\n  sliders:\n    Watt:\n      min: 0\n      max: 1\n",
		"distance": "editor:\n  lux_at_distance_min: -1\n",
		"yaml":     "log: [",
	}
	for name, doc := range cases {
		_, err := ParseConfig([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exposure:\n  epsilon: 0.05\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Exposure.Epsilon)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigClamps(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.01, cfg.ClampLuxAtDistance(0.001))
	assert.Equal(t, 3.0, cfg.ClampLuxAtDistance(3))
	assert.Equal(t, float32(0.001), cfg.ClampRange(0))
	assert.Equal(t, float32(5), cfg.ClampRange(5))
}

func TestConfigModule(t *testing.T) {
	app := NewApp()
	app.UseModules(ConfigModule{Config: DefaultConfig()})

	cfg, ok := Resource[Config](app)
	require.True(t, ok)
	assert.Equal(t, "photon", cfg.Log.Prefix)
	_, ok = app.Logger().(*DefaultLogger)
	assert.True(t, ok)
}

func TestConfigModuleWithLoggingModule(t *testing.T) {
	app := NewApp()
	assert.NotPanics(t, func() {
		app.UseModules(LoggingModule{Prefix: "test", Debug: true}, ConfigModule{Config: DefaultConfig()})
	})
	assert.True(t, app.Logger().DebugEnabled())
	_, ok := Resource[Config](app)
	assert.True(t, ok)

	app = NewApp()
	assert.NotPanics(t, func() {
		app.UseModules(ConfigModule{Config: DefaultConfig()}, LoggingModule{Prefix: "test", Debug: true})
	})
	assert.False(t, app.Logger().DebugEnabled())
}

func TestConfigExposureSource(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.Exposure.Source())

	cfg, err := ParseConfig([]byte(`
exposure:
  mode: physical_camera
  compensation: 1
  camera:
    aperture: 1
    shutter_speed: 1
    iso: 100
`))
	require.NoError(t, err)
	e := cfg.Exposure.Source()
	require.NotNil(t, e)
	assert.Equal(t, ExposurePhysicalCamera, e.Mode)
	assert.InDelta(t, -1.0, e.EV100(), 1e-12)

	_, err = ParseConfig([]byte("exposure:\n  camera:\n    iso: 0\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("exposure:\n  mode: auto\n"))
	assert.Error(t, err)

	app := NewApp()
	app.UseModules(ConfigModule{Config: cfg}, LightSyncModule{})
	light := newTestLight(t, LightTypePoint, WithUnit(photometry.Candela), WithIntensity(100))
	app.Commands().AddLight(light)
	app.Tick()
	assert.InDelta(t, 100*2/1.2, light.NativeIntensity(), 1e-3)
}
