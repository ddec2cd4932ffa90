package photon

// LightSyncModule installs the exposure compositor and keeps every registered
// light's native intensity current. Exposure is sampled in PreUpdate and
// applied in Update, so all lights see the same value within a frame.
type LightSyncModule struct {
	// Source takes precedence over an exposure set in Config.
	Source ExposureSource
	// Epsilon overrides the exposure epsilon; zero uses the configured or
	// default value.
	Epsilon float64
}

func (m LightSyncModule) Install(app *App, cmd *Commands) {
	compositor := NewExposureCompositor()
	compositor.SetSource(m.Source)
	if cfg, ok := Resource[Config](app); ok {
		compositor.Epsilon = cfg.Exposure.Epsilon
		if src := cfg.Exposure.Source(); m.Source == nil && src != nil {
			compositor.SetSource(src)
		}
	}
	if m.Epsilon > 0 {
		compositor.Epsilon = m.Epsilon
	}
	cmd.AddResources(compositor)

	app.UseSystem(System(exposureSnapshotSystem).InStage(PreUpdate))
	app.UseSystem(System(lightSyncSystem).InStage(Update))
}

func exposureSnapshotSystem(compositor *ExposureCompositor) {
	compositor.Snapshot()
}

func lightSyncSystem(compositor *ExposureCompositor, registry *LightRegistry, logger Logger) {
	exposed, drifted := 0, 0
	registry.Each(func(light *PhysicalLight) bool {
		if compositor.Apply(light) {
			exposed++
		}
		if light.Sync() {
			drifted++
		}
		return true
	})
	if exposed > 0 || drifted > 0 {
		logger.Debugf("light sync: %d exposure updates, %d drift corrections", exposed, drifted)
	}
}
