package photon

import "github.com/google/uuid"

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// AddLight queues light for registration. It becomes visible to systems at
// the next flush.
func (cmd *Commands) AddLight(light *PhysicalLight) uuid.UUID {
	cmd.app.pendingLights = append(cmd.app.pendingLights, light)
	return light.ID()
}

// HasLight reports whether id is registered or queued for registration.
func (cmd *Commands) HasLight(id uuid.UUID) bool {
	if _, ok := cmd.Lights().Get(id); ok {
		return true
	}
	for _, light := range cmd.app.pendingLights {
		if light.ID() == id {
			return true
		}
	}
	return false
}

func (cmd *Commands) RemoveLight(id uuid.UUID) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, id)
}

func (cmd *Commands) Lights() *LightRegistry {
	registry, _ := Resource[LightRegistry](cmd.app)
	return registry
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
