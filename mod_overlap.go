package photon

import (
	"slices"

	"github.com/google/uuid"
)

// OverlapRegistry tracks the lights whose baked occlusion has no channel of
// its own.
type OverlapRegistry struct {
	ids map[uuid.UUID]struct{}
}

func NewOverlapRegistry() *OverlapRegistry {
	return &OverlapRegistry{ids: make(map[uuid.UUID]struct{})}
}

// Refresh records or clears light depending on its baking output.
func (r *OverlapRegistry) Refresh(light *PhysicalLight) {
	if light.Light().IsOverlapping() {
		r.ids[light.ID()] = struct{}{}
	} else {
		delete(r.ids, light.ID())
	}
}

func (r *OverlapRegistry) Forget(id uuid.UUID) {
	delete(r.ids, id)
}

func (r *OverlapRegistry) Contains(id uuid.UUID) bool {
	_, ok := r.ids[id]
	return ok
}

func (r *OverlapRegistry) Len() int {
	return len(r.ids)
}

// IDs returns the overlapping lights sorted by id.
func (r *OverlapRegistry) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return out
}

// OverlapModule refreshes the overlap registry after lights were updated.
type OverlapModule struct{}

func (OverlapModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewOverlapRegistry())
	app.UseSystem(System(overlapSystem).InStage(PostUpdate))
}

func overlapSystem(registry *LightRegistry, overlaps *OverlapRegistry) {
	registry.Each(func(light *PhysicalLight) bool {
		overlaps.Refresh(light)
		return true
	})
}
