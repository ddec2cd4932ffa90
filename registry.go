package photon

import (
	"slices"

	"github.com/google/uuid"
)

// LightRegistry holds every physical light known to the app in registration
// order.
type LightRegistry struct {
	lights map[uuid.UUID]*PhysicalLight
	order  []uuid.UUID
}

func NewLightRegistry() *LightRegistry {
	return &LightRegistry{lights: make(map[uuid.UUID]*PhysicalLight)}
}

func (r *LightRegistry) add(light *PhysicalLight) {
	if _, ok := r.lights[light.ID()]; !ok {
		r.order = append(r.order, light.ID())
	}
	r.lights[light.ID()] = light
}

func (r *LightRegistry) remove(id uuid.UUID) bool {
	if _, ok := r.lights[id]; !ok {
		return false
	}
	delete(r.lights, id)
	r.order = slices.DeleteFunc(r.order, func(o uuid.UUID) bool { return o == id })
	return true
}

func (r *LightRegistry) Get(id uuid.UUID) (*PhysicalLight, bool) {
	l, ok := r.lights[id]
	return l, ok
}

func (r *LightRegistry) Len() int {
	return len(r.order)
}

// Each visits lights in registration order until fn returns false.
func (r *LightRegistry) Each(fn func(light *PhysicalLight) bool) {
	for _, id := range r.order {
		if !fn(r.lights[id]) {
			return
		}
	}
}

// Select builds a batch from the given ids. Unknown ids are skipped.
func (r *LightRegistry) Select(ids ...uuid.UUID) *Batch {
	var members []*PhysicalLight
	for _, id := range ids {
		if l, ok := r.lights[id]; ok {
			members = append(members, l)
		}
	}
	return NewBatch(members...)
}

// All returns a batch of every registered light.
func (r *LightRegistry) All() *Batch {
	return r.Select(r.order...)
}
