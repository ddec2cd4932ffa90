package photon

import (
	"errors"
	"fmt"

	"github.com/gekko3d/photon/photometry"
)

// Batch edits several lights at once, the way a multi-selection does.
type Batch struct {
	members []*PhysicalLight
}

func NewBatch(lights ...*PhysicalLight) *Batch {
	return &Batch{members: lights}
}

func (b *Batch) Len() int {
	return len(b.members)
}

func (b *Batch) Members() []*PhysicalLight {
	return b.members
}

// Shape is the common shape or photometry.ShapeMixed.
func (b *Batch) Shape() photometry.Shape {
	if len(b.members) == 0 {
		return photometry.ShapeMixed
	}
	s := b.members[0].Shape()
	for _, m := range b.members[1:] {
		if m.Shape() != s {
			return photometry.ShapeMixed
		}
	}
	return s
}

// Unit is the common unit or photometry.UnitMixed.
func (b *Batch) Unit() photometry.Unit {
	if len(b.members) == 0 {
		return photometry.UnitMixed
	}
	u := b.members[0].Unit()
	for _, m := range b.members[1:] {
		if m.Unit() != u {
			return photometry.UnitMixed
		}
	}
	return u
}

// Intensity returns the first member's intensity and whether the members
// disagree.
func (b *Batch) Intensity() (v float64, mixed bool) {
	if len(b.members) == 0 {
		return 0, false
	}
	v = b.members[0].Intensity()
	for _, m := range b.members[1:] {
		if m.Intensity() != v {
			return v, true
		}
	}
	return v, false
}

// SupportedUnits is nil when the shapes are mixed.
func (b *Batch) SupportedUnits() []photometry.Unit {
	return photometry.ValidUnits(b.Shape())
}

// SetUnit converts every member to unit. A batch with mixed shapes or units
// is left untouched and photometry.ErrMixedState is returned; use Reconcile
// to converge such a batch.
func (b *Batch) SetUnit(unit photometry.Unit) error {
	if len(b.members) == 0 {
		return nil
	}
	shape := b.Shape()
	if shape == photometry.ShapeMixed || b.Unit() == photometry.UnitMixed {
		return photometry.ErrMixedState
	}
	if err := photometry.CheckUnit(shape, unit); err != nil {
		return err
	}
	for _, m := range b.members {
		if err := m.SetUnit(unit); err != nil {
			return fmt.Errorf("light %s: %w", m.ID(), err)
		}
	}
	return nil
}

// Reconcile converts each member to unit independently. Members that reject
// unit keep their state and contribute to the returned error.
func (b *Batch) Reconcile(unit photometry.Unit) error {
	var errs []error
	for _, m := range b.members {
		if err := m.SetUnit(unit); err != nil {
			errs = append(errs, fmt.Errorf("light %s: %w", m.ID(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *Batch) SetIntensity(v float64) {
	for _, m := range b.members {
		m.SetIntensity(v)
	}
}

func (b *Batch) SetShape(shape photometry.Shape) error {
	var errs []error
	for _, m := range b.members {
		if err := m.SetShape(shape); err != nil {
			errs = append(errs, fmt.Errorf("light %s: %w", m.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Sync runs PhysicalLight.Sync on every member and returns how many were
// rewritten.
func (b *Batch) Sync() int {
	n := 0
	for _, m := range b.members {
		if m.Sync() {
			n++
		}
	}
	return n
}
