package cubesim

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Pivot is the rotation anchor a layer is parented to while it turns.
// One pivot is reused for every move; it holds either no cubies or exactly
// one layer, and its rotation is the identity whenever it is empty.
type Pivot struct {
	rotation quat.Number
	attached []*Cubie
}

func newPivot() *Pivot {
	return &Pivot{rotation: identity}
}

// Rotation returns the pivot's current rotation.
func (p *Pivot) Rotation() quat.Number { return p.rotation }

// Len returns the number of cubies attached.
func (p *Pivot) Len() int { return len(p.attached) }

// Attach resets the pivot to the identity and re-parents cubies under it,
// keeping each cubie's world transform unchanged.
func (p *Pivot) Attach(cubies []*Cubie) error {
	if len(p.attached) > 0 {
		return fmt.Errorf("%w: %d cubies still attached", ErrPivotBusy, len(p.attached))
	}
	for _, c := range cubies {
		if c.pivot != nil {
			return fmt.Errorf("%w: cubie %d already attached", ErrPivotBusy, c.id)
		}
	}

	// With the pivot at identity, pivot-local equals world space.
	p.rotation = identity
	for _, c := range cubies {
		c.position, c.rotation = c.Position(), c.Rotation()
		c.pivot = p
	}
	p.attached = append(p.attached[:0], cubies...)
	return nil
}

// SetAngle sets the pivot to a rotation of degrees about axis alone.
func (p *Pivot) SetAngle(axis Axis, degrees float64) {
	p.rotation = axisRotation(axis, degrees)
}

// Detach returns every attached cubie to world space, snaps it to the grid
// and resets the pivot to the identity. It returns the detached cubies.
func (p *Pivot) Detach() []*Cubie {
	detached := p.attached
	for _, c := range detached {
		pos, rot := c.Position(), c.Rotation()
		c.pivot = nil
		c.position = pos.Rounded()
		c.rotation = snapRotation(rot)
	}
	p.attached = nil
	p.rotation = identity
	return detached
}

// reset zeroes the pivot rotation without touching attached cubies.
func (p *Pivot) reset() {
	p.rotation = identity
}
