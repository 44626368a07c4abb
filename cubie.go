package cubesim

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// LayerTolerance is how far a cubie's coordinate may sit from a layer
// coordinate and still be selected as part of that layer.
const LayerTolerance = 0.1

// Sticker is one colored face of a cubie. Normal is the outward direction
// of the sticker in the cubie's home orientation.
type Sticker struct {
	Normal Vec3
	Color  Color
}

// Cubie is one of the 27 small cubes. Its transform is stored relative to
// its parent: the registry (world space) or, mid-move, the pivot.
type Cubie struct {
	id       int
	home     Vec3
	stickers []Sticker

	position Vec3
	rotation quat.Number
	pivot    *Pivot // non-nil while attached
}

// ID returns the cubie's stable identity in [0, 27).
func (c *Cubie) ID() int { return c.id }

// Home returns the grid cell the cubie occupies when the cube is solved.
func (c *Cubie) Home() Vec3 { return c.home }

// Position returns the cubie's world-space position.
func (c *Cubie) Position() Vec3 {
	if c.pivot == nil {
		return c.position
	}
	return rotate(c.position, c.pivot.rotation)
}

// Rotation returns the cubie's world-space orientation.
func (c *Cubie) Rotation() quat.Number {
	if c.pivot == nil {
		return c.rotation
	}
	return quat.Mul(c.pivot.rotation, c.rotation)
}

// Attached reports whether the cubie is currently parented to the pivot.
func (c *Cubie) Attached() bool { return c.pivot != nil }

// State returns a value snapshot of the cubie in world space.
func (c *Cubie) State() CubieState {
	rot := c.Rotation()
	stickers := make([]Sticker, len(c.stickers))
	for i, s := range c.stickers {
		stickers[i] = Sticker{Normal: rotate(s.Normal, rot), Color: s.Color}
	}
	return CubieState{
		ID:       c.id,
		Home:     c.home,
		Position: c.Position(),
		Rotation: rot,
		Stickers: stickers,
	}
}

// CubieState is a read-only snapshot of a cubie for renderers.
// Sticker normals are in world space.
type CubieState struct {
	ID       int
	Home     Vec3
	Position Vec3
	Rotation quat.Number
	Stickers []Sticker
}

// Orientation returns the axis-aligned orientation of the snapshot, if it
// has one.
func (s CubieState) Orientation() (Orientation, bool) {
	return OrientationOf(s.Rotation)
}

// Registry owns the 27 cubies of one cube.
type Registry struct {
	cubies []*Cubie
}

// NewRegistry creates a solved cube: one cubie per cell of {-1,0,1}³,
// enumerated x-major, then y, then z.
func NewRegistry() *Registry {
	r := &Registry{cubies: make([]*Cubie, 0, 27)}
	for _, x := range Layers {
		for _, y := range Layers {
			for _, z := range Layers {
				home := Vec3{X: float64(x), Y: float64(y), Z: float64(z)}
				r.cubies = append(r.cubies, &Cubie{
					id:       len(r.cubies),
					home:     home,
					stickers: stickersFor(home),
					position: home,
					rotation: identity,
				})
			}
		}
	}
	return r
}

// stickersFor returns the outward-facing stickers of the cubie at home.
func stickersFor(home Vec3) []Sticker {
	var stickers []Sticker
	for _, axis := range Axes {
		c := home.Component(axis)
		if c == 0 {
			continue
		}
		var n Vec3
		switch axis {
		case AxisX:
			n.X = c
		case AxisY:
			n.Y = c
		case AxisZ:
			n.Z = c
		}
		stickers = append(stickers, Sticker{Normal: n, Color: faceToSolvedColor(faceFromNormal(n))})
	}
	return stickers
}

// All returns every cubie in registry order.
func (r *Registry) All() []*Cubie {
	out := make([]*Cubie, len(r.cubies))
	copy(out, r.cubies)
	return out
}

// Get returns the cubie with the given id, or nil.
func (r *Registry) Get(id int) *Cubie {
	if id < 0 || id >= len(r.cubies) {
		return nil
	}
	return r.cubies[id]
}

// Len returns the number of cubies (always 27).
func (r *Registry) Len() int { return len(r.cubies) }

// InLayer returns every cubie whose world coordinate along axis lies within
// LayerTolerance of layer.
func (r *Registry) InLayer(axis Axis, layer int) []*Cubie {
	out := make([]*Cubie, 0, 9)
	for _, c := range r.cubies {
		if math.Abs(c.Position().Component(axis)-float64(layer)) < LayerTolerance {
			out = append(out, c)
		}
	}
	return out
}

// Snapshot returns the state of every cubie in registry order.
func (r *Registry) Snapshot() []CubieState {
	out := make([]CubieState, len(r.cubies))
	for i, c := range r.cubies {
		out[i] = c.State()
	}
	return out
}

// AtHome reports whether every cubie is back in its home cell with its
// starting orientation.
func (r *Registry) AtHome() bool {
	for _, c := range r.cubies {
		if c.pivot != nil || c.position != c.home {
			return false
		}
		if o, ok := OrientationOf(c.rotation); !ok || o != IdentityOrientation {
			return false
		}
	}
	return true
}
