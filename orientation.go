package cubesim

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Vec3 is a point or direction in cube space. One unit is one cubie.
type Vec3 struct {
	X, Y, Z float64
}

// Component returns the coordinate of v along axis a.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Rounded returns v with every coordinate rounded to the nearest integer.
// Negative zero is normalized so rounded vectors compare and print cleanly.
func (v Vec3) Rounded() Vec3 {
	return Vec3{X: roundUnit(v.X), Y: roundUnit(v.Y), Z: roundUnit(v.Z)}
}

// IsInteger reports whether every coordinate of v is an exact integer.
func (v Vec3) IsInteger() bool {
	return v.X == math.Trunc(v.X) && v.Y == math.Trunc(v.Y) && v.Z == math.Trunc(v.Z)
}

func roundUnit(x float64) float64 {
	r := scalar.Round(x, 0)
	if r == 0 {
		return 0
	}
	return r
}

// identity is the zero rotation.
var identity = quat.Number{Real: 1}

// raise lifts a vector into a pure quaternion.
func raise(v Vec3) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// rotate applies the unit rotation q to v.
func rotate(v Vec3, q quat.Number) Vec3 {
	p := quat.Mul(quat.Mul(q, raise(v)), quat.Conj(q))
	return Vec3{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// axisRotation returns a rotation of degrees about the positive end of axis,
// counter-clockwise when viewed from that end.
func axisRotation(axis Axis, degrees float64) quat.Number {
	half := degrees * math.Pi / 360
	s := math.Sin(half)
	q := quat.Number{Real: math.Cos(half)}
	switch axis {
	case AxisX:
		q.Imag = s
	case AxisY:
		q.Jmag = s
	case AxisZ:
		q.Kmag = s
	}
	return q
}

// matrix converts a unit quaternion to a row-major rotation matrix.
func matrix(q quat.Number) [3][3]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// fromMatrix converts a rotation matrix to a unit quaternion with a
// canonical sign, so equal matrices always yield identical quaternions.
func fromMatrix(m [3][3]float64) quat.Number {
	var q quat.Number
	tr := m[0][0] + m[1][1] + m[2][2]
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = quat.Number{Real: s / 4, Imag: (m[2][1] - m[1][2]) / s, Jmag: (m[0][2] - m[2][0]) / s, Kmag: (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = quat.Number{Real: (m[2][1] - m[1][2]) / s, Imag: s / 4, Jmag: (m[0][1] + m[1][0]) / s, Kmag: (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = quat.Number{Real: (m[0][2] - m[2][0]) / s, Imag: (m[0][1] + m[1][0]) / s, Jmag: s / 4, Kmag: (m[1][2] + m[2][1]) / s}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = quat.Number{Real: (m[1][0] - m[0][1]) / s, Imag: (m[0][2] + m[2][0]) / s, Jmag: (m[1][2] + m[2][1]) / s, Kmag: s / 4}
	}
	return canonical(q)
}

// canonical picks the representative of {q, -q} whose first non-zero
// component is positive.
func canonical(q quat.Number) quat.Number {
	for _, c := range [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		if c == 0 {
			continue
		}
		if c < 0 {
			q = quat.Scale(-1, q)
		}
		break
	}
	// Scale by -1 turns 0 into -0.
	if q.Real == 0 {
		q.Real = 0
	}
	if q.Imag == 0 {
		q.Imag = 0
	}
	if q.Jmag == 0 {
		q.Jmag = 0
	}
	if q.Kmag == 0 {
		q.Kmag = 0
	}
	return q
}

// snapRotation rounds q to the nearest axis-aligned rotation by rounding
// every matrix entry to -1, 0 or 1.
func snapRotation(q quat.Number) quat.Number {
	if n := quat.Abs(q); n != 0 && n != 1 {
		q = quat.Scale(1/n, q)
	}
	m := matrix(q)
	for i := range m {
		for j := range m[i] {
			m[i][j] = roundUnit(m[i][j])
		}
	}
	return fromMatrix(m)
}

// Orientation is an axis-aligned rotation stored as a signed permutation
// matrix. Every settled cubie has one.
type Orientation [3][3]int

// IdentityOrientation is the orientation of an unturned cubie.
var IdentityOrientation = Orientation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// OrientationOf returns the axis-aligned orientation equal to q. The second
// result is false when q is not exactly axis-aligned (for example mid-move).
func OrientationOf(q quat.Number) (Orientation, bool) {
	var o Orientation
	m := matrix(q)
	for i := range m {
		for j := range m[i] {
			v := m[i][j]
			r := roundUnit(v)
			if math.Abs(v-r) > 1e-9 {
				return Orientation{}, false
			}
			o[i][j] = int(r)
		}
	}
	return o, true
}

// Angles decomposes o into X, Y and Z Euler angles in degrees (applied in
// XYZ order, matrix = Rx·Ry·Rz). Every angle is a multiple of 90.
func (o Orientation) Angles() [3]int {
	// sin(y) sits at [0][2].
	y := 90 * o[0][2]
	if o[0][2] == 0 {
		return [3]int{quarterAngle(-o[1][2], o[2][2]), y, quarterAngle(-o[0][1], o[0][0])}
	}
	return [3]int{quarterAngle(o[2][1], o[1][1]), y, 0}
}

// quarterAngle is atan2 restricted to the four axis directions.
func quarterAngle(sin, cos int) int {
	switch {
	case sin == 0 && cos == 1:
		return 0
	case sin == 1 && cos == 0:
		return 90
	case sin == 0 && cos == -1:
		return 180
	case sin == -1 && cos == 0:
		return -90
	default:
		return 0
	}
}

// Apply rotates v by o.
func (o Orientation) Apply(v Vec3) Vec3 {
	return Vec3{
		X: float64(o[0][0])*v.X + float64(o[0][1])*v.Y + float64(o[0][2])*v.Z,
		Y: float64(o[1][0])*v.X + float64(o[1][1])*v.Y + float64(o[1][2])*v.Z,
		Z: float64(o[2][0])*v.X + float64(o[2][1])*v.Y + float64(o[2][2])*v.Z,
	}
}
