package cubesim

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face names one of the six outer faces of the cube.
type Face int

const (
	FaceU Face = 0 // Up (+Y, white)
	FaceD Face = 1 // Down (-Y, yellow)
	FaceF Face = 2 // Front (+Z, green)
	FaceB Face = 3 // Back (-Z, blue)
	FaceR Face = 4 // Right (+X, red)
	FaceL Face = 5 // Left (-X, orange)
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// faceFromNormal returns the face an outward normal points through. The
// normal is rounded first, so slightly drifted directions still resolve.
func faceFromNormal(n Vec3) Face {
	n = n.Rounded()
	switch {
	case n.Y > 0:
		return FaceU
	case n.Y < 0:
		return FaceD
	case n.Z > 0:
		return FaceF
	case n.Z < 0:
		return FaceB
	case n.X > 0:
		return FaceR
	default:
		return FaceL
	}
}

// faceletIndex returns where a cubie at p shows on face f. Each face is
// read as seen from outside the cube, with U above F and F above D:
//
//	0 1 2
//	3 4 5
//	6 7 8
func faceletIndex(f Face, p Vec3) int {
	p = p.Rounded()
	x, y, z := int(p.X), int(p.Y), int(p.Z)
	var row, col int
	switch f {
	case FaceU:
		row, col = z+1, x+1
	case FaceD:
		row, col = 1-z, x+1
	case FaceF:
		row, col = 1-y, x+1
	case FaceB:
		row, col = 1-y, 1-x
	case FaceR:
		row, col = 1-y, 1-z
	case FaceL:
		row, col = 1-y, z+1
	}
	return row*3 + col
}

// Facelets is the 54-sticker net of a cube.
type Facelets struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// FaceletsOf projects cubie snapshots onto the sticker net.
func FaceletsOf(cubies []CubieState) *Facelets {
	f := &Facelets{}
	for _, c := range cubies {
		for _, s := range c.Stickers {
			face := faceFromNormal(s.Normal)
			f.Facelets[face][faceletIndex(face, c.Position)] = s.Color
		}
	}
	return f
}

// IsSolved returns true if every face shows a single color.
func (f *Facelets) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		for i := 1; i < 9; i++ {
			if f.Facelets[face][i] != f.Facelets[face][0] {
				return false
			}
		}
	}
	return true
}

// Face returns the nine stickers of one face.
func (f *Facelets) Face(face Face) [9]Color {
	return f.Facelets[face]
}

// String returns a text representation of the net.
func (f *Facelets) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f.Facelets[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f.Facelets[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
