package cubesim

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three rotation axes.
type Axis int

const (
	AxisX Axis = 0 // Left to right
	AxisY Axis = 1 // Bottom to top
	AxisZ Axis = 2 // Back to front
)

// Axes lists every axis in order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a names a real axis.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis parses "x", "y" or "z" (either case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidMove, s)
}

// Direction is the sense of a quarter turn, viewed from the positive end
// of the move's axis looking back at the origin.
type Direction int

const (
	CW  Direction = 1  // Clockwise quarter turn
	CCW Direction = -1 // Counter-clockwise quarter turn
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return "?"
	}
}

// Layers lists the three slice coordinates along an axis.
var Layers = [3]int{-1, 0, 1}

// Move is a quarter turn of one layer. Moves are plain values.
type Move struct {
	Axis  Axis      // Rotation axis
	Layer int       // Slice along Axis: -1, 0 or 1
	Dir   Direction // CW or CCW
}

// Valid reports whether every field of m is in range.
func (m Move) Valid() bool {
	return m.Axis.Valid() && m.Layer >= -1 && m.Layer <= 1 && (m.Dir == CW || m.Dir == CCW)
}

// Inverse returns the move that undoes m: same axis and layer, opposite direction.
func (m Move) Inverse() Move {
	m.Dir = -m.Dir
	return m
}

// IsInverseOf reports whether m exactly undoes other.
func (m Move) IsInverseOf(other Move) bool {
	return m.Axis == other.Axis && m.Layer == other.Layer && m.Dir == -other.Dir
}

// layerName maps an (axis, layer) slice to its notation letter and to the
// direction that letter turns without a prime.
var layerName = map[[2]int]struct {
	letter byte
	dir    Direction
}{
	{int(AxisX), 1}:  {'R', CW},
	{int(AxisX), 0}:  {'M', CCW},
	{int(AxisX), -1}: {'L', CCW},
	{int(AxisY), 1}:  {'U', CW},
	{int(AxisY), 0}:  {'E', CCW},
	{int(AxisY), -1}: {'D', CCW},
	{int(AxisZ), 1}:  {'F', CW},
	{int(AxisZ), 0}:  {'S', CW},
	{int(AxisZ), -1}: {'B', CCW},
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', M, E', S
func (m Move) Notation() string {
	name, ok := layerName[[2]int{int(m.Axis), m.Layer}]
	if !ok || !m.Valid() {
		return fmt.Sprintf("?%s%d", m.Axis, m.Layer)
	}
	if m.Dir == name.dir {
		return string(name.letter)
	}
	return string(name.letter) + "'"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Token packs m into a small integer in [0, 18), used for sequence mining.
func (m Move) Token() uint8 {
	t := int(m.Axis)*6 + (m.Layer+1)*2
	if m.Dir == CCW {
		t++
	}
	return uint8(t)
}

// MoveFromToken is the inverse of Move.Token.
func MoveFromToken(t uint8) Move {
	m := Move{
		Axis:  Axis(t / 6),
		Layer: int(t%6)/2 - 1,
		Dir:   CW,
	}
	if t%2 == 1 {
		m.Dir = CCW
	}
	return m
}

// ParseMove parses a single quarter-turn in standard notation.
// Examples: R, R', m, E`
// Half turns (R2) describe two moves; use ParseMoves for those.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}

	var found bool
	var m Move
	for key, name := range layerName {
		if name.letter == letter {
			m = Move{Axis: Axis(key[0]), Layer: key[1], Dir: name.dir}
			found = true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	if len(s) == 2 {
		switch s[1] {
		case '\'', '`':
			m = m.Inverse()
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return m, nil
}

// ParseMoves parses a space-separated sequence of moves.
// A "2" suffix expands to two quarter turns, so "R2 U'" yields R R U'.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		repeat := 1
		if strings.HasSuffix(part, "2") || strings.HasSuffix(part, "2'") {
			repeat = 2
			part = strings.Replace(part, "2", "", 1)
		}

		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		for i := 0; i < repeat; i++ {
			moves = append(moves, move)
		}
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: reversed, each move inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
