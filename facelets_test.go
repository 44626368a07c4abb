package cubesim

import (
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	e := New()
	if !e.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !e.Facelets().IsSolved() {
		t.Error("New cube net should be solved")
		t.Log(e.Facelets().String())
	}
}

func TestSolvedNetColors(t *testing.T) {
	f := New().Facelets()
	for face := Face(0); face < 6; face++ {
		for i, c := range f.Face(face) {
			if c != faceToSolvedColor(face) {
				t.Errorf("%v[%d] = %v, want %v", face, i, c, faceToSolvedColor(face))
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	e := New()
	apply(t, e, R)
	if e.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
	if e.Facelets().IsSolved() {
		t.Error("Net should not be solved after R move")
	}
}

func TestRMoveCyclesStickers(t *testing.T) {
	e := New()
	apply(t, e, R)
	f := e.Facelets()

	// U right column <- F, F <- D, D <- B, B left column <- U
	checks := []struct {
		face  Face
		index []int
		want  Color
	}{
		{FaceU, []int{2, 5, 8}, Green},
		{FaceF, []int{2, 5, 8}, Yellow},
		{FaceD, []int{2, 5, 8}, Blue},
		{FaceB, []int{0, 3, 6}, White},
		{FaceU, []int{0, 1, 3, 4, 6, 7}, White},
	}
	for _, c := range checks {
		for _, i := range c.index {
			if got := f.Facelets[c.face][i]; got != c.want {
				t.Errorf("after R %v[%d] = %v, want %v", c.face, i, got, c.want)
			}
		}
	}
	for i, c := range f.Face(FaceR) {
		if c != Red {
			t.Errorf("R face should stay red, [%d] = %v", i, c)
		}
	}
	if t.Failed() {
		t.Log(f.String())
	}
}

func TestRRRR_ReturnsToSolved_AllLayers(t *testing.T) {
	for _, axis := range Axes {
		for _, layer := range Layers {
			e := New()
			m := Move{Axis: axis, Layer: layer, Dir: CW}
			apply(t, e, m, m, m, m)
			if !e.IsSolved() {
				t.Errorf("%v x 4 should return to solved", m)
				t.Log(e.Facelets().String())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	e := New()
	for i := 0; i < 6; i++ {
		apply(t, e, SexyMove...)
	}
	if !e.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(e.Facelets().String())
	}
}

func TestSliceMoveMovesCenters(t *testing.T) {
	e := New()
	apply(t, e, M)
	f := e.Facelets()
	// M follows L: the front center moves down.
	if f.Facelets[FaceD][4] != Green {
		t.Errorf("D center after M = %v, want G", f.Facelets[FaceD][4])
		t.Log(f.String())
	}
	if f.IsSolved() {
		t.Error("Net should not be solved after M")
	}
}

func TestNetString(t *testing.T) {
	s := New().Facelets().String()
	want := "      W W W \n" +
		"      W W W \n" +
		"      W W W \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n"
	if s != want {
		t.Errorf("unexpected net:\n%s", s)
	}
}
