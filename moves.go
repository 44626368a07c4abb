package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	engine.Turn(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right layer moves
	R      = Move{Axis: AxisX, Layer: 1, Dir: CW}  // Right clockwise
	RPrime = Move{Axis: AxisX, Layer: 1, Dir: CCW} // Right counter-clockwise

	// Left layer moves
	L      = Move{Axis: AxisX, Layer: -1, Dir: CCW} // Left clockwise
	LPrime = Move{Axis: AxisX, Layer: -1, Dir: CW}  // Left counter-clockwise

	// Middle slice (follows L)
	M      = Move{Axis: AxisX, Layer: 0, Dir: CCW}
	MPrime = Move{Axis: AxisX, Layer: 0, Dir: CW}

	// Up layer moves
	U      = Move{Axis: AxisY, Layer: 1, Dir: CW}  // Up clockwise
	UPrime = Move{Axis: AxisY, Layer: 1, Dir: CCW} // Up counter-clockwise

	// Down layer moves
	D      = Move{Axis: AxisY, Layer: -1, Dir: CCW} // Down clockwise
	DPrime = Move{Axis: AxisY, Layer: -1, Dir: CW}  // Down counter-clockwise

	// Equator slice (follows D)
	E      = Move{Axis: AxisY, Layer: 0, Dir: CCW}
	EPrime = Move{Axis: AxisY, Layer: 0, Dir: CW}

	// Front layer moves
	F      = Move{Axis: AxisZ, Layer: 1, Dir: CW}  // Front clockwise
	FPrime = Move{Axis: AxisZ, Layer: 1, Dir: CCW} // Front counter-clockwise

	// Back layer moves
	B      = Move{Axis: AxisZ, Layer: -1, Dir: CCW} // Back clockwise
	BPrime = Move{Axis: AxisZ, Layer: -1, Dir: CW}  // Back counter-clockwise

	// Standing slice (follows F)
	S      = Move{Axis: AxisZ, Layer: 0, Dir: CW}
	SPrime = Move{Axis: AxisZ, Layer: 0, Dir: CCW}
)

// FallbackMove is used by the scrambler when every random candidate would
// undo the previous move.
var FallbackMove = Move{Axis: AxisX, Layer: 1, Dir: CW}

// Sexy move: R U R' U' - six repetitions return to the start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// AllMoves returns the 18 distinct quarter turns in token order.
func AllMoves() []Move {
	moves := make([]Move, 0, 18)
	for t := uint8(0); t < 18; t++ {
		moves = append(moves, MoveFromToken(t))
	}
	return moves
}
