// Package cubesim is an animated Rubik's cube engine: 27 cubies, layer
// turns animated frame by frame, random scrambles and exact-inverse solves.
//
// # Features
//
//   - Cubie registry with world-space positions and orientations
//   - Layer turns animated through a single reusable pivot
//   - Snapping after every move, so drift never accumulates
//   - Frame-driven FIFO move queue with normal and fast speeds
//   - Scramble and solve with completion handles and cancellation
//
// # Quick Start
//
// Drive the engine from your render loop:
//
//	engine := cubesim.New()
//	engine.OnMoveComplete(func(remaining int) {
//	    fmt.Println("moves from solved:", remaining)
//	})
//
//	batch := engine.Scramble(ctx, 20)
//	for {
//	    engine.Tick(frameTime)
//	    draw(engine.Cubies())
//	}
//
// Or let the engine run its own ticker:
//
//	go engine.Run(ctx, time.Second/60)
//	engine.Scramble(ctx, 20).Wait(ctx)
//	engine.Solve(ctx).Wait(ctx)
//	fmt.Println("Solved:", engine.IsSolved())
//
// # Moves
//
// A move turns one layer a quarter turn. The package provides the usual
// notation as values:
//
//	cubesim.R      // Right clockwise
//	cubesim.RPrime // Right counter-clockwise
//	cubesim.M      // Middle slice, following L
//	// ... and similarly for L, U, D, F, B, E, S
//
// # Solving
//
// Solve replays the inverse of the recorded history. It is not a general
// solver: it only returns a cube to solved along the path it came.
package cubesim
