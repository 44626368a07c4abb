package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")
	ErrInvalidMove     = errors.New("cubesim: invalid move")

	// Engine errors
	ErrPivotBusy = errors.New("cubesim: pivot already holds a layer")
	ErrLayerSize = errors.New("cubesim: layer does not hold 9 cubies")
	ErrReset     = errors.New("cubesim: engine was reset")
)
