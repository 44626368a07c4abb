package cubesim

import "fmt"

// ApplyMove turns one layer of r a full quarter turn at once, without
// animation. The result matches what an Engine settles on after animating m.
func ApplyMove(r *Registry, m Move) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidMove, m)
	}
	layer := r.InLayer(m.Axis, m.Layer)
	if len(layer) != 9 {
		return fmt.Errorf("%w: %s selected %d", ErrLayerSize, m, len(layer))
	}

	p := newPivot()
	if err := p.Attach(layer); err != nil {
		return err
	}
	p.SetAngle(m.Axis, -float64(m.Dir)*QuarterTurn)
	p.Detach()
	return nil
}

// ApplyMoves applies moves in order, stopping at the first failure.
func ApplyMoves(r *Registry, moves []Move) error {
	for i, m := range moves {
		if err := ApplyMove(r, m); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	return nil
}
