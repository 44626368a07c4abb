package cubesim

import (
	"fmt"
	"math"
	"time"
)

// QuarterTurn is the angle, in degrees, every move rotates its layer.
const QuarterTurn = 90.0

// State is the animator's state.
type State int

const (
	// StateIdle means no move is in flight.
	StateIdle State = iota
	// StateAnimating means exactly one move is rotating its layer.
	StateAnimating
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Speed selects the animation rate.
type Speed int

const (
	// SpeedNormal is used for single interactive moves.
	SpeedNormal Speed = iota
	// SpeedFast is used while a scramble or solve plays back.
	SpeedFast
)

func (s Speed) String() string {
	if s == SpeedFast {
		return "fast"
	}
	return "normal"
}

// queuedMove is a move together with the batch that enqueued it.
type queuedMove struct {
	move  Move
	batch *Batch
	seq   uint64
}

// animator is the frame-driven move scheduler. It owns the FIFO of pending
// moves and drives the pivot for the single move in flight.
type animator struct {
	registry *Registry
	pivot    *Pivot

	queue    []queuedMove
	state    State
	current  queuedMove
	progress float64 // degrees turned so far

	speed      Speed
	normalRate float64 // degrees per second
	fastRate   float64
}

func newAnimator(registry *Registry, pivot *Pivot, normalRate, fastRate float64) *animator {
	return &animator{
		registry:   registry,
		pivot:      pivot,
		state:      StateIdle,
		speed:      SpeedNormal,
		normalRate: normalRate,
		fastRate:   fastRate,
	}
}

// rate returns the current rotation speed in degrees per second.
func (a *animator) rate() float64 {
	if a.speed == SpeedFast {
		return a.fastRate
	}
	return a.normalRate
}

// enqueue appends moves to the back of the queue.
func (a *animator) enqueue(moves ...queuedMove) {
	a.queue = append(a.queue, moves...)
}

// step runs one tick of the state machine. When the tick finishes a move
// the completed move is returned.
func (a *animator) step(dt time.Duration) (*queuedMove, error) {
	switch a.state {
	case StateIdle:
		if len(a.queue) == 0 {
			return nil, nil
		}
		next := a.queue[0]
		layer := a.registry.InLayer(next.move.Axis, next.move.Layer)
		if len(layer) != 9 {
			return nil, fmt.Errorf("%w: %s selected %d", ErrLayerSize, next.move, len(layer))
		}
		if err := a.pivot.Attach(layer); err != nil {
			return nil, fmt.Errorf("attach %s: %w", next.move, err)
		}
		a.queue = a.queue[1:]
		a.current = next
		a.progress = 0
		a.state = StateAnimating
		return nil, nil

	case StateAnimating:
		if dt > 0 {
			a.progress += a.rate() * dt.Seconds()
		}
		a.progress = math.Min(a.progress, QuarterTurn)
		a.pivot.SetAngle(a.current.move.Axis, -float64(a.current.move.Dir)*a.progress)
		if a.progress < QuarterTurn {
			return nil, nil
		}

		a.pivot.Detach()
		done := a.current
		a.current = queuedMove{}
		a.progress = 0
		a.state = StateIdle
		return &done, nil
	}
	return nil, nil
}

// abandon stops the move in flight. Its layer is first turned to the
// nearer of 0° and 90°, then detached and snapped, so the pivot never keeps
// cubies and the cube stays a valid permutation.
func (a *animator) abandon() {
	if a.state == StateAnimating {
		a.pivot.SetAngle(a.current.move.Axis, -float64(a.current.move.Dir)*nearestQuarter(a.progress))
		a.pivot.Detach()
	}
	a.pivot.reset()
	a.current = queuedMove{}
	a.progress = 0
	a.state = StateIdle
}

// drop removes every queued move matched by remove and returns the removed
// moves in queue order.
func (a *animator) drop(remove func(queuedMove) bool) []queuedMove {
	var dropped []queuedMove
	kept := a.queue[:0]
	for _, qm := range a.queue {
		if remove(qm) {
			dropped = append(dropped, qm)
			continue
		}
		kept = append(kept, qm)
	}
	a.queue = kept
	return dropped
}

// nearestQuarter returns 0 or QuarterTurn, whichever is closer to progress.
func nearestQuarter(progress float64) float64 {
	if progress >= QuarterTurn/2 {
		return QuarterTurn
	}
	return 0
}
