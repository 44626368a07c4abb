package cubesim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine is one animated cube session. It owns the cubies, the pivot, the
// move queue and the history of moves since the cube was last solved.
//
// The engine is frame driven: nothing moves until the host calls Tick (or
// Run). Scramble, Solve and Turn only enqueue work and return a Batch that
// completes once the queue drains.
//
// Callers must not overlap Scramble and Solve; the engine does not stop
// them from interleaving.
type Engine struct {
	mu sync.Mutex

	cfg       *config
	registry  *Registry
	pivot     *Pivot
	anim      *animator
	scrambler *Scrambler
	log       logrus.FieldLogger
	metrics   *Metrics

	history []queuedMove
	batches []*Batch
	seq     uint64

	onMoveComplete func(remaining int)
}

// New creates an engine holding a solved cube.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	registry := NewRegistry()
	pivot := newPivot()
	e := &Engine{
		cfg:       cfg,
		registry:  registry,
		pivot:     pivot,
		anim:      newAnimator(registry, pivot, cfg.normalSpeed, cfg.fastSpeed),
		scrambler: cfg.scrambler,
		log:       cfg.logger,
		metrics:   cfg.metrics,
	}
	if e.scrambler == nil {
		e.scrambler = NewRandomScrambler()
	}
	return e
}

// OnMoveComplete registers cb to run after every completed move with the
// number of moves left to reach solved: history length plus queue length.
// cb runs on the ticking goroutine without the engine lock held.
func (e *Engine) OnMoveComplete(cb func(remaining int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onMoveComplete = cb
}

// Scramble enqueues n random moves at fast speed and records them in the
// history. A non-positive n uses the configured scramble length. Each move
// avoids undoing the most recent history move when it can.
//
// The batch honours ctx between moves: once ctx ends, the move in flight
// finishes, the rest of the scramble is dropped and removed from history.
func (e *Engine) Scramble(ctx context.Context, n int) *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n <= 0 {
		n = e.cfg.scrambleLength
	}

	b := newBatch(ctx, BatchScramble)
	for i := 0; i < n; i++ {
		var prev Move
		hasPrev := len(e.history) > 0
		if hasPrev {
			prev = e.history[len(e.history)-1].move
		}
		qm := e.push(e.scrambler.Next(prev, hasPrev), b)
		e.history = append(e.history, qm)
	}
	e.anim.speed = SpeedFast
	e.track(b)

	e.log.WithFields(logrus.Fields{
		"moves":    n,
		"sequence": FormatMoves(b.moves),
	}).Info("scramble queued")
	return b
}

// Solve enqueues the inverse of the whole history, newest move first, at
// fast speed. The history is cleared immediately and the inverse moves are
// not recorded. With an empty history the returned batch is already done.
func (e *Engine) Solve(ctx context.Context) *Batch {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := newBatch(ctx, BatchSolve)
	if len(e.history) == 0 {
		b.finish(nil)
		e.log.Debug("solve skipped: history is empty")
		return b
	}

	for i := len(e.history) - 1; i >= 0; i-- {
		e.push(e.history[i].move.Inverse(), b)
	}
	e.history = nil
	e.anim.speed = SpeedFast
	e.track(b)

	e.log.WithField("moves", len(b.moves)).Info("solve queued")
	return b
}

// Turn enqueues interactive moves at the current speed and records them in
// the history.
func (e *Engine) Turn(moves ...Move) (*Batch, error) {
	for _, m := range moves {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidMove, m)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	b := newBatch(context.Background(), BatchTurn)
	if len(moves) == 0 {
		b.finish(nil)
		return b, nil
	}
	for _, m := range moves {
		e.history = append(e.history, e.push(m, b))
	}
	e.track(b)

	e.log.WithField("moves", FormatMoves(moves)).Debug("turn queued")
	return b, nil
}

// Reset clears the queue and the history, returns to idle and zeroes the
// pivot. A move in flight is turned to whichever of 0° and 90° is nearer,
// then detached. Pending batches finish with ErrReset. Cubie positions are not
// restored; build a new Engine for a fresh cube.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.anim.state == StateAnimating {
		e.log.WithField("move", e.anim.current.move.String()).Warn("reset abandoned a move in flight")
	}
	e.anim.abandon()
	e.anim.queue = nil
	e.anim.speed = SpeedNormal
	e.history = nil

	for _, b := range e.batches {
		b.finish(ErrReset)
		e.metrics.batchFinished(b.kind, outcomeReset)
	}
	e.batches = nil
	e.metrics.observe(0, 0)
	e.log.Info("engine reset")
}

// Tick advances the engine by one frame that lasted dt.
func (e *Engine) Tick(dt time.Duration) error {
	e.mu.Lock()

	if e.anim.state == StateIdle {
		e.honourCancellations()
	}

	done, err := e.anim.step(dt)
	if err != nil {
		e.log.WithError(err).Error("tick failed")
	}

	var cb func(int)
	var remaining int
	if done != nil {
		remaining = len(e.history) + len(e.anim.queue)
		cb = e.onMoveComplete
		e.metrics.moveCompleted(done.move)
		e.metrics.observe(len(e.anim.queue), len(e.history))
		e.log.WithFields(logrus.Fields{
			"move":      done.move.String(),
			"remaining": remaining,
		}).Debug("move completed")
	}

	if e.anim.state == StateIdle && len(e.anim.queue) == 0 {
		e.drained()
	}
	e.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
	return err
}

// Run ticks the engine every frame until ctx ends or a tick fails.
func (e *Engine) Run(ctx context.Context, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := e.Tick(dt); err != nil {
				return err
			}
		}
	}
}

// HistoryLength returns how many moves separate the cube from solved.
func (e *Engine) HistoryLength() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history)
}

// History returns the recorded moves, oldest first.
func (e *Engine) History() []Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return movesOf(e.history)
}

// QueueLength returns how many moves are waiting to be animated.
func (e *Engine) QueueLength() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.anim.queue)
}

// State returns the animator state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.anim.state
}

// Current returns the move in flight, if any.
func (e *Engine) Current() (Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.anim.state != StateAnimating {
		return Move{}, false
	}
	return e.anim.current.move, true
}

// Progress returns how many degrees the move in flight has turned.
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.anim.progress
}

// Speed returns the current animation speed mode.
func (e *Engine) Speed() Speed {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.anim.speed
}

// Cubies returns a snapshot of every cubie in world space.
func (e *Engine) Cubies() []CubieState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Snapshot()
}

// Layer returns snapshots of the cubies currently in the given slice.
func (e *Engine) Layer(axis Axis, layer int) []CubieState {
	e.mu.Lock()
	defer e.mu.Unlock()
	cubies := e.registry.InLayer(axis, layer)
	out := make([]CubieState, len(cubies))
	for i, c := range cubies {
		out[i] = c.State()
	}
	return out
}

// Facelets returns the sticker net of the cube as it currently looks.
func (e *Engine) Facelets() *Facelets {
	e.mu.Lock()
	defer e.mu.Unlock()
	return FaceletsOf(e.registry.Snapshot())
}

// IsSolved reports whether every cubie is home with its original
// orientation and nothing is animating.
func (e *Engine) IsSolved() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.anim.state == StateIdle && e.registry.AtHome()
}

// push appends m to the queue on behalf of b. Callers hold the lock.
func (e *Engine) push(m Move, b *Batch) queuedMove {
	e.seq++
	qm := queuedMove{move: m, batch: b, seq: e.seq}
	e.anim.enqueue(qm)
	b.moves = append(b.moves, m)
	return qm
}

// track registers b to be finished by a later tick.
func (e *Engine) track(b *Batch) {
	e.batches = append(e.batches, b)
	e.metrics.observe(len(e.anim.queue), len(e.history))
}

// drained restores normal speed and finishes every pending batch once the
// queue is empty and no move is in flight.
func (e *Engine) drained() {
	if len(e.batches) == 0 {
		e.anim.speed = SpeedNormal
		return
	}
	for _, b := range e.batches {
		b.finish(nil)
		e.metrics.batchFinished(b.kind, outcomeCompleted)
	}
	e.batches = nil
	e.anim.speed = SpeedNormal
	e.log.Debug("queue drained")
}

// honourCancellations drops the queued moves of every cancelled batch and
// repairs the history so it lists only applied moves. Only called while
// idle, so the move in flight always completes first.
func (e *Engine) honourCancellations() {
	live := e.batches[:0]
	for _, b := range e.batches {
		err := b.ctx.Err()
		if err == nil {
			live = append(live, b)
			continue
		}

		dropped := e.anim.drop(func(qm queuedMove) bool { return qm.batch == b })
		if b.kind == BatchSolve {
			// The undone prefix of the history comes back, oldest first.
			for i := len(dropped) - 1; i >= 0; i-- {
				e.seq++
				e.history = append(e.history, queuedMove{move: dropped[i].move.Inverse(), seq: e.seq})
			}
		} else {
			e.history = withoutSeqs(e.history, dropped)
		}

		b.finish(err)
		e.metrics.batchFinished(b.kind, outcomeCancelled)
		e.log.WithFields(logrus.Fields{
			"kind":    b.kind.String(),
			"dropped": len(dropped),
		}).Info("batch cancelled")
	}
	e.batches = live
	e.metrics.observe(len(e.anim.queue), len(e.history))
}

// withoutSeqs removes from history the entries enqueued as dropped.
func withoutSeqs(history, dropped []queuedMove) []queuedMove {
	if len(dropped) == 0 {
		return history
	}
	gone := make(map[uint64]bool, len(dropped))
	for _, qm := range dropped {
		gone[qm.seq] = true
	}
	kept := history[:0]
	for _, qm := range history {
		if !gone[qm.seq] {
			kept = append(kept, qm)
		}
	}
	return kept
}

func movesOf(qms []queuedMove) []Move {
	out := make([]Move, len(qms))
	for i, qm := range qms {
		out[i] = qm.move
	}
	return out
}
