package cubesim

import "context"

// BatchKind says which operation created a batch.
type BatchKind int

const (
	BatchTurn     BatchKind = iota // Interactive moves, recorded in history
	BatchScramble                  // Random moves, recorded in history
	BatchSolve                     // Inverse replay, not recorded
)

func (k BatchKind) String() string {
	switch k {
	case BatchTurn:
		return "turn"
	case BatchScramble:
		return "scramble"
	case BatchSolve:
		return "solve"
	default:
		return "unknown"
	}
}

// Batch tracks a group of moves enqueued by one call to Scramble, Solve or
// Turn. Done is closed by the engine's tick once the queue has drained and
// no move is in flight, or once the batch is cancelled or reset.
type Batch struct {
	kind  BatchKind
	ctx   context.Context
	moves []Move
	done  chan struct{}

	// Written once before done is closed.
	err    error
	closed bool
}

func newBatch(ctx context.Context, kind BatchKind) *Batch {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Batch{
		kind: kind,
		ctx:  ctx,
		done: make(chan struct{}),
	}
}

// Kind returns the operation that created the batch.
func (b *Batch) Kind() BatchKind { return b.kind }

// Moves returns the moves the batch enqueued, in order.
func (b *Batch) Moves() []Move {
	out := make([]Move, len(b.moves))
	copy(out, b.moves)
	return out
}

// Done returns a channel closed when the batch finishes.
func (b *Batch) Done() <-chan struct{} { return b.done }

// Err returns why the batch finished early: the context error if it was
// cancelled, ErrReset if the engine was reset, nil if it played out.
// It is only meaningful after Done is closed.
func (b *Batch) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Wait blocks until the batch finishes or ctx ends. Something must keep
// ticking the engine meanwhile.
func (b *Batch) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish closes the batch. Callers hold the engine lock.
func (b *Batch) finish(err error) {
	if b.closed {
		return
	}
	b.closed = true
	b.err = err
	close(b.done)
}
