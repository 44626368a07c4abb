package cubesim

import "math/rand/v2"

// MaxScrambleAttempts is how many random candidates the scrambler draws
// before giving up and using FallbackMove.
const MaxScrambleAttempts = 5

// Scrambler generates random moves that never directly undo the move
// before them, within a bounded number of attempts.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler returns a scrambler seeded with seed. The same seed always
// produces the same sequence.
func NewScrambler(seed uint64) *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomScrambler returns a scrambler seeded from the runtime source.
func NewRandomScrambler() *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Random returns a uniformly random quarter turn.
func (s *Scrambler) Random() Move {
	m := Move{
		Axis:  Axes[s.rng.IntN(3)],
		Layer: Layers[s.rng.IntN(3)],
		Dir:   CW,
	}
	if s.rng.IntN(2) == 1 {
		m.Dir = CCW
	}
	return m
}

// Next returns a random move that is not the inverse of prev. When hasPrev
// is false any move is accepted. If every attempt collides, FallbackMove is
// returned.
func (s *Scrambler) Next(prev Move, hasPrev bool) Move {
	for i := 0; i < MaxScrambleAttempts; i++ {
		m := s.Random()
		if !hasPrev || !m.IsInverseOf(prev) {
			return m
		}
	}
	return FallbackMove
}

// Sequence returns n moves, each checked against the one before it.
func (s *Scrambler) Sequence(n int) []Move {
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		var prev Move
		if i > 0 {
			prev = moves[i-1]
		}
		moves = append(moves, s.Next(prev, i > 0))
	}
	return moves
}
