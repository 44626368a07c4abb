// Package analysis computes statistics over move sequences.
package analysis

import (
	"slices"
	"sort"

	"github.com/SeamusWaldron/cubesim"
)

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// Notation returns the n-gram as space separated notation.
func (g NGram) Notation() string {
	moves := make([]cubesim.Move, len(g.Tokens))
	for i, t := range g.Tokens {
		moves[i] = cubesim.MoveFromToken(t)
	}
	return cubesim.FormatMoves(moves)
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	Source     string `json:"source,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, evicting the oldest once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	return slices.Clone(rh.window)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in
// [minN, maxN]. Only sequences seen at least twice are reported.
func MineNGrams(moves []cubesim.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 || len(moves) < minN {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = m.Token()
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineNGramsForN(tokens []uint8, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start}
		window := tokens[start : i+1]

		// Buckets hold every distinct window sharing a hash.
		bucket := counts[rh.Hash()]
		var entry *ngramEntry
		for _, e := range bucket {
			if slices.Equal(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			counts[rh.Hash()] = append(bucket, &ngramEntry{
				tokens:      rh.Window(),
				count:       1,
				occurrences: []NGramOccurrence{occ},
			})
			continue
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, e := range bucket {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}
	return topNGrams(n, entries, topK)
}

// topNGrams sorts entries by count, then by tokens for a stable order, and
// keeps the first topK.
func topNGrams(n int, entries []*ngramEntry, topK int) []NGram {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return slices.Compare(entries[i].tokens, entries[j].tokens) < 0
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		sequence := make([]string, len(e.tokens))
		for j, t := range e.tokens {
			sequence[j] = cubesim.MoveFromToken(t).Notation()
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

// MineNGramsAcrossSources aggregates per-source reports, keyed by a source
// label such as a session id, into one report.
func MineNGramsAcrossSources(reports map[string]*NGramReport, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}

	// Visit sources in a fixed order so sample occurrences are stable.
	sources := make([]string, 0, len(reports))
	for source := range reports {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	byN := make(map[int]map[string]*ngramEntry)
	for _, source := range sources {
		for n, ngrams := range reports[source].TopNGrams {
			aggregated := byN[n]
			if aggregated == nil {
				aggregated = make(map[string]*ngramEntry)
				byN[n] = aggregated
			}
			for _, ng := range ngrams {
				key := string(ng.Tokens)
				e := aggregated[key]
				if e == nil {
					e = &ngramEntry{tokens: ng.Tokens}
					aggregated[key] = e
				}
				e.count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(e.occurrences) < maxOccurrences {
						occ.Source = source
						e.occurrences = append(e.occurrences, occ)
					}
				}
			}
		}
	}

	for n, aggregated := range byN {
		entries := make([]*ngramEntry, 0, len(aggregated))
		for _, e := range aggregated {
			entries = append(entries, e)
		}
		if ngrams := topNGrams(n, entries, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}
