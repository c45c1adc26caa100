// Package solver enumerates complete, valid fillings of a board by plain
// depth-first backtracking. There is no constraint propagation: a candidate
// board is pruned only when some segment already repeats a symbol.
package solver

import (
	"math/rand"

	"github.com/jakub-m/sudoku-generator/internal/board"
)

// Search is a resumable cursor over the solutions of a board. Each Next call
// resumes the depth-first search from the saved backlog, so a caller can take
// one or two solutions and abandon the rest without cost. A Search is finite
// and non-restartable; it is not safe for concurrent use.
type Search struct {
	backlog []*board.Board
	rng     *rand.Rand
}

// NewSearch starts a search over all complete boards reachable from b by
// filling its unknown fields. Existing fills are never changed or removed.
// Children are expanded in rng-shuffled symbol order, so distinct seeds walk
// distinct solution orders while a fixed seed reproduces the same sequence.
func NewSearch(b *board.Board, rng *rand.Rand) *Search {
	return &Search{
		backlog: []*board.Board{b},
		rng:     rng,
	}
}

// Next returns the next solution, or ok=false when the search space is
// exhausted. Every returned board is full and valid.
func (s *Search) Next() (*board.Board, bool) {
	for len(s.backlog) > 0 {
		b := s.backlog[len(s.backlog)-1]
		s.backlog = s.backlog[:len(s.backlog)-1]

		if !b.IsValid() {
			continue
		}
		if b.IsFull() {
			return b, true
		}

		coord, ok := b.NextUnfilled()
		if !ok {
			continue
		}
		for _, symbol := range s.shuffledSymbols(b) {
			child, err := b.Fill(coord, symbol)
			if err != nil {
				// Fill of a known-unfilled coordinate with an alphabet
				// symbol cannot fail.
				panic(err)
			}
			s.backlog = append(s.backlog, child)
		}
	}
	return nil, false
}

func (s *Search) shuffledSymbols(b *board.Board) []rune {
	symbols := make([]rune, len(b.Symbols()))
	copy(symbols, b.Symbols())
	s.rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	return symbols
}

// HasUniqueSolution reports whether b has exactly one solution. It consumes
// at most two solutions from a fresh search, so it stays cheap even on
// boards with astronomically many completions.
func HasUniqueSolution(b *board.Board, rng *rand.Rand) bool {
	search := NewSearch(b, rng)
	if _, ok := search.Next(); !ok {
		return false
	}
	_, more := search.Next()
	return !more
}
