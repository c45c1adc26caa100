// Package driller removes cells from a solved board while the puzzle keeps a
// unique solution, producing the board that is published as the puzzle.
package driller

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/jakub-m/sudoku-generator/internal/board"
	"github.com/jakub-m/sudoku-generator/internal/solver"
)

var (
	ErrInvalidCutoff  = errors.New("cutoff must be in (0.0, 1.0]")
	ErrBoardNotSolved = errors.New("drilling requires a complete board")
)

// Driller searches for a sparse board with a unique solution. The cutoff is
// the fill ratio (filled / in-play cells) at which the search stops; below it
// the puzzle is considered sparse enough.
type Driller struct {
	cutoff float64
	rng    *rand.Rand
	logger *zap.Logger
}

// New creates a Driller. A nil logger disables progress logging.
func New(cutoff float64, rng *rand.Rand, logger *zap.Logger) (*Driller, error) {
	if cutoff <= 0.0 || cutoff > 1.0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driller{
		cutoff: cutoff,
		rng:    rng,
		logger: logger,
	}, nil
}

// Drill searches over boards with cells removed from solved, using the
// solver as a uniqueness oracle. Removing a cell does not monotonically
// preserve uniqueness, so the search explores many removal orders rather
// than committing to one greedy path: a candidate that loses uniqueness is
// discarded, but its siblings are still explored.
//
// Drill returns as soon as a candidate's fill ratio reaches the cutoff.
// If the backlog drains first, it returns the sparsest unique board found,
// which may be the input itself. For large boards with a low cutoff the
// search may run unbounded; interrupting it is the operator's job.
func (d *Driller) Drill(solved *board.Board) (*board.Board, error) {
	if !solved.IsComplete() {
		return nil, fmt.Errorf("%w: %d of %d fields filled, valid=%v",
			ErrBoardNotSolved, solved.FilledCount(), solved.InPlayCount(), solved.IsValid())
	}

	backlog := []*board.Board{solved}
	minBoard := solved
	for len(backlog) > 0 {
		b := backlog[len(backlog)-1]
		backlog = backlog[:len(backlog)-1]

		if !solver.HasUniqueSolution(b, d.rng) {
			// A removal along this path broke uniqueness; drop the subtree.
			continue
		}
		if b.FilledCount() < minBoard.FilledCount() {
			minBoard = b
			d.logger.Info("drilled sparser board",
				zap.Int("backlog", len(backlog)),
				zap.Int("filled", b.FilledCount()),
				zap.Float64("fillRatio", b.FillRatio()))
		}
		if b.FillRatio() <= d.cutoff {
			return b, nil
		}
		for _, coord := range d.shuffledCoords(b.FilledCoordinates()) {
			child, err := b.Remove(coord)
			if err != nil {
				// Removing a coordinate just listed as filled cannot fail.
				panic(err)
			}
			backlog = append(backlog, child)
		}
	}
	return minBoard, nil
}

func (d *Driller) shuffledCoords(coords []board.Coordinate) []board.Coordinate {
	d.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})
	return coords
}
