// Package puzzle defines the serialized record of a generated puzzle.
package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jakub-m/sudoku-generator/internal/board"
)

// Puzzle is the persisted form of one generated board: the template it came
// from, the drilled board, and its solution, all in the textual grid format.
type Puzzle struct {
	ID        string  `json:"id"`
	Seed      int64   `json:"seed"`
	Template  string  `json:"template"`
	Height    int     `json:"height"`
	Width     int     `json:"width"`
	Board     string  `json:"board"`
	Solution  string  `json:"solution"`
	FillRatio float64 `json:"fillRatio"`
	CreatedAt int64   `json:"createdAt"`
}

// New builds a record for a drilled board and its solution.
func New(templateText string, drilled, solution *board.Board, seed int64) *Puzzle {
	return &Puzzle{
		ID:        uuid.NewString(),
		Seed:      seed,
		Template:  templateText,
		Height:    drilled.Height(),
		Width:     drilled.Width(),
		Board:     drilled.String(),
		Solution:  solution.String(),
		FillRatio: drilled.FillRatio(),
		CreatedAt: time.Now().UnixNano(),
	}
}

// Save writes the puzzles as a JSON array.
func Save(path string, puzzles []*Puzzle) error {
	data, err := json.MarshalIndent(puzzles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal puzzles: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a JSON array of puzzles written by Save.
func Load(path string) ([]*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var puzzles []*Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, fmt.Errorf("unmarshal puzzles: %w", err)
	}
	return puzzles, nil
}
