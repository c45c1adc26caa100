package puzzle

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakub-m/sudoku-generator/internal/solver"
	"github.com/jakub-m/sudoku-generator/internal/template"
)

func TestNewAndSaveLoad(t *testing.T) {
	empty, err := template.Compile(template.Small4x4, []rune(template.Small4x4Symbols))
	require.NoError(t, err)
	solved, ok := solver.NewSearch(empty, rand.New(rand.NewSource(2))).Next()
	require.True(t, ok)

	p := New(template.Small4x4, solved, solved, 2)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 4, p.Height)
	assert.Equal(t, 4, p.Width)
	assert.Equal(t, solved.String(), p.Board)
	assert.InDelta(t, 1.0, p.FillRatio, 1e-9)

	path := filepath.Join(t.TempDir(), "puzzles.json")
	require.NoError(t, Save(path, []*Puzzle{p}))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, p.ID, loaded[0].ID)
	assert.Equal(t, p.Board, loaded[0].Board)
}
