package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakub-m/sudoku-generator/internal/solver"
	"github.com/jakub-m/sudoku-generator/internal/template"
)

func TestLettersMapper(t *testing.T) {
	mapper := Letters([]rune("123"))
	assert.Equal(t, "A", mapper('1'))
	assert.Equal(t, "C", mapper('3'))
	assert.Equal(t, "x", mapper('x'), "unknown symbols pass through")
}

func TestHTMLRendersRegionBorders(t *testing.T) {
	grid, err := template.Parse(template.Small4x4)
	require.NoError(t, err)
	empty, err := grid.Compile([]rune(template.Small4x4Symbols))
	require.NoError(t, err)
	solved, ok := solver.NewSearch(empty, rand.New(rand.NewSource(4))).Next()
	require.True(t, ok)

	var sb strings.Builder
	err = HTML(&sb, grid, []Page{{Puzzle: empty, Solution: solved}}, nil)
	require.NoError(t, err)
	out := sb.String()

	assert.Contains(t, out, "<table class=\"grid\">")
	assert.Contains(t, out, "Puzzle #1")
	assert.Contains(t, out, "Solution")
	// The 2x2 box boundary runs between columns 1 and 2.
	assert.Contains(t, out, "br")
	assert.Contains(t, out, "bb")
}

func TestHTMLMarksOutOfBoardCells(t *testing.T) {
	grid, err := template.Parse("ab.\nab.\n...")
	require.NoError(t, err)
	b, err := grid.Compile([]rune("12"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, HTML(&sb, grid, []Page{{Title: "L-board", Puzzle: b}}, Identity))

	assert.Contains(t, sb.String(), "class=\"out\"")
	assert.Contains(t, sb.String(), "L-board")
}
