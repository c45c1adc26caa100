package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakub-m/sudoku-generator/internal/board"
)

func TestParseStripsBlankLines(t *testing.T) {
	g, err := Parse("\n\n  AB  \n  AB\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 2, g.Width)
}

func TestParseRejectsInconsistentRowWidth(t *testing.T) {
	_, err := Parse("ABC\nAB")
	assert.ErrorIs(t, err, ErrInconsistentRowWidth)
}

func TestParseRejectsReservedGlyph(t *testing.T) {
	_, err := Parse("A-\nAB")
	assert.ErrorIs(t, err, ErrReservedGlyph)
}

func TestParseRejectsEmptyTemplate(t *testing.T) {
	_, err := Parse("\n  \n")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
}

// A 2x2 grid of two one-column groups compiles to 4 segments: the two glyph
// groups coincide with the column segments and collapse into them.
func TestCompileTwoByTwo(t *testing.T) {
	b, err := Compile("AB\nAB", []rune("12"))
	require.NoError(t, err)

	assert.Equal(t, 4, b.InPlayCount())
	require.Len(t, b.Segments(), 4)
	for _, seg := range b.Segments() {
		assert.Equal(t, 2, seg.Len())
	}
}

func TestCompileStandard9x9(t *testing.T) {
	b, err := Compile(Standard9x9, []rune(Standard9x9Symbols))
	require.NoError(t, err)

	assert.Equal(t, 81, b.InPlayCount())
	require.Len(t, b.Segments(), 27, "9 rows + 9 columns + 9 boxes")
	for _, seg := range b.Segments() {
		assert.Equal(t, 9, seg.Len())
	}
}

// The not-in-play glyph breaks rows and columns into separate runs, allowing
// L-shaped boards.
func TestCompileDisjointRuns(t *testing.T) {
	b, err := Compile("ab.\nab.\n...", []rune("12"))
	require.NoError(t, err)

	assert.Equal(t, 4, b.InPlayCount())
	assert.Equal(t, board.Cell{Kind: board.CellOutOfBoard}, b.At(2, 2))
}

func TestCompileRejectsTooLongSegment(t *testing.T) {
	_, err := Compile("AAA\nBBB\nCCC", []rune("12"))
	assert.ErrorIs(t, err, board.ErrSegmentTooLong)
}

func TestValidateCoverageMismatch(t *testing.T) {
	segA, err := board.NewSegment([]board.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	segB, err := board.NewSegment([]board.Coordinate{{Row: 0, Col: 0}})
	require.NoError(t, err)

	err = validateCoverage([]board.Segment{segA}, []board.Segment{segB})
	assert.ErrorIs(t, err, ErrCoverageMismatch)

	err = validateCoverage([]board.Segment{segA}, []board.Segment{segA})
	assert.NoError(t, err)
}

func TestGlyphOutsideGridIsNotInPlay(t *testing.T) {
	g, err := Parse("AB\nAB")
	require.NoError(t, err)
	assert.Equal(t, rune(board.DefaultNotInPlayGlyph), g.Glyph(board.Coordinate{Row: -1, Col: 0}))
	assert.Equal(t, 'A', g.Glyph(board.Coordinate{Row: 0, Col: 0}))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "# a comment\n# n_symbols 4\naaBB\naaBB\nCCdd\nCCdd\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, symbols, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []rune("0123"), symbols)

	b, err := Compile(text, symbols)
	require.NoError(t, err)
	assert.Equal(t, 16, b.InPlayCount())
}

func TestLoadFileRejectsBadDirective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("# n_symbols nope\nAB\nAB\n"), 0o644))

	_, _, err := LoadFile(path)
	assert.Error(t, err)
}
