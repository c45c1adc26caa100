// Package template compiles textual board templates into empty Boards.
//
// A template is a rectangular block of glyphs. The not-in-play glyph marks
// coordinates outside the board, which lets templates describe L-shaped or
// disjoint boards. Every other glyph is a region marker: all coordinates
// sharing a glyph form one group segment, so 3x3 boxes and irregular jigsaw
// regions are expressed the same way. Row and column segments are the maximal
// runs of in-play glyphs within each line, broken at the not-in-play glyph.
package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jakub-m/sudoku-generator/internal/board"
)

var (
	ErrEmptyTemplate        = errors.New("template has no rows")
	ErrInconsistentRowWidth = errors.New("template rows have different lengths")
	ErrReservedGlyph        = errors.New("template uses the reserved unknown glyph")
	ErrCoverageMismatch     = errors.New("segment schemes cover different coordinates")
)

// Grid is the parsed form of a template: dimensions plus the glyph found at
// every coordinate of the bounding box.
type Grid struct {
	Height, Width int

	glyphs             map[board.Coordinate]rune
	notInPlay, unknown rune
}

// Parse parses a template with the default reserved glyphs.
func Parse(text string) (*Grid, error) {
	return ParseGlyphs(text, board.DefaultNotInPlayGlyph, board.DefaultUnknownGlyph)
}

// ParseGlyphs parses a template using the given reserved glyphs. Surrounding
// and interleaved blank lines are stripped. Returns ErrInconsistentRowWidth
// if the remaining rows differ in length and ErrReservedGlyph if the unknown
// glyph appears in the template.
func ParseGlyphs(text string, notInPlay, unknown rune) (*Grid, error) {
	var lines [][]rune
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if len(lines) == 0 {
		return nil, ErrEmptyTemplate
	}

	width := len(lines[0])
	g := &Grid{
		Height:    len(lines),
		Width:     width,
		glyphs:    make(map[board.Coordinate]rune, len(lines)*width),
		notInPlay: notInPlay,
		unknown:   unknown,
	}
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, expected %d (did you forget the %q glyph?)",
				ErrInconsistentRowWidth, row, len(line), width, notInPlay)
		}
		for col, glyph := range line {
			if glyph == unknown {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrReservedGlyph, unknown, row, col)
			}
			g.glyphs[board.Coordinate{Row: row, Col: col}] = glyph
		}
	}
	return g, nil
}

// Glyph returns the template glyph at the coordinate. Coordinates outside the
// bounding box report the not-in-play glyph, which keeps renderer border
// checks uniform at the grid edge.
func (g *Grid) Glyph(c board.Coordinate) rune {
	if glyph, ok := g.glyphs[c]; ok {
		return glyph
	}
	return g.notInPlay
}

// InPlay reports whether the coordinate is part of the board.
func (g *Grid) InPlay(c board.Coordinate) bool {
	glyph, ok := g.glyphs[c]
	return ok && glyph != g.notInPlay
}

// Compile derives the board from the grid: row, column, and glyph-group
// segments, cross-validated for coverage, with identical segments collapsed.
// The symbol alphabet must be at least as large as the longest segment.
func (g *Grid) Compile(symbols []rune) (*board.Board, error) {
	rows, err := g.rowSegments()
	if err != nil {
		return nil, err
	}
	cols, err := g.colSegments()
	if err != nil {
		return nil, err
	}
	groups, err := g.groupSegments()
	if err != nil {
		return nil, err
	}
	if err := validateCoverage(rows, cols); err != nil {
		return nil, fmt.Errorf("rows vs columns: %w", err)
	}
	if err := validateCoverage(rows, groups); err != nil {
		return nil, fmt.Errorf("rows vs groups: %w", err)
	}
	if err := validateCoverage(cols, groups); err != nil {
		return nil, fmt.Errorf("columns vs groups: %w", err)
	}

	all := dedupeSegments(append(append(append([]board.Segment{}, rows...), cols...), groups...))
	return board.New(board.Config{
		Height:         g.Height,
		Width:          g.Width,
		Segments:       all,
		Symbols:        symbols,
		NotInPlayGlyph: g.notInPlay,
		UnknownGlyph:   g.unknown,
	})
}

// Compile is a convenience wrapper: parse with default glyphs, then compile.
func Compile(text string, symbols []rune) (*board.Board, error) {
	g, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return g.Compile(symbols)
}

// rowSegments yields one segment per maximal run of in-play glyphs in a row.
func (g *Grid) rowSegments() ([]board.Segment, error) {
	var segments []board.Segment
	for row := 0; row < g.Height; row++ {
		var run []board.Coordinate
		for col := 0; col <= g.Width; col++ {
			c := board.Coordinate{Row: row, Col: col}
			if col < g.Width && g.InPlay(c) {
				run = append(run, c)
				continue
			}
			if len(run) > 0 {
				seg, err := board.NewSegment(run)
				if err != nil {
					return nil, err
				}
				segments = append(segments, seg)
				run = nil
			}
		}
	}
	return segments, nil
}

// colSegments is the column-wise counterpart of rowSegments.
func (g *Grid) colSegments() ([]board.Segment, error) {
	var segments []board.Segment
	for col := 0; col < g.Width; col++ {
		var run []board.Coordinate
		for row := 0; row <= g.Height; row++ {
			c := board.Coordinate{Row: row, Col: col}
			if row < g.Height && g.InPlay(c) {
				run = append(run, c)
				continue
			}
			if len(run) > 0 {
				seg, err := board.NewSegment(run)
				if err != nil {
					return nil, err
				}
				segments = append(segments, seg)
				run = nil
			}
		}
	}
	return segments, nil
}

// groupSegments yields one segment per distinct in-play glyph value.
func (g *Grid) groupSegments() ([]board.Segment, error) {
	byGlyph := make(map[rune][]board.Coordinate)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := board.Coordinate{Row: row, Col: col}
			if g.InPlay(c) {
				byGlyph[g.glyphs[c]] = append(byGlyph[g.glyphs[c]], c)
			}
		}
	}
	glyphs := make([]rune, 0, len(byGlyph))
	for glyph := range byGlyph {
		glyphs = append(glyphs, glyph)
	}
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i] < glyphs[j] })

	segments := make([]board.Segment, 0, len(glyphs))
	for _, glyph := range glyphs {
		seg, err := board.NewSegment(byGlyph[glyph])
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// validateCoverage fails unless both segment schemes cover exactly the same
// coordinate set.
func validateCoverage(a, b []board.Segment) error {
	setA := coordSet(a)
	setB := coordSet(b)
	var odd []board.Coordinate
	for c := range setA {
		if _, ok := setB[c]; !ok {
			odd = append(odd, c)
		}
	}
	for c := range setB {
		if _, ok := setA[c]; !ok {
			odd = append(odd, c)
		}
	}
	if len(odd) > 0 {
		sort.Slice(odd, func(i, j int) bool { return odd[i].Less(odd[j]) })
		return fmt.Errorf("%w: %v", ErrCoverageMismatch, odd)
	}
	return nil
}

func coordSet(segments []board.Segment) map[board.Coordinate]struct{} {
	set := make(map[board.Coordinate]struct{})
	for _, seg := range segments {
		for _, c := range seg.Coords() {
			set[c] = struct{}{}
		}
	}
	return set
}

// dedupeSegments collapses segments with identical coordinate sets. A group
// glyph occupying exactly one row or column derives the same segment twice.
func dedupeSegments(segments []board.Segment) []board.Segment {
	seen := make(map[string]struct{}, len(segments))
	out := make([]board.Segment, 0, len(segments))
	for _, seg := range segments {
		coords := make([]board.Coordinate, len(seg.Coords()))
		copy(coords, seg.Coords())
		sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
		key := fmt.Sprint(coords)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, seg)
	}
	return out
}
