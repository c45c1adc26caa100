// Package board implements the constraint model shared by the solver and the
// driller. A Board is a rectangular extent, a set of Segments, a symbol
// alphabet, and a partial fill. Boards are immutable: Fill and Remove return
// sibling boards that share the structural fields with their parent and copy
// only the fill map. This makes a Board directly usable as a search node.
package board

import (
	"fmt"
	"sort"
	"strings"
)

// Default glyphs used when the caller does not override them.
const (
	DefaultNotInPlayGlyph = '.'
	DefaultUnknownGlyph   = '-'
)

// CellKind classifies what a renderer finds at a coordinate. The kind is
// decided once from the board structure, never by comparing glyph values.
type CellKind int

const (
	// CellOutOfBoard marks coordinates inside the bounding box that belong
	// to no segment.
	CellOutOfBoard CellKind = iota
	// CellUnknown marks in-play coordinates that are not filled yet.
	CellUnknown
	// CellFilled marks in-play coordinates carrying a symbol.
	CellFilled
)

// Cell is the renderer-facing view of one coordinate.
type Cell struct {
	Kind   CellKind
	Symbol rune // valid only when Kind == CellFilled
}

// Config carries everything needed to construct an empty Board.
// NotInPlayGlyph and UnknownGlyph are optional; zero values select the
// package defaults.
type Config struct {
	Height, Width  int
	Segments       []Segment
	Symbols        []rune
	NotInPlayGlyph rune
	UnknownGlyph   rune
}

// Board is the full puzzle state. The structural fields (segments, alphabet,
// in-play coordinate set) are set at construction time and shared by every
// board derived through Fill or Remove; only the fill map differs between
// siblings.
type Board struct {
	height, width int
	segments      []Segment
	alphabet      []rune
	symbols       map[rune]struct{}

	// allCoords is the union of all segment coordinates; sortedCoords holds
	// the same set in row-major order so that iteration is deterministic.
	allCoords    map[Coordinate]struct{}
	sortedCoords []Coordinate

	filled map[Coordinate]rune

	notInPlay, unknown rune
}

// New constructs an empty Board and validates the structural invariants:
// positive dimensions, every segment inside the extent, no segment longer
// than the alphabet, and reserved glyphs disjoint from the alphabet.
func New(cfg Config) (*Board, error) {
	if cfg.Height <= 0 || cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, cfg.Height, cfg.Width)
	}
	notInPlay := cfg.NotInPlayGlyph
	if notInPlay == 0 {
		notInPlay = DefaultNotInPlayGlyph
	}
	unknown := cfg.UnknownGlyph
	if unknown == 0 {
		unknown = DefaultUnknownGlyph
	}

	alphabet := make([]rune, len(cfg.Symbols))
	copy(alphabet, cfg.Symbols)
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	symbols := make(map[rune]struct{}, len(alphabet))
	for _, sym := range alphabet {
		if sym == notInPlay || sym == unknown {
			return nil, fmt.Errorf("%w: %q collides with a reserved glyph", ErrInvalidSymbol, sym)
		}
		symbols[sym] = struct{}{}
	}

	allCoords := make(map[Coordinate]struct{})
	for _, seg := range cfg.Segments {
		if seg.Len() > len(symbols) {
			return nil, fmt.Errorf("%w: segment %v has %d coordinates, alphabet has %d symbols",
				ErrSegmentTooLong, seg, seg.Len(), len(symbols))
		}
		for _, c := range seg.Coords() {
			if c.Row < 0 || c.Row >= cfg.Height || c.Col < 0 || c.Col >= cfg.Width {
				return nil, fmt.Errorf("%w: %v outside %dx%d", ErrCoordinateOutOfBoard, c, cfg.Height, cfg.Width)
			}
			allCoords[c] = struct{}{}
		}
	}

	sortedCoords := make([]Coordinate, 0, len(allCoords))
	for c := range allCoords {
		sortedCoords = append(sortedCoords, c)
	}
	sort.Slice(sortedCoords, func(i, j int) bool { return sortedCoords[i].Less(sortedCoords[j]) })

	segs := make([]Segment, len(cfg.Segments))
	copy(segs, cfg.Segments)

	return &Board{
		height:       cfg.Height,
		width:        cfg.Width,
		segments:     segs,
		alphabet:     alphabet,
		symbols:      symbols,
		allCoords:    allCoords,
		sortedCoords: sortedCoords,
		filled:       make(map[Coordinate]rune),
		notInPlay:    notInPlay,
		unknown:      unknown,
	}, nil
}

// derive makes a sibling board sharing every structural field and owning the
// given fill map.
func (b *Board) derive(filled map[Coordinate]rune) *Board {
	child := *b
	child.filled = filled
	return &child
}

// Height returns the bounding-box height.
func (b *Board) Height() int { return b.height }

// Width returns the bounding-box width.
func (b *Board) Width() int { return b.width }

// Segments returns the board's segments. Callers must not modify the slice.
func (b *Board) Segments() []Segment { return b.segments }

// Symbols returns the alphabet in ascending order.
// Callers must not modify the slice.
func (b *Board) Symbols() []rune { return b.alphabet }

// InPlayCount returns the number of coordinates covered by at least one
// segment.
func (b *Board) InPlayCount() int { return len(b.allCoords) }

// FilledCount returns the number of filled coordinates.
func (b *Board) FilledCount() int { return len(b.filled) }

// FillRatio returns filled coordinates divided by in-play coordinates.
func (b *Board) FillRatio() float64 {
	return float64(len(b.filled)) / float64(len(b.allCoords))
}

// Fill returns a new board with symbol placed at coord. The receiver is not
// modified. Filling an already-filled coordinate, a coordinate outside the
// board, or with a symbol outside the alphabet is a misuse error.
func (b *Board) Fill(coord Coordinate, symbol rune) (*Board, error) {
	if _, ok := b.allCoords[coord]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrCoordinateOutOfBoard, coord)
	}
	if old, ok := b.filled[coord]; ok {
		return nil, fmt.Errorf("%w: %v holds %q", ErrCoordinateAlreadyFilled, coord, old)
	}
	if _, ok := b.symbols[symbol]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	filled := make(map[Coordinate]rune, len(b.filled)+1)
	for c, s := range b.filled {
		filled[c] = s
	}
	filled[coord] = symbol
	return b.derive(filled), nil
}

// Remove returns a new board with the symbol at coord removed. The receiver
// is not modified. Removing from an unfilled coordinate is a misuse error.
func (b *Board) Remove(coord Coordinate) (*Board, error) {
	if _, ok := b.allCoords[coord]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrCoordinateOutOfBoard, coord)
	}
	if _, ok := b.filled[coord]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrCoordinateNotFilled, coord)
	}
	filled := make(map[Coordinate]rune, len(b.filled)-1)
	for c, s := range b.filled {
		if c != coord {
			filled[c] = s
		}
	}
	return b.derive(filled), nil
}

// Symbol returns the symbol at coord and whether the coordinate is filled.
func (b *Board) Symbol(coord Coordinate) (rune, bool) {
	s, ok := b.filled[coord]
	return s, ok
}

// At classifies the coordinate (row, col) for rendering. Any coordinate in
// the bounding box yields a usable Cell, including out-of-play ones.
func (b *Board) At(row, col int) Cell {
	coord := Coordinate{Row: row, Col: col}
	if _, ok := b.allCoords[coord]; !ok {
		return Cell{Kind: CellOutOfBoard}
	}
	if s, ok := b.filled[coord]; ok {
		return Cell{Kind: CellFilled, Symbol: s}
	}
	return Cell{Kind: CellUnknown}
}

// NextUnfilled returns the smallest in-play coordinate (row-major order)
// that is not filled, or false if the board is full.
func (b *Board) NextUnfilled() (Coordinate, bool) {
	for _, c := range b.sortedCoords {
		if _, ok := b.filled[c]; !ok {
			return c, true
		}
	}
	return Coordinate{}, false
}

// FilledCoordinates returns the filled coordinates in row-major order.
func (b *Board) FilledCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(b.filled))
	for _, c := range b.sortedCoords {
		if _, ok := b.filled[c]; ok {
			coords = append(coords, c)
		}
	}
	return coords
}

// Filled returns a copy of the fill map.
func (b *Board) Filled() map[Coordinate]rune {
	m := make(map[Coordinate]rune, len(b.filled))
	for c, s := range b.filled {
		m[c] = s
	}
	return m
}

// IsFull reports whether every in-play coordinate is filled. A full board is
// not necessarily valid.
func (b *Board) IsFull() bool {
	return len(b.filled) == len(b.allCoords)
}

// IsValid reports whether no segment holds the same symbol twice among its
// filled coordinates. Unfilled coordinates are ignored.
func (b *Board) IsValid() bool {
	for _, seg := range b.segments {
		if !b.isSegmentValid(seg) {
			return false
		}
	}
	return true
}

func (b *Board) isSegmentValid(seg Segment) bool {
	seen := make(map[rune]struct{}, seg.Len())
	for _, c := range seg.Coords() {
		sym, ok := b.filled[c]
		if !ok {
			continue
		}
		if _, dup := seen[sym]; dup {
			return false
		}
		seen[sym] = struct{}{}
	}
	return true
}

// IsComplete reports whether the board is full and valid, i.e. solved.
func (b *Board) IsComplete() bool {
	return b.IsFull() && b.IsValid()
}

// String renders the bounding box line by line: the not-in-play glyph for
// coordinates outside the segments, the unknown glyph for unfilled fields,
// and the symbol otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.width; col++ {
			switch cell := b.At(row, col); cell.Kind {
			case CellOutOfBoard:
				sb.WriteRune(b.notInPlay)
			case CellUnknown:
				sb.WriteRune(b.unknown)
			default:
				sb.WriteRune(cell.Symbol)
			}
		}
	}
	return sb.String()
}
