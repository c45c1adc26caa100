// Package render converts boards into printable output. The HTML renderer
// draws thick borders wherever two neighboring cells belong to different
// template regions, so irregular jigsaw regions stay visible on paper.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakub-m/sudoku-generator/internal/board"
	"github.com/jakub-m/sudoku-generator/internal/template"
)

// SymbolMapper maps a board symbol to its printable form.
type SymbolMapper func(rune) string

// Identity prints symbols as they are.
func Identity(symbol rune) string {
	return string(symbol)
}

// Letters maps the i-th symbol of the alphabet to the i-th capital letter,
// so boards built on digit alphabets can be printed as letter puzzles.
func Letters(symbols []rune) SymbolMapper {
	const letters = "ABCDEFGHIJKLMNOPQRSTUV"
	index := make(map[rune]int, len(symbols))
	for i, sym := range symbols {
		index[sym] = i
	}
	return func(symbol rune) string {
		i, ok := index[symbol]
		if !ok || i >= len(letters) {
			return string(symbol)
		}
		return string(letters[i])
	}
}

// Page is one printable page: a puzzle and optionally its solution.
type Page struct {
	Title    string
	Puzzle   *board.Board
	Solution *board.Board
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Helvetica, Arial, sans-serif;
            -webkit-print-color-adjust: exact;
        }
        .page {
            page-break-after: always;
        }
        .page:last-child {
            page-break-after: auto;
        }
        h2 {
            color: #666;
        }
        .grid {
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .grid td {
            width: 46px;
            height: 46px;
            text-align: center;
            vertical-align: middle;
            font-size: 24px;
            border: 1px dotted #bbb;
            padding: 0;
        }
        .grid td.out {
            border: none;
        }
        .grid td.bt { border-top: 3px solid black; }
        .grid td.br { border-right: 3px solid black; }
        .grid td.bb { border-bottom: 3px solid black; }
        .grid td.bl { border-left: 3px solid black; }
    </style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML writes the pages as a printable document. The grid must be the
// template the boards were compiled from; it supplies the region borders.
func HTML(w io.Writer, grid *template.Grid, pages []Page, mapper SymbolMapper) error {
	if mapper == nil {
		mapper = Identity
	}
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = fmt.Sprintf("Puzzle #%d", i+1)
		}
		fmt.Fprintf(w, "    <div class=\"page\">\n        <h2>%s</h2>\n", title)
		if _, err := io.WriteString(w, boardTable(grid, page.Puzzle, mapper)); err != nil {
			return err
		}
		if page.Solution != nil {
			if _, err := io.WriteString(w, "        <h2>Solution</h2>\n"); err != nil {
				return err
			}
			if _, err := io.WriteString(w, boardTable(grid, page.Solution, mapper)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "    </div>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

// boardTable renders one board as an HTML table with region borders.
func boardTable(grid *template.Grid, b *board.Board, mapper SymbolMapper) string {
	var sb strings.Builder
	sb.WriteString("        <table class=\"grid\">\n")
	for row := 0; row < b.Height(); row++ {
		sb.WriteString("            <tr>")
		for col := 0; col < b.Width(); col++ {
			sb.WriteString(cellTag(grid, b, row, col, mapper))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("        </table>\n")
	return sb.String()
}

func cellTag(grid *template.Grid, b *board.Board, row, col int, mapper SymbolMapper) string {
	cell := b.At(row, col)
	if cell.Kind == board.CellOutOfBoard {
		return "<td class=\"out\"></td>"
	}

	classes := regionBorders(grid, row, col)
	content := ""
	if cell.Kind == board.CellFilled {
		content = mapper(cell.Symbol)
	}
	if len(classes) == 0 {
		return fmt.Sprintf("<td>%s</td>", content)
	}
	return fmt.Sprintf("<td class=\"%s\">%s</td>", strings.Join(classes, " "), content)
}

// regionBorders returns the border classes for an in-play cell: a thick
// border on every side where the neighboring glyph differs, including the
// grid edge.
func regionBorders(grid *template.Grid, row, col int) []string {
	here := grid.Glyph(board.Coordinate{Row: row, Col: col})
	var classes []string
	if grid.Glyph(board.Coordinate{Row: row - 1, Col: col}) != here {
		classes = append(classes, "bt")
	}
	if grid.Glyph(board.Coordinate{Row: row, Col: col + 1}) != here {
		classes = append(classes, "br")
	}
	if grid.Glyph(board.Coordinate{Row: row + 1, Col: col}) != here {
		classes = append(classes, "bb")
	}
	if grid.Glyph(board.Coordinate{Row: row, Col: col - 1}) != here {
		classes = append(classes, "bl")
	}
	return classes
}
