package parse

import "fmt"

// Grid is a rectangular grid of cells decoded from line-oriented input.
// (0, 0) is the top-left corner; x grows rightwards, y downwards.
type Grid struct {
	Width  int
	Height int

	rows []string
}

// NewGrid decodes a line-per-row grid. Rows of unequal length are an error,
// never padded or truncated.
func NewGrid(input string) (*Grid, error) {
	rows := Lines(input)
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged grid: row %d has %d cells, want %d", i+1, len(row), width)
		}
	}
	return &Grid{Width: width, Height: len(rows), rows: rows}, nil
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). The position must be in bounds.
func (g *Grid) At(x, y int) byte {
	return g.rows[y][x]
}

// Row returns the y-th row as raw text.
func (g *Grid) Row(y int) string {
	return g.rows[y]
}
