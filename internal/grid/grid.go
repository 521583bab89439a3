// Package grid implements the 9×9 Sudoku grid data model together with the
// geometry and constraint-checking primitives the solver and generator are
// built on.
package grid

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	MaxValue    = 9
	Size        = 9
	BoxSize     = 3
	CellCount   = 81
)

// Grid represents a 9x9 Sudoku grid.
// Cells are stored row-major; 0 means empty, 1–9 a placed digit.
type Grid struct {
	cells [CellCount]int
}

// Cell is a grid coordinate with named fields. Row and Col are both 0-based.
// Using named fields everywhere avoids the row/column transposition bugs a
// bare ordered pair invites.
type Cell struct {
	Row, Col int
}

// Pos returns the linear position of the cell.
func (c Cell) Pos() int {
	return MakePos(c.Row, c.Col)
}

// New creates an empty Grid.
func New() *Grid {
	return &Grid{}
}

// FromRows creates a Grid from a 9×9 row-major value matrix.
// Values must be 0 (empty) or 1–9; anything else is rejected.
func FromRows(rows [Size][Size]int) (*Grid, error) {
	g := New()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			val := rows[row][col]
			if !isValidValue(val) {
				return nil, fmt.Errorf("%w: got %d at row %d col %d", ErrInvalidValue, val, row, col)
			}
			g.cells[MakePos(row, col)] = val
		}
	}
	return g, nil
}

// NewFromString creates a Grid from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
func NewFromString(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: string must be exactly %d characters, got %d", ErrInvalidLength, CellCount, len(s))
	}

	g := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			g.cells[pos] = int(ch - '0')
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (g *Grid) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return g.cells[pos]
}

// At returns the value at the given cell coordinate.
func (g *Grid) At(c Cell) int {
	return g.Get(c.Pos())
}

// Set places a value at the given position without rule checks.
// Values are range-validated at construction time; callers mutating a grid
// afterwards (solver, transforms, carver) own the legality of their writes.
// Out-of-range positions are ignored.
func (g *Grid) Set(pos, val int) {
	if !isValidPosition(pos) {
		return
	}
	g.cells[pos] = val
}

// SetAt places a value at the given cell coordinate.
func (g *Grid) SetAt(c Cell, val int) {
	g.Set(c.Pos(), val)
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Grid) EmptyCount() int {
	count := 0
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos] == EmptyCell {
			count++
		}
	}
	return count
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation, one line per row,
// fixed-width columns, empty cells rendered blank.
func (g *Grid) Format() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			val := g.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteString("   .")
			} else {
				fmt.Fprintf(&sb, "%4d", val)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Precomputed lookup tables for row and column mapping.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return InvalidCell
	}
	return Size*row + col
}

func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / Size
		posToCol[pos] = pos % Size
	}
}
