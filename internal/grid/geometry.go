package grid

// Bounds describes a subgrid as half-open row/column ranges:
// rows [RowStart, RowEnd), columns [ColStart, ColEnd).
type Bounds struct {
	RowStart, ColStart int
	RowEnd, ColEnd     int
}

// SubgridBounds returns the bounds of the 3×3 subgrid containing the cell.
func SubgridBounds(c Cell) Bounds {
	rowStart := (c.Row / BoxSize) * BoxSize
	colStart := (c.Col / BoxSize) * BoxSize
	return Bounds{
		RowStart: rowStart,
		ColStart: colStart,
		RowEnd:   rowStart + BoxSize,
		ColEnd:   colStart + BoxSize,
	}
}

// Row returns the 9 values of the given row, left to right.
// Zeros and duplicates are included as-is.
func (g *Grid) Row(row int) [Size]int {
	var values [Size]int
	for col := 0; col < Size; col++ {
		values[col] = g.cells[MakePos(row, col)]
	}
	return values
}

// Column returns the 9 values of the given column, top to bottom.
func (g *Grid) Column(col int) [Size]int {
	var values [Size]int
	for row := 0; row < Size; row++ {
		values[row] = g.cells[MakePos(row, col)]
	}
	return values
}

// Subgrid returns the 9 values inside the given bounds, scanning row-major.
func (g *Grid) Subgrid(b Bounds) [Size]int {
	var values [Size]int
	i := 0
	for row := b.RowStart; row < b.RowEnd; row++ {
		for col := b.ColStart; col < b.ColEnd; col++ {
			values[i] = g.cells[MakePos(row, col)]
			i++
		}
	}
	return values
}

// EmptyCells returns the coordinates of every empty cell, scanning row-major
// (row outer, column inner). The backtracking search depends on this order
// being stable.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g.cells[MakePos(row, col)] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
