package grid

import "errors"

var (
	ErrInvalidValue  = errors.New("value must be between 0-9")
	ErrInvalidLength = errors.New("grid string has wrong length")
)

// Bitmask of all nine digits: bit i represents digit i+1.
const allNine = 511

// HasDuplicate reports whether two non-zero entries of the sequence share a
// value. Zero is "unknown", never a duplicate.
func HasDuplicate(values [Size]int) bool {
	seen := uint(0)
	for _, val := range values {
		if val == EmptyCell {
			continue
		}
		mask := uint(1 << (val - 1))
		if seen&mask != 0 {
			return true
		}
		seen |= mask
	}
	return false
}

// MissingValues returns the digits 1–9 not present in the sequence,
// ascending. Zeros are ignored.
func MissingValues(values [Size]int) []int {
	return maskToValues(missingMask(values))
}

// IsCellValid reports whether the cell's row, column, and subgrid each hold
// no duplicate non-zero values. Used as a post-hoc legality check after a
// tentative placement; it does not validate the rest of the grid.
func (g *Grid) IsCellValid(c Cell) bool {
	return !HasDuplicate(g.Row(c.Row)) &&
		!HasDuplicate(g.Column(c.Col)) &&
		!HasDuplicate(g.Subgrid(SubgridBounds(c)))
}

// Candidates returns the values that could legally occupy the cell right
// now: the intersection of the digits missing from its row, column, and
// subgrid. Ascending order.
func (g *Grid) Candidates(c Cell) []int {
	mask := missingMask(g.Row(c.Row)) &
		missingMask(g.Column(c.Col)) &
		missingMask(g.Subgrid(SubgridBounds(c)))
	return maskToValues(mask)
}

// IsValid reports whether the grid holds no duplicate non-zero values in any
// row, column, or subgrid. Empty cells are ignored.
func (g *Grid) IsValid() bool {
	var rowCheck, colCheck, boxCheck [Size]uint

	for pos := 0; pos < CellCount; pos++ {
		val := g.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col := posToRow[pos], posToCol[pos]
		box := BoxSize*(row/BoxSize) + col/BoxSize
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// IsSolved reports whether the grid is completely filled and every row,
// column, and subgrid contains each of 1–9 exactly once.
func (g *Grid) IsSolved() bool {
	if len(g.EmptyCells()) > 0 {
		return false
	}

	for row := 0; row < Size; row++ {
		if missingMask(g.Row(row)) != 0 {
			return false
		}
	}
	for col := 0; col < Size; col++ {
		if missingMask(g.Column(col)) != 0 {
			return false
		}
	}
	for boxRow := 0; boxRow < BoxSize; boxRow++ {
		for boxCol := 0; boxCol < BoxSize; boxCol++ {
			b := SubgridBounds(Cell{Row: boxRow * BoxSize, Col: boxCol * BoxSize})
			if missingMask(g.Subgrid(b)) != 0 {
				return false
			}
		}
	}

	return true
}

// missingMask returns the bitmask of digits 1–9 absent from the sequence.
func missingMask(values [Size]int) uint {
	present := uint(0)
	for _, val := range values {
		if val != EmptyCell {
			present |= 1 << (val - 1)
		}
	}
	return allNine &^ present
}

// maskToValues expands a digit bitmask into an ascending value slice.
func maskToValues(mask uint) []int {
	values := make([]int, 0, Size)
	for num := 1; num <= MaxValue; num++ {
		if mask&uint(1<<(num-1)) != 0 {
			values = append(values, num)
		}
	}
	return values
}

// isValidPosition reports whether a given position is in bounds.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// isValidValue reports whether a value is legal for a grid cell.
func isValidValue(val int) bool {
	return (val >= 1 && val <= MaxValue) || val == EmptyCell
}
