// Package transform applies symmetry operations to fully filled Sudoku
// grids. Every operation maps a valid grid to another valid grid: swaps are
// confined to 3-row/3-column bands aligned with subgrid boundaries, band
// swaps move whole bands, and rotations map subgrids onto subgrids.
package transform

import (
	"math/rand"

	"github.com/martijnfolmer/sudokugen/internal/grid"
)

// swapsPerBand is how many random swaps each band receives during
// randomization. Fewer swaps weaken the shuffle but never break validity.
const swapsPerBand = 5

// SwapRows exchanges two entire rows in place.
func SwapRows(g *grid.Grid, row1, row2 int) {
	for col := 0; col < grid.Size; col++ {
		p1, p2 := grid.MakePos(row1, col), grid.MakePos(row2, col)
		v1, v2 := g.Get(p1), g.Get(p2)
		g.Set(p1, v2)
		g.Set(p2, v1)
	}
}

// SwapColumns exchanges two entire columns in place.
func SwapColumns(g *grid.Grid, col1, col2 int) {
	for row := 0; row < grid.Size; row++ {
		p1, p2 := grid.MakePos(row, col1), grid.MakePos(row, col2)
		v1, v2 := g.Get(p1), g.Get(p2)
		g.Set(p1, v2)
		g.Set(p2, v1)
	}
}

// SwapRowBands exchanges two whole row bands (0, 1, or 2), row for row.
func SwapRowBands(g *grid.Grid, band1, band2 int) {
	for i := 0; i < grid.BoxSize; i++ {
		SwapRows(g, band1*grid.BoxSize+i, band2*grid.BoxSize+i)
	}
}

// SwapColumnBands exchanges two whole column bands, column for column.
func SwapColumnBands(g *grid.Grid, band1, band2 int) {
	for i := 0; i < grid.BoxSize; i++ {
		SwapColumns(g, band1*grid.BoxSize+i, band2*grid.BoxSize+i)
	}
}

// Rotate90 rotates the grid 90 degrees clockwise in place.
func Rotate90(g *grid.Grid) {
	rotated := grid.New()
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			rotated.Set(grid.MakePos(col, grid.Size-1-row), g.Get(grid.MakePos(row, col)))
		}
	}
	*g = *rotated
}

// Rotate180 rotates the grid 180 degrees in place.
func Rotate180(g *grid.Grid) {
	rotated := grid.New()
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			rotated.Set(grid.MakePos(grid.Size-1-row, grid.Size-1-col), g.Get(grid.MakePos(row, col)))
		}
	}
	*g = *rotated
}

// Rotate270 rotates the grid 270 degrees clockwise in place.
func Rotate270(g *grid.Grid) {
	rotated := grid.New()
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			rotated.Set(grid.MakePos(grid.Size-1-col, row), g.Get(grid.MakePos(row, col)))
		}
	}
	*g = *rotated
}

// Randomize shuffles a valid filled grid through the full randomization
// sequence: 5 random in-band row swaps per band, 5 in-band column swaps per
// band, 5 random row-band swaps, 5 random column-band swaps, then a random
// rotation of 0, 90, 180, or 270 degrees.
func Randomize(g *grid.Grid, rng *rand.Rand) {
	for band := 0; band < grid.BoxSize; band++ {
		lo := band * grid.BoxSize
		for i := 0; i < swapsPerBand; i++ {
			a, b := pickTwo(rng, grid.BoxSize)
			SwapRows(g, lo+a, lo+b)
		}
	}

	for band := 0; band < grid.BoxSize; band++ {
		lo := band * grid.BoxSize
		for i := 0; i < swapsPerBand; i++ {
			a, b := pickTwo(rng, grid.BoxSize)
			SwapColumns(g, lo+a, lo+b)
		}
	}

	for i := 0; i < swapsPerBand; i++ {
		a, b := pickTwo(rng, grid.BoxSize)
		SwapRowBands(g, a, b)
	}

	for i := 0; i < swapsPerBand; i++ {
		a, b := pickTwo(rng, grid.BoxSize)
		SwapColumnBands(g, a, b)
	}

	switch rng.Intn(4) {
	case 1:
		Rotate90(g)
	case 2:
		Rotate180(g)
	case 3:
		Rotate270(g)
	}
}

// pickTwo returns two distinct indices in [0, n).
func pickTwo(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}
