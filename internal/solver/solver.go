// Package solver implements a hybrid Sudoku solver: naked-single constraint
// propagation followed by exhaustive depth-first backtracking over the
// remaining empty cells. It doubles as the solvability oracle the puzzle
// carver relies on.
package solver

import (
	"errors"

	"github.com/martijnfolmer/sudokugen/internal/grid"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// Solve attempts to solve the puzzle.
// It operates on a private clone; the input grid is never mutated.
// Returns the completed grid, or an error if the puzzle is invalid or the
// search space is exhausted without a valid completion.
func Solve(in *grid.Grid) (*grid.Grid, error) {
	g := in.Clone()

	if !g.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	// Constraint propagation is cheap, run it first.
	propagate(g)

	if len(g.EmptyCells()) > 0 && !backtrack(g) {
		return nil, ErrNoSolution
	}

	// The final verdict is the full solved-check, not the search outcome.
	if !g.IsSolved() {
		return nil, ErrNoSolution
	}
	return g, nil
}

// IsSolvable reports whether the puzzle has at least one solution.
// The input grid is never mutated.
func IsSolvable(in *grid.Grid) bool {
	_, err := Solve(in)
	return err == nil
}

// propagate repeatedly fills naked singles: empty cells with exactly one
// candidate. Each full scan that places at least one value triggers another
// scan; the loop terminates because every fill reduces the empty-cell count.
func propagate(g *grid.Grid) {
	for {
		changed := false
		for _, c := range g.EmptyCells() {
			candidates := g.Candidates(c)
			if len(candidates) == 1 {
				g.SetAt(c, candidates[0])
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// backtrack runs a depth-first search over the empty cells in their fixed
// row-major discovery order. The cell's current value doubles as the record
// of the last value tried there: arriving at a cell always resumes at
// value+1, and a cell at 9 is exhausted, so it resets to empty and the
// search retreats to the previous cell. The grid holds a solution when the
// cursor passes the last cell; the puzzle is unsolvable when it retreats
// past the first.
func backtrack(g *grid.Grid) bool {
	cells := g.EmptyCells()

	i := 0
	for i < len(cells) {
		c := cells[i]
		val := g.At(c)

		if val == grid.MaxValue {
			g.SetAt(c, grid.EmptyCell)
			i--
			if i < 0 {
				return false
			}
			continue
		}

		g.SetAt(c, val+1)
		if g.IsCellValid(c) {
			i++
		}
	}

	return true
}
