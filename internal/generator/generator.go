// Package generator creates Sudoku puzzles. A full solution grid is built
// with a closed-form construction and randomized through symmetry
// transforms; a puzzle is then carved out of it by blanking cells while a
// solver oracle confirms the grid stays solvable.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/martijnfolmer/sudokugen/internal/grid"
	"github.com/martijnfolmer/sudokugen/internal/solver"
	"github.com/martijnfolmer/sudokugen/internal/transform"
)

const (
	// MinClueCount is the fewest givens a solvable standard puzzle may keep.
	MinClueCount = 17

	// MaxRemoveCount bounds how many cells a carve may blank.
	MaxRemoveCount = grid.CellCount - MinClueCount

	// DefaultRemoveCount is how many cells a carve blanks by default.
	DefaultRemoveCount = 50
)

var (
	ErrInvalidRemoveCount = errors.New("remove count must be between 1 and 64")
	ErrCarveFailed        = errors.New("could not reach target removals")
	ErrNotSolved          = errors.New("carve input grid is not a valid solution")
)

// rowOffsets is the cyclic rotation applied to the seed permutation per row.
// Offsets step by 3 inside a band, keeping subgrids distinct, and by 1
// across band boundaries, keeping columns distinct — so the construction
// yields a valid grid with no search.
var rowOffsets = [grid.Size]int{0, 3, 6, 1, 4, 7, 2, 5, 8}

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle.
// Returns the puzzle and its solution, or an error if carving fails.
func (g *Generator) Generate() (puzzle *grid.Grid, solution *grid.Grid, err error) {
	solution = g.Solution()
	puzzle, err = g.Carve(solution)
	if err != nil {
		return nil, nil, err
	}
	return puzzle, solution, nil
}

// Solution creates a complete, valid, randomized grid.
//
// A random permutation of 1–9 fills each row, cyclically rotated by that
// row's offset; the result is already a valid Sudoku. The symmetry
// randomization then destroys the obvious structure while preserving
// validity.
func (g *Generator) Solution() *grid.Grid {
	digits := g.rng.Perm(grid.Size)

	solution := grid.New()
	for row := 0; row < grid.Size; row++ {
		for i, d := range digits {
			col := (i + rowOffsets[row]) % grid.Size
			solution.Set(grid.MakePos(row, col), d+1)
		}
	}

	transform.Randomize(solution, g.rng)
	return solution
}

// Carve derives a puzzle from a solved grid by blanking RemoveCount cells.
// Each removal is kept only if the solver oracle confirms the grid is still
// solvable; otherwise the value is restored and another cell is rolled.
// The input grid is not mutated.
//
// Carving is randomized and may fail to progress; the attempt cap turns
// that liveness risk into an ErrCarveFailed result carrying the partially
// carved grid.
func (g *Generator) Carve(solution *grid.Grid) (*grid.Grid, error) {
	target := g.options.RemoveCount
	if target < 1 || target > MaxRemoveCount {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRemoveCount, target)
	}
	if !solution.IsSolved() {
		return nil, ErrNotSolved
	}

	maxAttempts := g.options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = grid.CellCount * grid.CellCount
	}

	puzzle := solution.Clone()

	removed := 0
	for attempt := 0; removed < target; attempt++ {
		if attempt >= maxAttempts {
			return puzzle, fmt.Errorf("%w: removed %d of %d after %d attempts",
				ErrCarveFailed, removed, target, attempt)
		}

		pos := g.rng.Intn(grid.CellCount)
		val := puzzle.Get(pos)
		if val == grid.EmptyCell {
			continue
		}

		puzzle.Set(pos, grid.EmptyCell)
		if !solver.IsSolvable(puzzle) {
			puzzle.Set(pos, val)
			continue
		}
		removed++
	}

	return puzzle, nil
}
