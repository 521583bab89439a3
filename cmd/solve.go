package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/martijnfolmer/sudokugen/internal/grid"
	"github.com/martijnfolmer/sudokugen/internal/solver"
	"github.com/spf13/cobra"
)

var solveFile string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string, reading rows left to
right, top to bottom. Use '.' or '0' for empty cells. The grid is read from
the argument, from a file, or from stdin.

Examples:
  sudokugen solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudokugen solve -f puzzle.txt
  cat puzzle.txt | sudokugen solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the puzzle from a file")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	raw, err := readPuzzle(args)
	if err != nil {
		return err
	}

	g, err := grid.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}

	start := time.Now()
	solved, err := solver.Solve(g)
	if err != nil {
		return err
	}
	log.Debugf("solved in %v", time.Since(start))

	fmt.Println(solved.Format())
	return nil
}

// readPuzzle fetches the raw 81-character grid from the argument, the
// --file flag, or stdin, stripping all whitespace.
func readPuzzle(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	input := io.Reader(os.Stdin)
	if solveFile != "" {
		f, err := os.Open(solveFile)
		if err != nil {
			return "", fmt.Errorf("failed to open puzzle file: %w", err)
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(io.LimitReader(input, 1024))
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle: %w", err)
	}

	return strings.Join(strings.Fields(string(raw)), ""), nil
}
