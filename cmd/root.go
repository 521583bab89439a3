// Package cmd wires the sudokugen command-line interface.
package cmd

import (
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

// profiler is non-nil while CPU profiling is active.
var profiler interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:   "sudokugen",
	Short: "Generate and solve 9x9 Sudoku puzzles",
	Long: `sudokugen builds fully solved Sudoku grids through a closed-form
construction randomized by symmetry transforms, carves solvable puzzles out
of them, and solves arbitrary puzzles with a propagation-plus-backtracking
solver.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		if viper.GetBool("cpuprofile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("cpuprofile", false, "Write a CPU profile to the current directory")

	viper.SetEnvPrefix("SUDOKUGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}
}
