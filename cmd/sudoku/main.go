package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku engine: generate, solve, and hint puzzles, or serve the JSON API",
	Long: `Sudoku engine built around a backtracking solver, a unique-solution
puzzle generator, and a logical hint engine (naked/hidden singles and
locked candidates).

Examples:
  sudoku generate --difficulty hard --seed 42
  sudoku solve --file puzzle.txt
  sudoku hint --file puzzle.txt
  sudoku serve --config config.yaml`,
}

func main() {
	rootCmd.AddCommand(serveCmd, generateCmd, solveCmd, hintCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// seededGenerator builds a solver/generator pair from one seed so the same
// seed always yields the same puzzle.
func seededGenerator(seed int64) ports.Generator {
	s := solver.NewBacktracking(rand.New(rand.NewSource(seed)))
	return generator.NewUnique(s, rand.New(rand.NewSource(seed)))
}

// buildService wires the engine components behind the service facade.
// Storage may be nil for commands that never touch the puzzle library.
func buildService(seed int64, store ports.Storage) *usecase.Service {
	s := solver.NewBacktracking(newRNG(seed))
	g := generator.NewUnique(s, newRNG(seed))
	return usecase.NewService(s, g, seededGenerator, validator.New(), hint.NewEngine(), store)
}
