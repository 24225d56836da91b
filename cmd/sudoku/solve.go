package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/usecase"
)

var solveFile string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle read from a file or stdin",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "-", "puzzle file ('-' for stdin)")
}

func readPuzzle(path string) ([domain.Size][domain.Size]uint8, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return [domain.Size][domain.Size]uint8{}, err
	}
	return parseGrid(string(data))
}

func runSolve(cmd *cobra.Command, args []string) error {
	grid, err := readPuzzle(solveFile)
	if err != nil {
		return err
	}
	svc := buildService(0, nil)
	out, st, err := svc.Solve(cmd.Context(), domain.NewBoard(grid))
	if err != nil {
		if errors.Is(err, usecase.ErrUnsolvable) {
			fmt.Println("no solution")
			return nil
		}
		return err
	}
	fmt.Print(formatGrid(out.Cells))
	fmt.Printf("nodes=%d dur=%s\n", st.Nodes, st.Duration.Round(time.Millisecond))
	return nil
}
