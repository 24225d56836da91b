package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

var hintFile string

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Show the next logical move for a puzzle",
	RunE:  runHint,
}

func init() {
	hintCmd.Flags().StringVarP(&hintFile, "file", "f", "-", "puzzle file ('-' for stdin)")
}

func runHint(cmd *cobra.Command, args []string) error {
	grid, err := readPuzzle(hintFile)
	if err != nil {
		return err
	}
	svc := buildService(0, nil)
	h, found, err := svc.Hint(domain.NewBoard(grid))
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no logical hint found; the board needs full search")
		return nil
	}
	fmt.Printf("%s: %s\n", h.Technique, h.Explanation)
	return nil
}
