package main

import (
	"fmt"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
)

// parseGrid reads a 9x9 grid from text: nine rows of nine cells, digits
// 1-9 for values, '0' or '.' for empty. Spaces and blank lines are
// ignored.
func parseGrid(text string) ([domain.Size][domain.Size]uint8, error) {
	var grid [domain.Size][domain.Size]uint8
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= domain.Size {
			return grid, fmt.Errorf("too many rows: expected %d", domain.Size)
		}
		if len(line) != domain.Size {
			return grid, fmt.Errorf("row %d has %d cells, expected %d", row+1, len(line), domain.Size)
		}
		for col, ch := range line {
			switch {
			case ch == '0' || ch == '.':
				grid[row][col] = 0
			case ch >= '1' && ch <= '9':
				grid[row][col] = uint8(ch - '0')
			default:
				return grid, fmt.Errorf("bad cell %q at row %d col %d", ch, row+1, col+1)
			}
		}
		row++
	}
	if row != domain.Size {
		return grid, fmt.Errorf("got %d rows, expected %d", row, domain.Size)
	}
	return grid, nil
}

// formatGrid renders a grid with '.' for empty cells and block separators.
func formatGrid(g [domain.Size][domain.Size]uint8) string {
	var sb strings.Builder
	for r := 0; r < domain.Size; r++ {
		if r > 0 && r%domain.BlockSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < domain.Size; c++ {
			if c > 0 && c%domain.BlockSize == 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%d ", g[r][c]))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
