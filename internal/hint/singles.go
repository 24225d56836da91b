package hint

import "svw.info/sudoku-engine/internal/domain"

// findNakedSingle scans cells in row-major order for the first empty cell
// with exactly one candidate.
func findNakedSingle(b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Cells[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(candidates(b, r, c)); ok {
				return domain.NewPlacement(r, c, v, "Naked Single"), true
			}
		}
	}
	return domain.Hint{}, false
}

// findHiddenSingle looks for a value that fits exactly one empty cell of a
// unit, scanning rows 0..8, then columns 0..8, then blocks row-major.
func findHiddenSingle(b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < domain.Size; r++ {
		if h, ok := hiddenSingleInUnit(b, rowCells(r), "Row"); ok {
			return h, true
		}
	}
	for c := 0; c < domain.Size; c++ {
		if h, ok := hiddenSingleInUnit(b, colCells(c), "Column"); ok {
			return h, true
		}
	}
	for br := 0; br < domain.BlockSize; br++ {
		for bc := 0; bc < domain.BlockSize; bc++ {
			if h, ok := hiddenSingleInUnit(b, blockCells(br, bc), "Block"); ok {
				return h, true
			}
		}
	}
	return domain.Hint{}, false
}

func hiddenSingleInUnit(b *domain.Board, cells [domain.Size]domain.CellCoord, unitType string) (domain.Hint, bool) {
	for v := uint8(1); v <= domain.Size; v++ {
		present := false
		for _, p := range cells {
			if b.Cells[p.Row][p.Col] == v {
				present = true
				break
			}
		}
		if present {
			continue
		}
		count := 0
		var last domain.CellCoord
		for _, p := range cells {
			if admits(b, p.Row, p.Col, v) {
				count++
				last = p
			}
		}
		if count == 1 {
			return domain.NewPlacement(last.Row, last.Col, v, "Hidden Single ("+unitType+")"), true
		}
	}
	return domain.Hint{}, false
}

func rowCells(r int) [domain.Size]domain.CellCoord {
	var cells [domain.Size]domain.CellCoord
	for c := range cells {
		cells[c] = domain.CellCoord{Row: r, Col: c}
	}
	return cells
}

func colCells(c int) [domain.Size]domain.CellCoord {
	var cells [domain.Size]domain.CellCoord
	for r := range cells {
		cells[r] = domain.CellCoord{Row: r, Col: c}
	}
	return cells
}

func blockCells(br, bc int) [domain.Size]domain.CellCoord {
	var cells [domain.Size]domain.CellCoord
	i := 0
	for r := br * domain.BlockSize; r < (br+1)*domain.BlockSize; r++ {
		for c := bc * domain.BlockSize; c < (bc+1)*domain.BlockSize; c++ {
			cells[i] = domain.CellCoord{Row: r, Col: c}
			i++
		}
	}
	return cells
}
