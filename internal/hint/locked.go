package hint

import (
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
)

// findPointing looks for a candidate confined to one row or column within
// a block. When at least one cell of that row or column outside the block
// also admits the candidate, it can be eliminated there. Blocks are
// scanned row-major; within a block the row confinement is checked before
// the column confinement.
func findPointing(b *domain.Board) (domain.Hint, bool) {
	for br := 0; br < domain.BlockSize; br++ {
		for bc := 0; bc < domain.BlockSize; bc++ {
			rStart, cStart := br*domain.BlockSize, bc*domain.BlockSize
			for v := uint8(1); v <= domain.Size; v++ {
				var cells []domain.CellCoord
				for r := rStart; r < rStart+domain.BlockSize; r++ {
					for c := cStart; c < cStart+domain.BlockSize; c++ {
						if admits(b, r, c, v) {
							cells = append(cells, domain.CellCoord{Row: r, Col: c})
						}
					}
				}
				if len(cells) < 2 {
					continue
				}

				if row, ok := confinedRow(cells); ok {
					for c := 0; c < domain.Size; c++ {
						if c >= cStart && c < cStart+domain.BlockSize {
							continue
						}
						if admits(b, row, c, v) {
							expl := fmt.Sprintf(
								"Locked Candidates (Pointing): candidate %d is confined to Row %d within Block R%d-R%d C%d-C%d, so %d can be eliminated from the other candidate cells of Row %d.",
								v, row+1, rStart+1, rStart+3, cStart+1, cStart+3, v, row+1)
							return domain.NewElimination(
								domain.UnitRef{Axis: domain.AxisRow, Index: row},
								v, "Locked Candidates (Pointing)", expl), true
						}
					}
				}

				if col, ok := confinedCol(cells); ok {
					for r := 0; r < domain.Size; r++ {
						if r >= rStart && r < rStart+domain.BlockSize {
							continue
						}
						if admits(b, r, col, v) {
							expl := fmt.Sprintf(
								"Locked Candidates (Pointing): candidate %d is confined to Column %d within Block R%d-R%d C%d-C%d, so %d can be eliminated from the other candidate cells of Column %d.",
								v, col+1, rStart+1, rStart+3, cStart+1, cStart+3, v, col+1)
							return domain.NewElimination(
								domain.UnitRef{Axis: domain.AxisColumn, Index: col},
								v, "Locked Candidates (Pointing)", expl), true
						}
					}
				}
			}
		}
	}
	return domain.Hint{}, false
}

// findClaiming is the symmetric technique: a candidate confined to one
// block segment of a row (or column) is claimed by that block and can be
// eliminated from the block's cells outside the row (or column). Rows are
// scanned before columns.
func findClaiming(b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < domain.Size; r++ {
		for v := uint8(1); v <= domain.Size; v++ {
			var cells []domain.CellCoord
			for c := 0; c < domain.Size; c++ {
				if admits(b, r, c, v) {
					cells = append(cells, domain.CellCoord{Row: r, Col: c})
				}
			}
			if len(cells) < 2 {
				continue
			}
			blockCol := cells[0].Col / domain.BlockSize
			confined := true
			for _, p := range cells {
				if p.Col/domain.BlockSize != blockCol {
					confined = false
					break
				}
			}
			if !confined {
				continue
			}
			rStart := (r / domain.BlockSize) * domain.BlockSize
			cStart := blockCol * domain.BlockSize
			possible := false
			for rr := rStart; rr < rStart+domain.BlockSize && !possible; rr++ {
				if rr == r {
					continue
				}
				for cc := cStart; cc < cStart+domain.BlockSize; cc++ {
					if admits(b, rr, cc, v) {
						possible = true
						break
					}
				}
			}
			if possible {
				expl := fmt.Sprintf(
					"Locked Candidates (Claiming): candidate %d is confined to Row %d within Block R%d-R%d C%d-C%d, so %d can be eliminated from the block's candidate cells outside Row %d.",
					v, r+1, rStart+1, rStart+3, cStart+1, cStart+3, v, r+1)
				return domain.NewElimination(
					domain.UnitRef{Axis: domain.AxisRow, Index: r},
					v, "Locked Candidates (Claiming)", expl), true
			}
		}
	}

	for c := 0; c < domain.Size; c++ {
		for v := uint8(1); v <= domain.Size; v++ {
			var cells []domain.CellCoord
			for r := 0; r < domain.Size; r++ {
				if admits(b, r, c, v) {
					cells = append(cells, domain.CellCoord{Row: r, Col: c})
				}
			}
			if len(cells) < 2 {
				continue
			}
			blockRow := cells[0].Row / domain.BlockSize
			confined := true
			for _, p := range cells {
				if p.Row/domain.BlockSize != blockRow {
					confined = false
					break
				}
			}
			if !confined {
				continue
			}
			rStart := blockRow * domain.BlockSize
			cStart := (c / domain.BlockSize) * domain.BlockSize
			possible := false
			for rr := rStart; rr < rStart+domain.BlockSize && !possible; rr++ {
				for cc := cStart; cc < cStart+domain.BlockSize; cc++ {
					if cc == c {
						continue
					}
					if admits(b, rr, cc, v) {
						possible = true
						break
					}
				}
			}
			if possible {
				expl := fmt.Sprintf(
					"Locked Candidates (Claiming): candidate %d is confined to Column %d within Block R%d-R%d C%d-C%d, so %d can be eliminated from the block's candidate cells outside Column %d.",
					v, c+1, rStart+1, rStart+3, cStart+1, cStart+3, v, c+1)
				return domain.NewElimination(
					domain.UnitRef{Axis: domain.AxisColumn, Index: c},
					v, "Locked Candidates (Claiming)", expl), true
			}
		}
	}
	return domain.Hint{}, false
}

func confinedRow(cells []domain.CellCoord) (int, bool) {
	row := cells[0].Row
	for _, p := range cells {
		if p.Row != row {
			return 0, false
		}
	}
	return row, true
}

func confinedCol(cells []domain.CellCoord) (int, bool) {
	col := cells[0].Col
	for _, p := range cells {
		if p.Col != col {
			return 0, false
		}
	}
	return col, true
}
