package validator

import "svw.info/sudoku-engine/internal/domain"

// Fast checks the whole board for duplicate values per unit using one
// bitmask per row, column, and block. It reports the coordinates of every
// second (and later) occurrence.
type Fast struct{}

func New() *Fast { return &Fast{} }

func (v *Fast) Validate(b *domain.Board) (bool, []domain.CellCoord) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < domain.Size; r++ {
		m := 0
		for c := 0; c < domain.Size; c++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < domain.Size; c++ {
		m := 0
		for r := 0; r < domain.Size; r++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// blocks
	for br := 0; br < domain.BlockSize; br++ {
		for bc := 0; bc < domain.BlockSize; bc++ {
			m := 0
			for dr := 0; dr < domain.BlockSize; dr++ {
				for dc := 0; dc < domain.BlockSize; dc++ {
					r := br*domain.BlockSize + dr
					c := bc*domain.BlockSize + dc
					val := b.Cells[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf
}
