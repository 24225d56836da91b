package domain

import "errors"

// Size is the side length of the grid; BlockSize the side of a 3x3 block.
const (
	Size      = 9
	BlockSize = 3
)

var (
	// ErrOutOfRange reports a cell coordinate outside 0..8.
	ErrOutOfRange = errors.New("cell coordinate out of range")

	// ErrValueRange reports a cell value outside 0..9.
	ErrValueRange = errors.New("cell value out of range")
)

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board holds the current working grid and the immutable givens it was
// created from. Zero means empty. Both grids are plain arrays, so copying
// a Board copies its full state.
type Board struct {
	Cells  [Size][Size]uint8 `json:"cells"`
	Givens [Size][Size]uint8 `json:"givens,omitempty"`
}

// NewBoard builds a Board from an initial puzzle grid. The grid is copied
// into both the working cells and the givens.
func NewBoard(grid [Size][Size]uint8) *Board {
	return &Board{Cells: grid, Givens: grid}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the value at (row, col), or ErrOutOfRange.
func (b *Board) Get(row, col int) (uint8, error) {
	if !inRange(row, col) {
		return 0, ErrOutOfRange
	}
	return b.Cells[row][col], nil
}

// Set writes v (0 clears) at (row, col). Bad coordinates and values are
// reported rather than silently dropped. Givens are not protected here;
// that is the caller's concern.
func (b *Board) Set(row, col int, v uint8) error {
	if !inRange(row, col) {
		return ErrOutOfRange
	}
	if v > Size {
		return ErrValueRange
	}
	b.Cells[row][col] = v
	return nil
}

// IsGiven reports whether (row, col) holds an original puzzle value.
func (b *Board) IsGiven(row, col int) bool {
	return inRange(row, col) && b.Givens[row][col] != 0
}

// IsValidPlacement reports whether v could legally sit at (row, col):
// v is 1..9 and no other cell in the same row, column, or block already
// holds v. The cell's own current value does not count against it.
func (b *Board) IsValidPlacement(row, col int, v uint8) bool {
	if !inRange(row, col) || v < 1 || v > Size {
		return false
	}
	for i := 0; i < Size; i++ {
		if i != col && b.Cells[row][i] == v {
			return false
		}
		if i != row && b.Cells[i][col] == v {
			return false
		}
	}
	br, bc := (row/BlockSize)*BlockSize, (col/BlockSize)*BlockSize
	for r := br; r < br+BlockSize; r++ {
		for c := bc; c < bc+BlockSize; c++ {
			if (r != row || c != col) && b.Cells[r][c] == v {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every cell is filled.
func (b *Board) IsComplete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Cells[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether the board is complete and every placement is
// still valid against the rest of the board.
func (b *Board) IsSolved() bool {
	if !b.IsComplete() {
		return false
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.IsValidPlacement(r, c, b.Cells[r][c]) {
				return false
			}
		}
	}
	return true
}

// EmptyCells counts cells currently holding zero.
func (b *Board) EmptyCells() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Cells[r][c] == 0 {
				n++
			}
		}
	}
	return n
}
