package board

import "fmt"

// New constructs a Board from a non-empty, square 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyBoard if values has no rows or no columns,
// ErrNotSquare if any row length differs from the row count,
// ErrCellOutOfRange if a cell is neither NoTeleport nor in [1, N²].
// Algorithmic complexity: O(N²) time and memory.
func New(values [][]int) (*Board, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	n := len(values)
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]int, n)
		copy(cells[r], values[r])
	}
	// Every cell is either the sentinel or a square number on this board
	last := n * n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := cells[r][c]; v != NoTeleport && (v < 1 || v > last) {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d, want %d or 1..%d",
					ErrCellOutOfRange, r, c, v, NoTeleport, last)
			}
		}
	}

	return &Board{size: n, cells: cells}, nil
}

// Size returns N, the side length of the board.
// Complexity: O(1).
func (b *Board) Size() int {
	return b.size
}

// Squares returns N², the number of the final square.
// Complexity: O(1).
func (b *Board) Squares() int {
	return b.size * b.size
}

// InRange reports whether square lies within [1, N²].
// Complexity: O(1).
func (b *Board) InRange(square int) bool {
	return square >= 1 && square <= b.size*b.size
}

// Coordinate maps a square in [1, N²] to its (row, col) matrix cell under
// boustrophedon numbering: square 1 is the bottom-left cell (row N-1,
// col 0), numbering runs rightward along the bottom row, then leftward
// along the row above, alternating upward. Callers must keep square in
// range; out-of-range input is a contract violation.
// Complexity: O(1).
func (b *Board) Coordinate(square int) (row, col int) {
	fromBottom := (square - 1) / b.size
	row = b.size - 1 - fromBottom
	col = (square - 1) % b.size
	if fromBottom%2 == 1 {
		col = b.size - 1 - col
	}

	return row, col
}

// Square is the inverse of Coordinate: it maps a (row, col) matrix cell
// back to its square number in [1, N²].
// Complexity: O(1).
func (b *Board) Square(row, col int) int {
	fromBottom := b.size - 1 - row
	offset := col
	if fromBottom%2 == 1 {
		offset = b.size - 1 - col
	}

	return fromBottom*b.size + offset + 1
}

// Cell returns the raw stored value of the cell for square:
// NoTeleport, or a teleport destination in [1, N²].
// Complexity: O(1).
func (b *Board) Cell(square int) int {
	row, col := b.Coordinate(square)

	return b.cells[row][col]
}

// HasTeleport reports whether the cell for square carries a snake or a
// ladder.
// Complexity: O(1).
func (b *Board) HasTeleport(square int) bool {
	return b.Cell(square) != NoTeleport
}

// Destination resolves square to its effective destination: the teleport
// target stored in its cell, or square itself for a plain cell. Resolution
// does not depend on how the square was reached and never chains — a
// teleport target is taken as-is even if its own cell holds another link.
// Complexity: O(1).
func (b *Board) Destination(square int) int {
	if v := b.Cell(square); v != NoTeleport {
		return v
	}

	return square
}
