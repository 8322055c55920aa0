// Package board defines the Board type and sentinel errors for the
// board subpackage of github.com/katalvlaran/boardpath.
package board

import "errors"

// NoTeleport is the sentinel cell value marking a plain square:
// landing on it leaves the token where it stands.
const NoTeleport = -1

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates the input matrix has no rows or no columns.
	ErrEmptyBoard = errors.New("board: input matrix must have at least one row and one column")
	// ErrNotSquare indicates the row count and row lengths disagree.
	ErrNotSquare = errors.New("board: input matrix must be square")
	// ErrCellOutOfRange indicates a cell holds neither NoTeleport nor a
	// destination square in [1, N²].
	ErrCellOutOfRange = errors.New("board: cell value out of teleport range")
)

// Board is an immutable N×N snakes-and-ladders board.
// Construct it with New; the zero value is not usable.
type Board struct {
	size  int     // N
	cells [][]int // cells[row][col], deep-copied at construction
}
