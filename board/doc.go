// Package board models a snakes-and-ladders board: an N×N integer matrix
// whose cells either hold the NoTeleport sentinel or the number of a square
// a token is carried to upon landing.
//
// What:
//
//   - Board wraps a validated, deep-copied N×N [][]int matrix.
//   - Squares are numbered 1..N² along a boustrophedon path: square 1 is
//     the bottom-left cell, numbering runs rightward along the bottom row,
//     then leftward along the row above, alternating upward.
//   - Coordinate(square) maps a square to its (row, col) matrix cell;
//     Square(row, col) is its inverse. Both are total bijections on the
//     valid range.
//   - Destination(square) resolves a square to its effective destination:
//     the teleport target stored in the cell, or the square itself.
//
// Why:
//
//   - The boustrophedon mapping is the classic puzzle's board encoding and
//     the one spot where off-by-one bugs breed; keeping it behind a tested
//     bijection lets search code reason purely in square numbers.
//
// Complexity:
//
//   - New:        O(N²) time and memory (validation + deep copy).
//   - All lookups: O(1).
//
// Errors:
//
//   - ErrEmptyBoard:     input has no rows or no columns.
//   - ErrNotSquare:      row count and row lengths disagree.
//   - ErrCellOutOfRange: a cell is neither NoTeleport nor in [1, N²].
package board
