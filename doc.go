// Package boardpath solves the classic snakes-and-ladders movement puzzle:
// fewest dice rolls from the first square of a board to the last, honoring
// ladder and snake teleports embedded in the cells.
//
// 🚀 What is boardpath?
//
//	A small, pure-Go solver built from two pieces:
//		• board/   — the board model: validation, boustrophedon square
//		             numbering, and teleport resolution
//		• dicebfs/ — breadth-first search over the implicit dice graph,
//		             with hooks, cancellation, and path reconstruction
//
// ✨ Why boardpath?
//
//   - Correct by construction – the square↔cell mapping is a tested
//     bijection, and every die face is explored on every turn
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject hooks (OnVisit, OnEnqueue…) for custom logic
//     instead of baked-in output
//
// Quick ASCII example (4×4, squares numbered bottom-left upward):
//
//	16 15 14 13
//	 9 10 11 12
//	 8  7  6  5
//	 1  2  3  4
//
// A cell holding -1 is plain; any other value is the square a token
// teleports to upon landing.
//
//	go get github.com/katalvlaran/boardpath
package boardpath
