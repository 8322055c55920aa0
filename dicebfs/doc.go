// Package dicebfs provides a production-grade breadth-first search over a
// board.Board, answering the snakes-and-ladders question: what is the
// minimum number of dice rolls from square 1 to square N²?
//
// What
//
//   - Explore effective squares in non-decreasing roll count from square 1.
//   - Returns a Result containing:
//   - Moves: minimum roll count to the final square, or Unreachable (-1)
//   - Order: visit sequence
//   - Depth: map from square → rolls from start
//   - Parent: map from square → the square it was rolled from
//   - The graph is implicit: from square s, one roll reaches s+1..s+DieSides
//     (capped at N²), and each landing square is resolved through its cell's
//     teleport before being treated as a node.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a square is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxMoves limit (m>0) or explicit “no limit” (m==0).
//   - DieSides tunes the die (default 6).
//
// Why
//
//   - The minimum roll count is a single-source unweighted shortest path;
//     BFS answers it in O(DieSides·N²) without building an explicit graph.
//   - Unreachable is a legitimate outcome (snake-locked boards), reported
//     as a value rather than an error.
//
// Node identity
//
//	Visitation is keyed on the effective (post-teleport) square: the raw
//	rolled square is never enqueued, so the effective destination is the
//	node of the search graph. Every die face is expanded independently on
//	every turn.
//
// Complexity (S = N² squares, D = die faces)
//
//   - Time:   O(S·D)   (each square expanded at most once)
//   - Memory: O(S)     (queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Minimum moves only:
//		moves, err := dicebfs.MinimumMoves(b)
//		if err != nil {
//	      // handle ErrBoardNil, ErrOptionViolation, or hook errors
//		}
//
//		// Full result with functional options:
//		res, err := dicebfs.Solve(
//		    b,
//		    dicebfs.WithContext(ctx),
//		    dicebfs.WithMaxMoves(10),
//		    dicebfs.WithOnVisit(func(square, moves int) error { /* ... */ return nil }),
//		)
//		path, err := res.PathTo(b.Squares())
//
// Options
//
//   - DefaultOptions(): background Context, six-sided die, no-op hooks, no move limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithDieSides(d):    roll 1..d each turn (d ≥ 1).
//   - WithMaxMoves(m):    stop exploring beyond m moves (m > 0).
//   - WithOnEnqueue(fn):  hook when a square is discovered.
//   - WithOnDequeue(fn):  hook immediately before visiting a square.
//   - WithOnVisit(fn):    hook during visit; returning error aborts the search.
//
// Errors
//
//   - ErrBoardNil         if the board pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. DieSides < 1).
//   - Wrapped user-supplied hook errors from OnVisit.
package dicebfs
