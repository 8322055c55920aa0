// Package dicebfs provides tunable options and error definitions
// for breadth-first search over a board.Board.
package dicebfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable is the Moves value reported when no sequence of rolls
// reaches the final square. It is a valid outcome, not an error.
const Unreachable = -1

// DefaultDieSides is the face count of the standard die.
const DefaultDieSides = 6

// Sentinel errors for search execution.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("dicebfs: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dicebfs: invalid option supplied")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. a zero-sided die), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// DieSides is the number of die faces; each turn rolls 1..DieSides.
	DieSides int

	// MaxMoves, if > 0, stops exploring beyond this many moves.
	// A value of 0 explicitly disables any move limit.
	MaxMoves int

	// OnEnqueue is called when a square is discovered, before visiting.
	// Receives the effective square number and its move count from start.
	OnEnqueue func(square, moves int)

	// OnDequeue is called immediately before visiting a square.
	OnDequeue func(square, moves int)

	// OnVisit is called when visiting a square. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(square, moves int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - six-sided die
//   - no move limit (MaxMoves == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		DieSides:  DefaultDieSides,
		MaxMoves:  0,
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDieSides sets the number of die faces rolled each turn.
//
//	d >= 1: roll 1..d
//	d < 1:  invalid option → ErrOptionViolation
func WithDieSides(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: DieSides must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.DieSides = d
	}
}

// WithMaxMoves stops the search at the given move count (exclusive).
//
//	m > 0: limit to m moves
//	m == 0: explicit no limit
//	m < 0: invalid option → ErrOptionViolation
func WithMaxMoves(m int) Option {
	return func(o *Options) {
		switch {
		case m < 0:
			o.err = fmt.Errorf("%w: MaxMoves cannot be negative (%d)", ErrOptionViolation, m)
		case m == 0:
			// explicit "no limit"
			o.MaxMoves = 0
		default:
			o.MaxMoves = m
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(square, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(square, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(square, moves int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Moves: minimum rolls from square 1 to the final square, or Unreachable.
//   - Order: effective squares visited, in visit sequence.
//   - Depth: map from effective square to its move count from the start.
//   - Parent: map from effective square to the square it was rolled from.
type Result struct {
	Moves  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the sequence of effective squares from square 1 to
// dest. Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("dicebfs: no path to square %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
