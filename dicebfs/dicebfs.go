// Package dicebfs provides breadth-first search over a board.Board,
// returning the minimum number of dice rolls from the first square to the
// last, along with move counts, parent links, and visit order.
//
// The search explores effective squares in increasing roll count from
// square 1, with optional hooks, move limiting, and die-size tuning.
package dicebfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/boardpath/board"
)

// queueItem pairs an effective square with its move count and the square
// it was rolled from.
type queueItem struct {
	square int
	moves  int
	parent int // 0 for the start square
}

// walker encapsulates mutable search state.
type walker struct {
	board   *board.Board
	opts    Options
	ctx     context.Context
	goal    int
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// Solve runs breadth-first search on b from square 1 toward square N²,
// applying any number of functional Options.
// The returned Result carries the minimum move count (or Unreachable),
// visit order, move counts, and parent links of every square reached.
// Returns ErrBoardNil for a nil board, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func Solve(b *board.Board, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	n := b.Squares()
	w := &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		goal:    n,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Moves:  Unreachable,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with the start square (no parent). Teleport resolution
	// applies to squares landed on by a roll, never to the start itself.
	w.enqueue(1, 0, 0)
	// Main loop
	return w.res, w.loop()
}

// MinimumMoves reports the minimum number of rolls from square 1 to the
// final square of b, or Unreachable (-1) if no roll sequence gets there.
// It is a thin wrapper over Solve for callers that only need the count.
func MinimumMoves(b *board.Board, opts ...Option) (int, error) {
	res, err := Solve(b, opts...)
	if err != nil {
		return Unreachable, err
	}

	return res.Moves, nil
}

// enqueue marks square visited at m moves, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(square, m, parent int) {
	w.visited[square] = true
	w.res.Depth[square] = m
	if parent != 0 {
		w.res.Parent[square] = parent
	}
	w.opts.OnEnqueue(square, m)
	w.queue = append(w.queue, queueItem{square: square, moves: m, parent: parent})
}

// loop processes the queue until the goal is visited, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		// FIFO order guarantees the first dequeue of the goal carries the
		// minimum move count.
		if item.square == w.goal {
			w.res.Moves = item.moves
			return nil
		}
		if err := w.enqueueRolls(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.square, item.moves)
	return item
}

// visit records the square in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.square)
	if err := w.opts.OnVisit(item.square, item.moves); err != nil {
		return fmt.Errorf("dicebfs: OnVisit error at square %d: %w", item.square, err)
	}
	return nil
}

// enqueueRolls expands every die face from item independently, resolves
// each landing square to its effective destination, applies MaxMoves, and
// enqueues each unseen destination. Faces overshooting the final square
// are skipped.
func (w *walker) enqueueRolls(item queueItem) error {
	nextMoves := item.moves + 1
	if w.opts.MaxMoves > 0 && nextMoves > w.opts.MaxMoves {
		return nil
	}
	for face := 1; face <= w.opts.DieSides; face++ {
		// cancellation check inside face iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		candidate := item.square + face
		if candidate > w.goal {
			continue
		}
		// Node identity is the post-teleport square: resolution depends
		// only on the landing cell, never on the face that reached it.
		next := w.board.Destination(candidate)
		if !w.visited[next] {
			w.enqueue(next, nextMoves, item.square)
		}
	}
	return nil
}
