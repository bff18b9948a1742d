// tilesolver - an A*-based sliding-tile puzzle solver.
// Copyright (C) 2020 Michael Galliers.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"math/rand"
)

/*

The A* driver.

The search keeps a frontier of unexpanded leaves of the state-space
tree, ordered by depth plus heuristic.  Each iteration pops the
cheapest leaf; if it's solved we're done, otherwise its children are
generated, filtered against the closed set, and pushed.  Children are
stamped into the closed set when they are enqueued rather than when
they are expanded; with a consistent heuristic over unit-cost moves
the first path that reaches a layout is already the cheapest, so the
pruning never discards an optimal route.

A solver serves exactly one solve.  It is not reentrant, and sharing
one across goroutines needs external synchronization; hosts that must
stay responsive run Solve on a worker goroutine.

*/

// A Solver drives one A* search from a root node to the nearest
// solved board.  It exclusively owns its frontier and closed set.
type Solver struct {
	frontier *Frontier
	closed   *ClosedSet
}

// NewSolver prepares a search rooted at the given node: the frontier
// holds only the root, and the root's fingerprint is the first entry
// in the closed set.
func NewSolver(root *SearchNode) *Solver {
	s := &Solver{
		frontier: NewFrontier(),
		closed:   NewClosedSet(),
	}
	s.frontier.Push(root)
	s.closed.Insert(root.fingerprint())
	return s
}

// Solve runs the search to completion and returns the solved node,
// whose parent chain reaches back to the root.  The closed set is
// cleared before returning.  The loop is unbounded: on an unsolvable
// board it never finds a solved node, runs until every reachable
// layout has been expanded (which can take unbounded time and memory
// on larger boards), and then panics popping the empty frontier, so
// callers that cannot guarantee solvability must bound it externally.
func (s *Solver) Solve() *SearchNode {
	for {
		next := s.frontier.Pop()
		if next.IsSolved() {
			s.closed.Clear()
			return next
		}
		for _, child := range next.MoveChildren(s.closed) {
			s.frontier.Push(child)
		}
	}
}

// SolutionMoves walks the parent links from a solved leaf back to
// the root, collecting the move that produced each node, and returns
// the moves in application order: the first element is the first
// move to make from the starting board.
func (s *Solver) SolutionMoves(leaf *SearchNode) []Direction {
	var moves []Direction
	for walk := leaf; walk.Parent() != nil; walk = walk.Parent() {
		moves = append(moves, walk.LastDirection())
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

/*

Game-board generation

*/

// NewGameBoard builds a solvable starting position: a fresh solved
// board of the given side length, shuffled by the given number of
// random legal moves, wrapped as a search root (depth 0, no parent).
// The shuffle count bounds the optimal solution length, since the
// shuffle walk itself can be rewound.
func NewGameBoard(size, shuffles int) (*SearchNode, error) {
	return NewGameBoardWithSource(size, shuffles, defaultSource)
}

// NewGameBoardWithSource is NewGameBoard with an injected random
// source, for reproducible boards.
func NewGameBoardWithSource(size, shuffles int, rng *rand.Rand) (*SearchNode, error) {
	solved, err := NewSolvedBoard(size)
	if err != nil {
		return nil, err
	}
	board, err := NewBoard(size, solved, nil)
	if err != nil {
		return nil, err
	}
	board.ShuffleWithSource(shuffles, rng)
	// the shuffled board becomes a search root: its move history is
	// forgotten so the first solution move is unconstrained
	board.lastDirection = NoDirection
	return NewSearchNode(board, 0, nil), nil
}
