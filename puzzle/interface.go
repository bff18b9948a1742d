// Copyright 2020 Michael Galliers.  All rights reserved.

// Package puzzle provides a model for N×N sliding-tile puzzles and
// an A* solver for them.  It supports both a golang interface and a
// compact text interface to the puzzles.
//
// In this package, a board is made of n² tiles laid out in English
// reading order.  Each tile carries an integer symbol between 1 and
// n²−1, except for the single blank tile, which carries the sentinel
// symbol −1.  The solved board places symbol k at index k−1 and the
// blank at the last index.
//
// A move names the direction the blank travels; the neighboring tile
// slides the opposite way.  Boards remember the direction of the move
// that produced them, and a move that would immediately undo the
// previous one is never legal.  This holds both while shuffling (so a
// shuffle of k moves is never trivially undone) and while expanding
// search children (so the search never chases 1-ply cycles).
//
// The solver is a best-first search over copies of the starting
// board, ordered by depth plus an admissible heuristic (Manhattan
// distance plus doubled linear conflicts).  Because the heuristic is
// admissible and consistent, the first solved board the search pops
// is an optimal solution.  The search does not detect unsolvable
// boards; feed it only boards reachable from the solved layout, the
// way Shuffle and the catalog produce them.
package puzzle

import (
	"fmt"
)

// A Direction is one of the four ways the blank tile can move, or
// NoDirection for a board no move has been applied to.
type Direction int

// Constants for the move directions.
const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
	MaxDirection
)

// opposites maps each direction to the move that would undo it.
var opposites = [MaxDirection]Direction{
	NoDirection: NoDirection,
	Up:          Down,
	Down:        Up,
	Left:        Right,
	Right:       Left,
}

// moveOrder is the order in which moves are tried, both while
// shuffling and while generating search children.  The order is part
// of the solver's determinism contract, so don't reorder it.
var moveOrder = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction that would undo d.
func (d Direction) Opposite() Direction {
	if d < 0 || d >= MaxDirection {
		return NoDirection
	}
	return opposites[d]
}

// Directions implement Stringer, using the spelled-out word form
// exposed to in-process callers.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case NoDirection:
		return "none"
	}
	return fmt.Sprintf("<direction %d>", int(d))
}

// A Summary is the JSON exchange form of a board: its side length
// and the tile symbols in reading order, with −1 for the blank.  It
// carries exactly the information needed to reconstruct the board,
// so it's the form that crosses process boundaries and goes into
// storage.
type Summary struct {
	Size  int   `json:"size"`
	Tiles []int `json:"tiles"`
}

// Summary returns the Summary form of a board.  The returned value
// does not share storage with the board.
func (b *Board) Summary() *Summary {
	tiles := make([]int, b.count)
	for i, t := range b.tiles {
		tiles[i] = t.Symbol()
	}
	return &Summary{Size: b.size, Tiles: tiles}
}

// NewBoardFromSummary builds a board (and its solved reference) from
// a Summary.  It gives an Error if the size is out of range or the
// tiles are not a permutation of the solved tile set.
func NewBoardFromSummary(sum *Summary) (*Board, error) {
	if sum == nil {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: ScopeStructure,
			Condition: EmptyArgumentCondition,
		}
	}
	solved, err := NewSolvedBoard(sum.Size)
	if err != nil {
		return nil, err
	}
	tiles := make([]Tile, len(sum.Tiles))
	for i, sym := range sum.Tiles {
		tiles[i] = NewTile(sym)
	}
	return NewBoard(sum.Size, solved, tiles)
}

// Solve returns the ordered blank-move directions that optimally
// transform the given board into the solved board.  A solved input
// yields an empty sequence.  The call runs to completion on the
// caller's goroutine and never returns a solution for an unsolvable
// board: it searches every reachable layout and then panics (see
// Solver.Solve), so callers that cannot guarantee solvability must
// bound it externally.
func Solve(start *Board) []Direction {
	solver := NewSolver(NewSearchNode(start, 0, nil))
	return solver.SolutionMoves(solver.Solve())
}
