package puzzle

import (
	"math/rand"
	"testing"
)

type manhattanTestcase struct {
	symbols  []int
	expected int
}

func TestManhattanCost(t *testing.T) {
	tcs := []manhattanTestcase{
		{scenarioSymbols, 18},
		{conflictSymbols, 14},
		{oneAwaySymbols, 1},
		{solvedSymbols, 0},
	}
	for i, tc := range tcs {
		b := mustBoard(t, 3, tc.symbols)
		if got := b.ManhattanCost(); got != tc.expected {
			t.Errorf("TestManhattanCost case %d: got %d (expected %d)", i+1, got, tc.expected)
		}
	}
}

type conflictTestcase struct {
	symbols  []int
	expected int
}

func TestLinearConflicts(t *testing.T) {
	tcs := []conflictTestcase{
		{scenarioSymbols, 0},
		{conflictSymbols, 2}, // tiles 6 and 3 are inverted in their goal column
		{solvedSymbols, 0},
		{oneAwaySymbols, 0},
	}
	for i, tc := range tcs {
		b := mustBoard(t, 3, tc.symbols)
		if got := b.LinearConflicts(); got != tc.expected {
			t.Errorf("TestLinearConflicts case %d: got %d (expected %d)", i+1, got, tc.expected)
		}
	}
}

func TestInConflict(t *testing.T) {
	if !inConflict(0, 1, 1, 0) {
		t.Errorf("TestInConflict: inverted pair not reported")
	}
	if !inConflict(0, 1, 2, 1) {
		t.Errorf("TestInConflict: inverted pair not reported")
	}
	if inConflict(0, 1, 0, 1) {
		t.Errorf("TestInConflict: ordered pair reported conflicting")
	}
	if inConflict(0, 2, 1, 2) {
		t.Errorf("TestInConflict: ordered pair reported conflicting")
	}
}

func TestHeuristic(t *testing.T) {
	if got := mustBoard(t, 3, scenarioSymbols).Heuristic(); got != 18 {
		t.Errorf("TestHeuristic: scenario board h is %d (expected 18)", got)
	}
	if got := mustBoard(t, 3, conflictSymbols).Heuristic(); got != 16 {
		t.Errorf("TestHeuristic: conflict board h is %d (expected 16)", got)
	}
}

func TestIsSolved(t *testing.T) {
	if mustBoard(t, 3, scenarioSymbols).IsSolved() {
		t.Errorf("TestIsSolved: scrambled board reports solved")
	}
	solved := mustBoard(t, 3, solvedSymbols)
	if !solved.IsSolved() {
		t.Errorf("TestIsSolved: solved layout doesn't report solved")
	}
	if !solved.Equal(solved.solved) {
		t.Errorf("TestIsSolved: solved layout differs from the solved reference")
	}
}

// The heuristic may never exceed the true distance to the solved
// board; spot-check against optimal solve depths on small cases.
func TestHeuristicAdmissibility(t *testing.T) {
	boards := []*Board{
		mustBoard(t, 3, scenarioSymbols),
		mustBoard(t, 3, solvableConflictSymbols),
		mustBoard(t, 3, oneAwaySymbols),
	}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 3; i++ {
		root, err := NewGameBoardWithSource(3, 12, rng)
		if err != nil {
			t.Fatalf("TestHeuristicAdmissibility: failed to create game board: %v", err)
		}
		boards = append(boards, root.Board)
	}
	for i, b := range boards {
		optimal := len(Solve(b))
		if h := b.Heuristic(); h > optimal {
			t.Errorf("TestHeuristicAdmissibility case %d: h=%d exceeds optimal %d for\n%v",
				i+1, h, optimal, b)
		}
	}
}
