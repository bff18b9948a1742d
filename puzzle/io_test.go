package puzzle

import (
	"reflect"
	"testing"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("3,8,4,6,3,7,1,5,2,-1")
	if err != nil {
		t.Fatalf("TestParseBoard: parse failed: %v", err)
	}
	if !b.Equal(mustBoard(t, 3, scenarioSymbols)) {
		t.Errorf("TestParseBoard: parsed board is\n%v", b)
	}
	if b.BlankIndex() != 8 {
		t.Errorf("TestParseBoard: blank index is %d (expected 8)", b.BlankIndex())
	}
	if b.solved == nil || !b.solved.IsSolved() {
		t.Errorf("TestParseBoard: parsed board has no solved reference")
	}
}

type parseFailureTestcase struct {
	csv string
}

func TestParseBoardFailures(t *testing.T) {
	tcs := []parseFailureTestcase{
		{""},                           // no size
		{"x,1,2,3,-1"},                 // non-integer size
		{"1,-1"},                       // size below 2
		{"3,8,4,6,3,7,1,5,2"},          // too few fields
		{"3,8,4,6,3,7,1,5,2,-1,9"},     // too many fields
		{"3,8,4,6,3,q,1,5,2,-1"},       // non-integer tile
		{"3,8,4,6,3,7,1,5,5,-1"},       // repeated symbol
		{"3,8,4,6,3,7,1,5,2,9"},        // no blank
		{"3,8,4,6,3,7,1,5,-1,-1"},      // two blanks
		{"3,8,4,6,3,7,1,5,2,-2"},       // wrong sentinel
	}
	for i, tc := range tcs {
		if _, err := ParseBoard(tc.csv); err == nil {
			t.Errorf("TestParseBoardFailures case %d: no error for %q", i+1, tc.csv)
		} else if _, ok := err.(Error); !ok {
			t.Errorf("TestParseBoardFailures case %d: error is not an Error: %v", i+1, err)
		}
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	const csv = "3,8,4,6,3,7,1,5,2,-1"
	b, err := ParseBoard(csv)
	if err != nil {
		t.Fatalf("TestSignatureRoundTrip: parse failed: %v", err)
	}
	if got := b.Signature(); got != csv {
		t.Errorf("TestSignatureRoundTrip: got %q (expected %q)", got, csv)
	}
}

func TestMovesPath(t *testing.T) {
	moves := []Direction{Left, Left, Up, Right, Down}
	if got := MovesPath(moves); got != "LLURD" {
		t.Errorf("TestMovesPath: got %q (expected %q)", got, "LLURD")
	}
	parsed, err := ParseMovesPath("LLURD")
	if err != nil {
		t.Fatalf("TestMovesPath: parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, moves) {
		t.Errorf("TestMovesPath: round trip gave %v (expected %v)", parsed, moves)
	}
	if _, err := ParseMovesPath("LLXRD"); err == nil {
		t.Errorf("TestMovesPath: no error for unknown move code")
	}
}

func TestSolveBoardText(t *testing.T) {
	path, err := SolveBoard("3,8,4,6,3,7,1,5,2,-1")
	if err != nil {
		t.Fatalf("TestSolveBoardText: solve failed: %v", err)
	}
	if len(path) != 28 {
		t.Fatalf("TestSolveBoardText: path %q has %d moves (expected 28)", path, len(path))
	}
	moves, err := ParseMovesPath(path)
	if err != nil {
		t.Fatalf("TestSolveBoardText: returned path doesn't parse: %v", err)
	}
	start := mustBoard(t, 3, scenarioSymbols)
	if end := applyMoves(t, start, moves); !end.IsSolved() {
		t.Errorf("TestSolveBoardText: replaying %q doesn't solve the board", path)
	}
}

func TestSolveBoardTextIdentity(t *testing.T) {
	path, err := SolveBoard("3,1,2,3,4,5,6,7,8,-1")
	if err != nil {
		t.Fatalf("TestSolveBoardTextIdentity: solve failed: %v", err)
	}
	if path != "" {
		t.Errorf("TestSolveBoardTextIdentity: got %q (expected empty)", path)
	}
}

func TestSolveBoardTextParseFailure(t *testing.T) {
	if _, err := SolveBoard("3,8,4,6"); err == nil {
		t.Errorf("TestSolveBoardTextParseFailure: no error for truncated board")
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	b := mustBoard(t, 3, conflictSymbols)
	sum := b.Summary()
	if sum.Size != 3 || !reflect.DeepEqual(sum.Tiles, conflictSymbols) {
		t.Fatalf("TestSummaryRoundTrip: summary is %+v", sum)
	}
	back, err := NewBoardFromSummary(sum)
	if err != nil {
		t.Fatalf("TestSummaryRoundTrip: rebuild failed: %v", err)
	}
	if !back.Equal(b) {
		t.Errorf("TestSummaryRoundTrip: rebuilt board differs:\n%v", back)
	}
}
