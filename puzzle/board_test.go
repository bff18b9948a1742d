package puzzle

import (
	"math/rand"
	"reflect"
	"testing"
)

/*

Test values

*/

var (
	// 28-move optimal start used throughout the solver tests
	scenarioSymbols = []int{8, 4, 6, 3, 7, 1, 5, 2, BlankSymbol}
	// one column conflict pair (tiles 6 and 3); an odd permutation,
	// so not reachable from the solved layout and never solved here
	conflictSymbols = []int{8, 4, 6, 1, 7, 3, 5, 2, BlankSymbol}
	// the same column conflict on a solvable board (tiles 5 and 2
	// exchanged)
	solvableConflictSymbols = []int{8, 4, 6, 1, 7, 3, 2, 5, BlankSymbol}
	// one move from solved: blank slides right
	oneAwaySymbols = []int{1, 2, 3, 4, 5, 6, 7, BlankSymbol, 8}
	solvedSymbols  = []int{1, 2, 3, 4, 5, 6, 7, 8, BlankSymbol}
	centerSymbols  = []int{8, 4, 6, 3, BlankSymbol, 1, 5, 2, 7}
	cornerSymbols  = []int{BlankSymbol, 4, 6, 3, 8, 1, 5, 2, 7}
)

func testTiles(symbols []int) []Tile {
	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		tiles[i] = NewTile(s)
	}
	return tiles
}

func mustBoard(t *testing.T, size int, symbols []int) *Board {
	t.Helper()
	solved, err := NewSolvedBoard(size)
	if err != nil {
		t.Fatalf("Failed to create solved board: %v", err)
	}
	if symbols == nil {
		return solved
	}
	b, err := NewBoard(size, solved, testTiles(symbols))
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return b
}

/*

construction

*/

func TestBoardConstruction(t *testing.T) {
	b := mustBoard(t, 3, scenarioSymbols)
	if b.Size() != 3 {
		t.Errorf("TestBoardConstruction: size is %d (expected 3)", b.Size())
	}
	if b.BlankIndex() != 8 {
		t.Errorf("TestBoardConstruction: blank index is %d (expected 8)", b.BlankIndex())
	}
	if b.LastDirection() != NoDirection {
		t.Errorf("TestBoardConstruction: last direction is %v (expected none)", b.LastDirection())
	}
	if !reflect.DeepEqual(b.Tiles(), testTiles(scenarioSymbols)) {
		t.Errorf("TestBoardConstruction: tiles are %v", b.Tiles())
	}
	if !reflect.DeepEqual(b.solved.Tiles(), testTiles(solvedSymbols)) {
		t.Errorf("TestBoardConstruction: solved tiles are %v", b.solved.Tiles())
	}
	if b.solved.solved != b.solved {
		t.Errorf("TestBoardConstruction: solved board's solved reference isn't itself")
	}
}

type badBoardTestcase struct {
	size    int
	symbols []int
}

func TestBoardConstructionFailures(t *testing.T) {
	tcs := []badBoardTestcase{
		{1, nil},                                        // size too small
		{3, []int{1, 2, 3}},                             // wrong tile count
		{2, []int{1, 2, 3, 4}},                          // no blank
		{2, []int{1, 1, 3, BlankSymbol}},                // repeated symbol
		{2, []int{1, 7, 3, BlankSymbol}},                // out-of-range symbol
		{2, []int{BlankSymbol, 2, 3, BlankSymbol}},      // two blanks
		{3, []int{0, 2, 3, 4, 5, 6, 7, 8, BlankSymbol}}, // zero symbol
	}
	for i, tc := range tcs {
		solved, err := NewSolvedBoard(3)
		if err != nil {
			t.Fatalf("case %d: failed to create solved board: %v", i+1, err)
		}
		var tiles []Tile
		if tc.symbols != nil {
			tiles = testTiles(tc.symbols)
		}
		if _, err := NewBoard(tc.size, solved, tiles); err == nil {
			t.Errorf("case %d: no error from bad board (size %d, %v)", i+1, tc.size, tc.symbols)
		} else if _, ok := err.(Error); !ok {
			t.Errorf("case %d: error is not an Error: %v", i+1, err)
		}
	}
}

func TestBoardIndex(t *testing.T) {
	b := mustBoard(t, 3, scenarioSymbols)
	if got := b.At(0, 0); got != NewTile(8) {
		t.Errorf("TestBoardIndex: (0,0) is %v (expected Tile 8)", got)
	}
	if got := b.At(1, 1); got != NewTile(7) {
		t.Errorf("TestBoardIndex: (1,1) is %v (expected Tile 7)", got)
	}
	if got := b.At(2, 2); !got.IsBlank() {
		t.Errorf("TestBoardIndex: (2,2) is %v (expected blank)", got)
	}
}

func TestBoardEquality(t *testing.T) {
	b1 := mustBoard(t, 3, scenarioSymbols)
	b2 := mustBoard(t, 3, scenarioSymbols)
	b3 := mustBoard(t, 3, conflictSymbols)
	if !b1.Equal(b2) {
		t.Errorf("TestBoardEquality: same layouts compare unequal")
	}
	if b1.Equal(b3) {
		t.Errorf("TestBoardEquality: different layouts compare equal")
	}
	if b1.fingerprint() != b2.fingerprint() {
		t.Errorf("TestBoardEquality: same layouts have different fingerprints")
	}
	if b1.fingerprint() == b3.fingerprint() {
		t.Errorf("TestBoardEquality: different layouts share a fingerprint")
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, 3, scenarioSymbols)
	expected := "Tile 8, Tile 4, Tile 6\nTile 3, Tile 7, Tile 1\nTile 5, Tile 2,       \n"
	if got := b.String(); got != expected {
		t.Errorf("TestBoardString: got %q (expected %q)", got, expected)
	}
}

/*

moves

*/

type moveLegalityTestcase struct {
	symbols  []int
	expected []Direction
}

func TestBoardMoves(t *testing.T) {
	tcs := []moveLegalityTestcase{
		{scenarioSymbols, []Direction{Up, Left}},          // blank bottom-right
		{centerSymbols, []Direction{Up, Down, Left, Right}}, // blank center
		{cornerSymbols, []Direction{Down, Right}},         // blank top-left
		{oneAwaySymbols, []Direction{Up, Left, Right}},    // blank bottom-center
	}
	for i, tc := range tcs {
		b := mustBoard(t, 3, tc.symbols)
		if got := b.Moves(); !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("TestBoardMoves case %d: got %v (expected %v)", i+1, got, tc.expected)
		}
	}
}

func TestBoardMovesExcludeReversal(t *testing.T) {
	b := mustBoard(t, 3, centerSymbols)
	b.MoveBlank(Up)
	for _, m := range b.Moves() {
		if m == Down {
			t.Errorf("TestBoardMovesExcludeReversal: reversal of %v offered after move", Up)
		}
	}
	if b.IsValidMove(Down) {
		t.Errorf("TestBoardMovesExcludeReversal: immediate reversal is valid")
	}
}

func TestBoardTranslateIndex(t *testing.T) {
	b := mustBoard(t, 3, scenarioSymbols)
	if got := b.translateIndex(0, Down); got != 3 {
		t.Errorf("TestBoardTranslateIndex: down from 0 is %d (expected 3)", got)
	}
	if got := b.translateIndex(0, Right); got != 1 {
		t.Errorf("TestBoardTranslateIndex: right from 0 is %d (expected 1)", got)
	}
	if got := b.translateIndex(8, Up); got != 5 {
		t.Errorf("TestBoardTranslateIndex: up from 8 is %d (expected 5)", got)
	}
	if got := b.translateIndex(8, Left); got != 7 {
		t.Errorf("TestBoardTranslateIndex: left from 8 is %d (expected 7)", got)
	}
}

type moveBlankTestcase struct {
	symbols  []int
	move     Direction
	expected []int
}

func TestBoardMoveBlank(t *testing.T) {
	tcs := []moveBlankTestcase{
		{scenarioSymbols, Up, []int{8, 4, 6, 3, 7, BlankSymbol, 5, 2, 1}},
		{scenarioSymbols, Left, []int{8, 4, 6, 3, 7, 1, 5, BlankSymbol, 2}},
		{cornerSymbols, Down, []int{3, 4, 6, BlankSymbol, 8, 1, 5, 2, 7}},
		{cornerSymbols, Right, []int{4, BlankSymbol, 6, 3, 8, 1, 5, 2, 7}},
	}
	for i, tc := range tcs {
		b := mustBoard(t, 3, tc.symbols)
		b.MoveBlank(tc.move)
		if !reflect.DeepEqual(b.Tiles(), testTiles(tc.expected)) {
			t.Errorf("TestBoardMoveBlank case %d: tiles are %v (expected %v)",
				i+1, b.Tiles(), testTiles(tc.expected))
		}
		if b.LastDirection() != tc.move {
			t.Errorf("TestBoardMoveBlank case %d: last direction is %v (expected %v)",
				i+1, b.LastDirection(), tc.move)
		}
		if !b.tiles[b.BlankIndex()].IsBlank() {
			t.Errorf("TestBoardMoveBlank case %d: blank index %d doesn't hold the blank",
				i+1, b.BlankIndex())
		}
	}
}

func TestDirectionOpposites(t *testing.T) {
	pairs := map[Direction]Direction{
		Up: Down, Down: Up, Left: Right, Right: Left, NoDirection: NoDirection,
	}
	for d, opp := range pairs {
		if got := d.Opposite(); got != opp {
			t.Errorf("TestDirectionOpposites: opposite of %v is %v (expected %v)", d, got, opp)
		}
	}
}

/*

shuffling

*/

func TestBoardShuffleInvariants(t *testing.T) {
	b := mustBoard(t, 4, nil)
	start, err := NewBoard(4, b, nil)
	if err != nil {
		t.Fatalf("TestBoardShuffleInvariants: failed to create board: %v", err)
	}
	start.ShuffleWithSource(200, rand.New(rand.NewSource(7)))
	// the tile multiset must survive any walk
	counts := make(map[int]int)
	for _, tile := range start.Tiles() {
		counts[tile.Symbol()]++
	}
	for sym := 1; sym < 16; sym++ {
		if counts[sym] != 1 {
			t.Errorf("TestBoardShuffleInvariants: symbol %d appears %d times", sym, counts[sym])
		}
	}
	if counts[BlankSymbol] != 1 {
		t.Errorf("TestBoardShuffleInvariants: blank appears %d times", counts[BlankSymbol])
	}
	if !start.tiles[start.BlankIndex()].IsBlank() {
		t.Errorf("TestBoardShuffleInvariants: blank index %d doesn't hold the blank", start.BlankIndex())
	}
	if start.LastDirection() == NoDirection {
		t.Errorf("TestBoardShuffleInvariants: shuffled board has no last direction")
	}
}

func TestBoardShuffleZero(t *testing.T) {
	solved := mustBoard(t, 3, nil)
	b, err := NewBoard(3, solved, nil)
	if err != nil {
		t.Fatalf("TestBoardShuffleZero: failed to create board: %v", err)
	}
	b.Shuffle(0)
	if !b.IsSolved() {
		t.Errorf("TestBoardShuffleZero: zero-shuffle board isn't solved:\n%v", b)
	}
}

func TestBoardShuffleDeterminism(t *testing.T) {
	first := mustBoard(t, 3, nil)
	b1, err := NewBoard(3, first, nil)
	if err != nil {
		t.Fatalf("TestBoardShuffleDeterminism: failed to create board: %v", err)
	}
	second := mustBoard(t, 3, nil)
	b2, err := NewBoard(3, second, nil)
	if err != nil {
		t.Fatalf("TestBoardShuffleDeterminism: failed to create board: %v", err)
	}
	b1.ShuffleWithSource(10, rand.New(rand.NewSource(42)))
	b2.ShuffleWithSource(10, rand.New(rand.NewSource(42)))
	if !b1.Equal(b2) {
		t.Errorf("TestBoardShuffleDeterminism: same seed gave different boards:\n%v\n%v", b1, b2)
	}
}
