package puzzle

/*

Sliding-tile board representation

*/

import (
	"math/rand"
	"strconv"
	"strings"
)

// A Board is one N×N tile layout.  In addition to the tiles it
// caches the blank's index, remembers the direction of the move that
// produced it, and carries a shared read-only reference to the
// solved layout of the same size, which the heuristic compares
// against.  The solved board's reference points to itself.
type Board struct {
	size          int
	count         int // size², cached
	tiles         []Tile
	blankIndex    int
	lastDirection Direction
	solved        *Board
}

// NewBoard constructs a board of the given side length over the
// given tiles, which must be a permutation of the solved tile set.
// Passing nil tiles yields the solved layout.  The blank index is
// derived by scan.  Gives an Error if the size is below 2 or the
// tiles don't form a legal board.
func NewBoard(size int, solved *Board, tiles []Tile) (*Board, error) {
	if size < 2 {
		return nil, rangeError(SizeAttribute, size, 2)
	}
	count := size * size
	if tiles == nil {
		tiles = GenerateTiles(size)
	}
	if len(tiles) != count {
		return nil, Error{
			Scope:     BoardScope,
			Structure: AttributeValueStructure,
			Attribute: TilesAttribute,
			Condition: WrongBoardSizeCondition,
			Values:    ErrorData{len(tiles), count},
		}
	}
	b := &Board{
		size:          size,
		count:         count,
		tiles:         tiles,
		blankIndex:    -1,
		lastDirection: NoDirection,
		solved:        solved,
	}
	// validate the tile multiset: each of 1..n²−1 once, one blank
	seen := make([]bool, count)
	for i, t := range tiles {
		sym := t.Symbol()
		if t.IsBlank() {
			sym = count // blank occupies the spare slot
		}
		if sym < 1 || sym > count || seen[sym-1] {
			return nil, Error{
				Scope:     BoardScope,
				Structure: AttributeValueStructure,
				Attribute: TilesAttribute,
				Condition: BadTileSetCondition,
				Values:    ErrorData{i, t.Symbol()},
			}
		}
		seen[sym-1] = true
		if t.IsBlank() {
			b.blankIndex = i
		}
	}
	if b.blankIndex < 0 {
		return nil, Error{
			Scope:     BoardScope,
			Structure: AttributeStructure,
			Attribute: TilesAttribute,
			Condition: BadTileSetCondition,
			Values:    ErrorData{BlankSymbol},
		}
	}
	return b, nil
}

// NewSolvedBoard constructs the canonical solved board for the given
// side length.  Its solved reference points to itself.
func NewSolvedBoard(size int) (*Board, error) {
	b, err := NewBoard(size, nil, nil)
	if err != nil {
		return nil, err
	}
	b.solved = b
	return b, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// BlankIndex returns the cached index of the blank tile.
func (b *Board) BlankIndex() int {
	return b.blankIndex
}

// LastDirection returns the direction of the move that produced this
// board, or NoDirection for a root board.
func (b *Board) LastDirection() Direction {
	return b.lastDirection
}

// Tiles returns a copy of the board's tiles in reading order.
func (b *Board) Tiles() []Tile {
	return append([]Tile(nil), b.tiles...)
}

// At returns the tile in the given row and column.
func (b *Board) At(row, col int) Tile {
	return b.tiles[row*b.size+col]
}

// Equal reports whether two boards have the same tile layout.  Only
// the tiles matter; depth and move history are ignored.
func (b *Board) Equal(other *Board) bool {
	if b.count != other.count {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// fingerprint returns a compact injective encoding of the tile
// permutation, used as the closed-set key.  Symbols are joined with
// a separator so the blank's negative sentinel can't collide with a
// neighboring digit run.
func (b *Board) fingerprint() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(t.Symbol()))
	}
	return sb.String()
}

/*

Moves

*/

// IsValidMove reports whether the blank can legally move in the
// given direction: the move must not undo the previous one and must
// not push the blank off the board.
func (b *Board) IsValidMove(d Direction) bool {
	if d == NoDirection || d.Opposite() == b.lastDirection {
		return false
	}
	switch d {
	case Up:
		return b.blankIndex-b.size >= 0
	case Down:
		return b.blankIndex+b.size < b.count
	case Left:
		return b.blankIndex%b.size != 0
	case Right:
		return (b.blankIndex+1)%b.size != 0
	}
	return false
}

// Moves returns the legal moves from this board, in the fixed try
// order.
func (b *Board) Moves() []Direction {
	var moves []Direction
	for _, d := range moveOrder {
		if b.IsValidMove(d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// translateIndex returns the index reached by moving one step from
// the given position in the given direction.
func (b *Board) translateIndex(position int, d Direction) int {
	switch d {
	case Up:
		return position - b.size
	case Down:
		return position + b.size
	case Left:
		return position - 1
	}
	return position + 1
}

// MoveBlank slides the blank in the given direction, swapping it
// with the neighboring tile.  The move is applied in place; callers
// check legality first with IsValidMove or Moves.
func (b *Board) MoveBlank(d Direction) {
	target := b.translateIndex(b.blankIndex, d)
	b.tiles[target], b.tiles[b.blankIndex] = b.tiles[b.blankIndex], b.tiles[target]
	b.lastDirection = d
	b.blankIndex = target
}

/*

Shuffling

*/

// defaultSource is the random source used by Shuffle.  Tests that
// need reproducible boards use ShuffleWithSource instead.
var defaultSource = rand.New(rand.NewSource(rand.Int63()))

// Shuffle applies k uniformly random legal moves to the board.
// Because every step is a legal move and immediate reversals are
// never legal, the result is always solvable and never trivially
// undone.  After the walk the board's last direction is the last
// move chosen.
func (b *Board) Shuffle(k int) {
	b.ShuffleWithSource(k, defaultSource)
}

// ShuffleWithSource is Shuffle with an injected random source.
func (b *Board) ShuffleWithSource(k int, rng *rand.Rand) {
	for i := 0; i < k; i++ {
		moves := b.Moves()
		b.MoveBlank(moves[rng.Intn(len(moves))])
	}
}

/*

Pretty-printed boards in strings, for debugging and the CLI.

*/

// String gives a grid view of the board, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size-1; col++ {
			sb.WriteString(b.At(row, col).String())
			sb.WriteString(", ")
		}
		sb.WriteString(b.At(row, b.size-1).String())
		sb.WriteString("\n")
	}
	return sb.String()
}
