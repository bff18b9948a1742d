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
	"strconv"
	"strings"
)

/*

The text codec: the compact board and solution strings used across
host boundaries that cannot pass structured data.

A board travels as "n,t0,t1,…" — the side length followed by the n²
tile symbols in reading order, the blank encoded as −1.  A solution
travels as a string of single-character move codes, one of U, D, L,
R per move.

*/

// directionCodes maps each direction to its single-character wire
// code.
var directionCodes = [MaxDirection]byte{
	Up:    'U',
	Down:  'D',
	Left:  'L',
	Right: 'R',
}

// ParseBoard parses the comma-separated board form into a Board
// backed by a fresh solved reference.  It gives an Error naming the
// offending field if the size is not an integer or below 2, the
// field count is not n²+1, any tile field is not an integer, or the
// symbols are not exactly {1,…,n²−1, −1}.
func ParseBoard(csv string) (*Board, error) {
	fields := strings.Split(csv, ",")
	size, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: SizeAttribute,
			Condition: NonIntegerCondition,
			Values:    ErrorData{fields[0]},
		}
	}
	if size < 2 {
		return nil, rangeError(SizeAttribute, size, 2)
	}
	if len(fields) != size*size+1 {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeStructure,
			Attribute: TilesAttribute,
			Condition: WrongFieldCountCondition,
			Values:    ErrorData{len(fields), size*size + 1},
		}
	}
	tiles := make([]Tile, 0, size*size)
	for i, field := range fields[1:] {
		symbol, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: FieldAttribute,
				Condition: NonIntegerCondition,
				Values:    ErrorData{i + 1, field},
			}
		}
		tiles = append(tiles, NewTile(symbol))
	}
	solved, err := NewSolvedBoard(size)
	if err != nil {
		return nil, err
	}
	return NewBoard(size, solved, tiles)
}

// Signature returns the board's comma-separated text form, the
// inverse of ParseBoard.  It is also the key solved boards are
// cached under.
func (b *Board) Signature() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.size))
	for _, t := range b.tiles {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(t.Symbol()))
	}
	return sb.String()
}

// MovesPath encodes a move sequence as its single-character wire
// form.
func MovesPath(moves []Direction) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteByte(directionCodes[m])
	}
	return sb.String()
}

// ParseMovesPath decodes a single-character move string back into a
// move sequence, giving an Error on any unknown code.
func ParseMovesPath(path string) ([]Direction, error) {
	moves := make([]Direction, 0, len(path))
	for i := 0; i < len(path); i++ {
		var move Direction
		switch path[i] {
		case 'U':
			move = Up
		case 'D':
			move = Down
		case 'L':
			move = Left
		case 'R':
			move = Right
		default:
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: DirectionAttribute,
				Condition: UnknownDirectionCondition,
				Values:    ErrorData{string(path[i])},
			}
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// SolveBoard is the text-level solve seam: it parses the board form,
// solves it, and returns the solution moves in wire form.  Parse
// failures come back before any search begins.
func SolveBoard(csv string) (string, error) {
	board, err := ParseBoard(csv)
	if err != nil {
		return "", err
	}
	return MovesPath(Solve(board)), nil
}
