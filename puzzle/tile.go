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
	"fmt"
)

// BlankSymbol is the sentinel symbol carried by the blank tile.  It
// is the only negative symbol a well-formed board contains, so it
// stays unambiguous in fingerprints and text forms.
const BlankSymbol = -1

// A Tile is a value type identifying one piece of the board by its
// integer symbol.  Tiles are copied by assignment; equality and
// print form derive solely from the symbol.
type Tile struct {
	symbol int
}

// NewTile constructs a tile with the given symbol.
func NewTile(symbol int) Tile {
	return Tile{symbol: symbol}
}

// Symbol returns the tile's symbol.
func (t Tile) Symbol() int {
	return t.symbol
}

// IsBlank reports whether the tile is the blank.
func (t Tile) IsBlank() bool {
	return t.symbol == BlankSymbol
}

// Tiles implement Stringer: "Tile k" for numbered tiles, six spaces
// for the blank so grids stay aligned.
func (t Tile) String() string {
	if t.IsBlank() {
		return "      "
	}
	return fmt.Sprintf("Tile %d", t.symbol)
}

// GenerateTiles returns the tiles of a solved board of side length
// n: symbols 1 through n²−1 in order, then the blank.
func GenerateTiles(n int) []Tile {
	tiles := make([]Tile, 0, n*n)
	for i := 1; i < n*n; i++ {
		tiles = append(tiles, NewTile(i))
	}
	return append(tiles, NewTile(BlankSymbol))
}
