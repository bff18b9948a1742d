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

package storage

import (
	"fmt"
	"time"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/puzzle"
	"github.com/jackc/pgx"
)

/*

puzzle catalog

The catalog holds named starting boards: the samples dbprep seeds
plus whatever the generator stores.

*/

// A PuzzleInfo is the catalog's exported form of one stored puzzle.
type PuzzleInfo struct {
	PuzzleId string // the board signature, unique per layout
	Name     string // user-facing name of the puzzle
	Size     int    // board side length
	Tiles    []int  // tile symbols in reading order
}

// A catalogEntry is the stored form of a starting board, the shape
// that goes into the cache and the database.
type catalogEntry struct {
	PuzzleId string
	Name     string
	Size     int32
	Tiles    []int32
}

// key: compute the cache key for a catalog entry.
func (ce *catalogEntry) key() string {
	return "PID:" + ce.PuzzleId
}

// info - make the exported form of a catalog entry.
func (ce *catalogEntry) info() *PuzzleInfo {
	tiles := make([]int, len(ce.Tiles))
	for i, v := range ce.Tiles {
		tiles[i] = int(v)
	}
	return &PuzzleInfo{
		PuzzleId: ce.PuzzleId,
		Name:     ce.Name,
		Size:     int(ce.Size),
		Tiles:    tiles,
	}
}

// MakeBoard builds the board a catalog entry describes.  Panics on a
// malformed stored entry, since the catalog only accepts boards that
// validated at insert time.
func (pi *PuzzleInfo) MakeBoard() *puzzle.Board {
	board, err := puzzle.NewBoardFromSummary(&puzzle.Summary{Size: pi.Size, Tiles: pi.Tiles})
	if err != nil {
		panic(fmt.Errorf("catalog puzzle %q doesn't make a board: %v", pi.PuzzleId, err))
	}
	return board
}

// LookupPuzzle finds a catalog entry by id, checking the cache first
// and falling back to the database.  A database hit is written back
// to the cache.  An unknown id comes back as nil with no error.
func LookupPuzzle(id string) (*PuzzleInfo, error) {
	ce := &catalogEntry{}
	if cacheGetJSON("PID:"+id, ce) && ce.PuzzleId == id {
		return ce.info(), nil
	}
	db, err := database()
	if err != nil {
		return nil, err
	}
	ce = &catalogEntry{PuzzleId: id}
	row := db.QueryRow("SELECT name, size, tileList FROM puzzles WHERE puzzleId = $1", id)
	switch err := row.Scan(&ce.Name, &ce.Size, &ce.Tiles); err {
	case nil:
	case pgx.ErrNoRows:
		return nil, nil
	default:
		return nil, fmt.Errorf("catalog lookup for %q failed: %v", id, err)
	}
	cacheSetJSON(ce.key(), ce)
	return ce.info(), nil
}

// InsertPuzzle validates and stores a named starting board,
// returning its catalog id.  Inserting a layout that is already
// cataloged leaves the existing record (and its name) in place.
func InsertPuzzle(name string, sum *puzzle.Summary) (string, error) {
	board, err := puzzle.NewBoardFromSummary(sum)
	if err != nil {
		return "", err
	}
	tiles := make([]int32, len(sum.Tiles))
	for i, v := range sum.Tiles {
		tiles[i] = int32(v)
	}
	ce := &catalogEntry{
		PuzzleId: board.Signature(),
		Name:     name,
		Size:     int32(sum.Size),
		Tiles:    tiles,
	}
	db, err := database()
	if err != nil {
		return "", err
	}
	tag, err := db.Exec(
		"INSERT INTO puzzles (puzzleId, name, size, tileList, created) "+
			"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
		ce.PuzzleId, ce.Name, ce.Size, ce.Tiles, time.Now())
	if err != nil {
		return "", fmt.Errorf("can't save puzzle %q: %v", ce.PuzzleId, err)
	}
	// only a new record is cached; an existing one keeps its name
	if tag.RowsAffected() > 0 {
		cacheSetJSON(ce.key(), ce)
	}
	return ce.PuzzleId, nil
}

// AllPuzzles returns the catalog's entries in name order.  The
// catalog is read in one query; it stays small.
func AllPuzzles() ([]*PuzzleInfo, error) {
	db, err := database()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query("SELECT puzzleId, name, size, tileList FROM puzzles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("can't list the catalog: %v", err)
	}
	defer rows.Close()
	var infos []*PuzzleInfo
	for rows.Next() {
		ce := &catalogEntry{}
		if err := rows.Scan(&ce.PuzzleId, &ce.Name, &ce.Size, &ce.Tiles); err != nil {
			return nil, fmt.Errorf("can't read a catalog row: %v", err)
		}
		infos = append(infos, ce.info())
	}
	return infos, rows.Err()
}
