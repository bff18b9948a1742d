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

solved solutions

*/

// A SolutionEntry is the stored form of one solved board: the
// board's text signature, its side length, and the optimal move path
// in wire form.
type SolutionEntry struct {
	Signature string // the board's text form, also the storage key
	Size      int32
	Path      string // solution moves, one of U/D/L/R per move
}

// key: compute the cache key for a solution entry.
func (se *SolutionEntry) key() string {
	return "SOL:" + se.Signature
}

// LookupSolution finds the stored solution for a board signature,
// checking the cache first and falling back to the database.  A
// database hit is written back to the cache.  An unsolved signature
// comes back as nil with no error.
func LookupSolution(signature string) (*SolutionEntry, error) {
	se := &SolutionEntry{}
	if cacheGetJSON("SOL:"+signature, se) && se.Signature == signature {
		return se, nil
	}
	db, err := database()
	if err != nil {
		return nil, err
	}
	se = &SolutionEntry{Signature: signature}
	row := db.QueryRow("SELECT size, path FROM solutions WHERE signature = $1", signature)
	switch err := row.Scan(&se.Size, &se.Path); err {
	case nil:
	case pgx.ErrNoRows:
		return nil, nil
	default:
		return nil, fmt.Errorf("solution lookup for %q failed: %v", signature, err)
	}
	cacheSetJSON(se.key(), se)
	return se, nil
}

// SolvePath returns the solution path for the given board signature,
// solving the board only when no stored solution exists and
// recording what it computes.  Parse failures surface before any
// search or storage traffic.
func SolvePath(signature string) (string, error) {
	board, err := puzzle.ParseBoard(signature)
	if err != nil {
		return "", err
	}
	// normalize the signature so equivalent spellings share an entry
	signature = board.Signature()
	if se, err := LookupSolution(signature); err != nil {
		return "", err
	} else if se != nil {
		return se.Path, nil
	}
	se := &SolutionEntry{
		Signature: signature,
		Size:      int32(board.Size()),
		Path:      puzzle.MovesPath(puzzle.Solve(board)),
	}
	if err := se.save(); err != nil {
		return "", err
	}
	return se.Path, nil
}

// save records a solution in the database and the cache.  A
// signature that was stored in the meantime keeps its first record.
func (se *SolutionEntry) save() error {
	db, err := database()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		"INSERT INTO solutions (signature, size, path, created) "+
			"VALUES ($1, $2, $3, $4) ON CONFLICT (signature) DO NOTHING",
		se.Signature, se.Size, se.Path, time.Now())
	if err != nil {
		return fmt.Errorf("can't save solution %q: %v", se.Signature, err)
	}
	cacheSetJSON(se.key(), se)
	return nil
}
