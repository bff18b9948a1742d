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

package dbprep

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx"
)

/*

sample catalog data

Each sample is a named starting board known to be reachable from the
solved layout.  The classic-28 board is the canonical hard 3×3 start
whose optimal solution is 28 moves.

*/

type samplePuzzle struct {
	name  string
	size  int32
	tiles []int32
}

var samplePuzzles = []samplePuzzle{
	{"classic-28", 3, []int32{8, 4, 6, 3, 7, 1, 5, 2, -1}},
	{"column-cross", 3, []int32{8, 4, 6, 1, 7, 3, 2, 5, -1}},
	{"one-away", 3, []int32{1, 2, 3, 4, 5, 6, 7, -1, 8}},
	{"fifteen-three", 4, []int32{1, 2, 3, 4, 5, 6, -1, 8, 9, 10, 7, 11, 13, 14, 15, 12}},
}

// signature - the board's text form, used as its catalog id.
func (sp *samplePuzzle) signature() string {
	id := strconv.Itoa(int(sp.size))
	for _, t := range sp.tiles {
		id += "," + strconv.Itoa(int(t))
	}
	return id
}

// DataUp loads the sample puzzles into the catalog.  You should do
// this after you get the schema up!  Samples that are already
// cataloged are left in place, so reseeding is harmless.
func DataUp() error {
	return withSeedTx(func(tx *pgx.Tx) error {
		for _, sp := range samplePuzzles {
			_, err := tx.Exec(
				"INSERT INTO puzzles (puzzleId, name, size, tileList, created) "+
					"VALUES ($1, $2, $3, $4, $5) ON CONFLICT (puzzleId) DO NOTHING",
				sp.signature(), sp.name, sp.size, sp.tiles, time.Now())
			if err != nil {
				return fmt.Errorf("can't insert sample %q: %v", sp.name, err)
			}
		}
		return nil
	})
}

// DataDown removes the sample puzzles from the catalog.  You should
// do this before you tear the schema down!
func DataDown() error {
	return withSeedTx(func(tx *pgx.Tx) error {
		for _, sp := range samplePuzzles {
			if _, err := tx.Exec(
				"DELETE FROM puzzles WHERE puzzleId = $1", sp.signature()); err != nil {
				return fmt.Errorf("can't delete sample %q: %v", sp.name, err)
			}
		}
		return nil
	})
}

// withSeedTx opens its own short-lived connection and runs the seed
// work in one transaction, so the samples land (or vanish) all
// together.  Seeding happens before the storage package connects,
// which is why it can't borrow that package's connection.
func withSeedTx(work func(*pgx.Tx) error) error {
	cfg, err := pgx.ParseURI(dbURL())
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("can't open a seed transaction: %v", err)
	}
	if err := work(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
