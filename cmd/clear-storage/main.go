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

// Remove all tile solver storage: cache and database both
package main

import (
	"log"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/dbprep"
)

func main() {
	log.Printf("Clearing cache...")
	if err := dbprep.ClearCache(); err != nil {
		log.Fatalf("Couldn't clear cache: %v", err)
	}
	log.Printf("Removing database tables...")
	if err := dbprep.RemoveData(); err != nil {
		log.Fatalf("Couldn't remove database tables: %v", err)
	}
	log.Printf("Storage cleared.")
}
