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

// Package dbprep prepares the solver's storage system: it migrates
// the database schema, seeds the sample puzzle catalog, and clears
// the solver's cache keys.  The storage package calls EnsureData on
// every connect, so a fresh database comes up migrated and seeded.
package dbprep

import (
	"fmt"
	"os"

	_ "github.com/mattes/migrate/driver/postgres"
	"github.com/mattes/migrate/migrate"
)

// dbURL is the migration target, from the same environment variable
// the storage package connects with.
func dbURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "postgres://localhost/tilesolver?sslmode=disable"
}

// migrationsPath locates the SQL migration files that live alongside
// this package: $DBPREP_PATH if set, the dbprep directory when run
// from the repository root, the working directory otherwise.
func migrationsPath() string {
	if path := os.Getenv("DBPREP_PATH"); path != "" {
		return path
	}
	if fi, err := os.Stat("dbprep"); err == nil && fi.IsDir() {
		return "dbprep"
	}
	return "."
}

// SchemaVersion reports the migration version the database is at;
// zero means no schema is installed.
func SchemaVersion() (uint64, error) {
	return migrate.Version(dbURL(), migrationsPath())
}

// EnsureData brings the schema up to date.  Whenever that actually
// moves the version — a fresh database, or a new migration — the
// sample data is (re)seeded; an already-current database is left
// completely alone.
func EnsureData() error {
	before, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("can't read the schema version: %v", err)
	}
	if errs, ok := migrate.UpSync(dbURL(), migrationsPath()); !ok {
		return fmt.Errorf("schema migration failed: %v", errs)
	}
	after, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("can't re-read the schema version: %v", err)
	}
	if after == 0 {
		return fmt.Errorf("schema migration left the database at version 0")
	}
	if after == before {
		// nothing moved, so the seeds are already in place
		return nil
	}
	return DataUp()
}

// RemoveData tears the schema (and with it all stored data) down.
// A database with no schema installed is already torn down.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("can't read the schema version: %v", err)
	}
	if version == 0 {
		return nil
	}
	if errs, ok := migrate.DownSync(dbURL(), migrationsPath()); !ok {
		return fmt.Errorf("schema teardown failed: %v", errs)
	}
	return nil
}

// ReinitializeAll resets both halves of the storage system: the
// solver's cache keys are flushed and the database is torn down and
// rebuilt with the sample data.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("cache flush failed: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("database teardown failed: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("database rebuild failed: %v", err)
	}
	return nil
}
