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

// Package storage persists the solver's work products: computed
// solutions keyed by board signature, and a catalog of named
// starting puzzles.  Both live in postgres; redis fronts them as a
// cache of the same JSON entries.
//
// The access patterns here are narrow, and the package is built
// around them rather than around general database plumbing.  Every
// entry is immutable once stored (an optimal path never changes, and
// catalog boards are never edited), so writes are insert-or-ignore,
// every database operation is a single auto-committed statement, and
// cache reads can never be stale.  The cache is strictly advisory:
// cache trouble is logged and degrades to a database read, while
// database trouble is a real error the caller sees.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/dbprep"
	"github.com/garyburd/redigo/redis"
	"github.com/jackc/pgx"
)

// connection state; the mutex covers the redis connection, which is
// not safe for interleaved use
var (
	rdc     redis.Conn
	rdURL   string
	rdMutex sync.Mutex
	pgConn  *pgx.Conn
	pgURL   string
)

// envOr reads a configuration variable with a localhost fallback.
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// Connect initializes the database if needed, then opens the cache
// and database connections.  It returns identifiers for the two
// connections, or an error if either could not be established.
func Connect() (cacheId, databaseId string, err error) {
	// make sure the database is initialized
	if err = dbprep.EnsureData(); err != nil {
		return "", "", fmt.Errorf("can't initialize database: %v", err)
	}

	rdMutex.Lock()
	defer rdMutex.Unlock()
	rdURL = envOr("REDIS_URL", "redis://localhost:6379/")
	pgURL = envOr("DATABASE_URL", "postgres://localhost/tilesolver?sslmode=disable")
	if rdc, err = redis.DialURL(rdURL); err != nil {
		return "", "", fmt.Errorf("no cache at %q: %v", rdURL, err)
	}
	cfg, err := pgx.ParseURI(pgURL)
	if err != nil {
		return "", "", fmt.Errorf("bad database URI %q: %v", pgURL, err)
	}
	if pgConn, err = pgx.Connect(cfg); err != nil {
		rdc.Close()
		rdc = nil
		return "", "", fmt.Errorf("no database at %q: %v", pgURL, err)
	}
	return rdURL, pgURL, nil
}

// Close shuts both connections down.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if pgConn != nil {
		pgConn.Close()
		pgConn = nil
	}
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

/*

the cache

Redis holds the JSON form of storage entries under their key.  Redis
connections can go away without warning, so a failed command redials
once before giving up.

*/

// cacheDo runs one redis command under the connection mutex.
func cacheDo(cmd string, args ...interface{}) (interface{}, error) {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return nil, errors.New("cache is not connected")
	}
	reply, err := rdc.Do(cmd, args...)
	if err == nil {
		return reply, nil
	}
	// redial once and retry
	rdc.Close()
	if rdc, err = redis.DialURL(rdURL); err != nil {
		rdc = nil
		return nil, fmt.Errorf("lost cache at %q: %v", rdURL, err)
	}
	return rdc.Do(cmd, args...)
}

// cacheGetJSON loads the entry stored under a key.  A miss — or any
// cache trouble, which only costs the caller a database read — comes
// back as false.
func cacheGetJSON(key string, into interface{}) bool {
	bytes, err := redis.Bytes(cacheDo("GET", key))
	if err == redis.ErrNil {
		return false
	}
	if err != nil {
		log.Printf("Cache read of %q failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal(bytes, into); err != nil {
		log.Printf("Cache entry %q doesn't unmarshal: %v", key, err)
		return false
	}
	return true
}

// cacheSetJSON stores an entry under a key.  Failures are logged and
// otherwise ignored; the database holds the durable copy.
func cacheSetJSON(key string, entry interface{}) {
	bytes, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Can't marshal cache entry %q: %v", key, err)
		return
	}
	if _, err := cacheDo("SET", key, bytes); err != nil {
		log.Printf("Cache write of %q failed: %v", key, err)
	}
}

/*

the database

*/

// database returns the open connection for direct statements.  Every
// statement this package issues is a standalone insert or select, so
// pgx's auto-commit is all the transaction handling it needs.
func database() (*pgx.Conn, error) {
	if pgConn == nil {
		return nil, errors.New("database is not connected")
	}
	return pgConn, nil
}
