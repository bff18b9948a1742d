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
	"os"

	"github.com/garyburd/redigo/redis"
)

// cacheKeyPatterns are the key families the solver writes: stored
// solutions and catalog boards.
var cacheKeyPatterns = []string{"SOL:*", "PID:*"}

// ClearCache removes the solver's cached entries.  Only the solver's
// own key families are deleted, so a shared redis instance keeps its
// other tenants' data.
func ClearCache() error {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	conn, err := redis.DialURL(url)
	if err != nil {
		return err
	}
	defer conn.Close()
	for _, pattern := range cacheKeyPatterns {
		keys, err := redis.Strings(conn.Do("KEYS", pattern))
		if err != nil {
			return fmt.Errorf("can't list cache keys %q: %v", pattern, err)
		}
		for _, key := range keys {
			if _, err := conn.Do("DEL", key); err != nil {
				return fmt.Errorf("can't delete cache key %q: %v", key, err)
			}
		}
	}
	return nil
}
