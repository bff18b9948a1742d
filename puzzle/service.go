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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

RESTful wrappers over the solver, so it's easy to build web services
on top of it.  Handlers return their result to the golang caller as
well as the client, so servers can layer caching or persistence over
them without re-parsing their own responses.

Only three things can go wrong here: the request body doesn't
decode, the decoded values don't make a legal board, or the response
doesn't encode.  The first two go back as 400s carrying the
structured Error; the third shouldn't happen (every response is one
of this package's own small types) and degrades to a hand-built 500.

*/

// A Solution is the wire form of a solve result: the spelled-out
// move words, the compact single-character path, and the move count.
type Solution struct {
	Moves  []string `json:"moves"`
	Path   string   `json:"path"`
	Length int      `json:"length"`
}

// newSolution builds the wire form of a move sequence.
func newSolution(moves []Direction) *Solution {
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	return &Solution{Moves: words, Path: MovesPath(moves), Length: len(moves)}
}

// A ShuffleRequest asks for a freshly generated solvable board.
type ShuffleRequest struct {
	Size     int `json:"size"`
	Shuffles int `json:"shuffles"`
}

// SolveHandler is a POST handler that reads a JSON-encoded Summary
// from the request body, solves the board it describes, and sends
// the Solution as a 200 response.  The Solution is also returned to
// the golang caller; on failure both the client and the caller get
// the Error instead.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*Solution, error) {
	var summary Summary
	if e := json.NewDecoder(r.Body).Decode(&summary); e != nil {
		return nil, writeFailure(w, http.StatusBadRequest, decodeError(e))
	}
	board, e := NewBoardFromSummary(&summary)
	if e != nil {
		return nil, writeBoardFailure(w, "SolveHandler", e)
	}
	solution := newSolution(Solve(board))
	return solution, writeJSON(w, http.StatusOK, solution)
}

// ShuffleHandler is a POST handler that reads a JSON-encoded
// ShuffleRequest and responds with the Summary of a freshly shuffled
// solvable board.  Both the poster and the caller get the Summary
// (or the Error).
func ShuffleHandler(w http.ResponseWriter, r *http.Request) (*Summary, error) {
	var req ShuffleRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		return nil, writeFailure(w, http.StatusBadRequest, decodeError(e))
	}
	if req.Shuffles < 0 {
		return nil, writeFailure(w, http.StatusBadRequest,
			rangeError(FieldAttribute, req.Shuffles, 0))
	}
	root, e := NewGameBoard(req.Size, req.Shuffles)
	if e != nil {
		return nil, writeBoardFailure(w, "ShuffleHandler", e)
	}
	summary := root.Summary()
	return summary, writeJSON(w, http.StatusOK, summary)
}

/*

Utilities

*/

// decodeError describes a request body that didn't decode.
func decodeError(e error) Error {
	return Error{
		Scope:     RequestScope,
		Structure: AttributeStructure,
		Attribute: DecodeAttribute,
		Condition: GeneralCondition,
		Values:    ErrorData{e.Error()},
	}
}

// writeBoardFailure reports a failed board construction.  The
// constructors in this package always fail with an Error, which goes
// back as a 400; anything else means a misbehaving constructor, so
// the client gets a 500 naming the handler that saw it.
func writeBoardFailure(w http.ResponseWriter, location string, e error) error {
	if err, ok := e.(Error); ok {
		return writeFailure(w, http.StatusBadRequest, err)
	}
	return writeFailure(w, http.StatusInternalServerError, Error{
		Scope:     InternalScope,
		Structure: AttributeStructure,
		Attribute: LocationAttribute,
		Condition: GeneralCondition,
		Values:    ErrorData{location, e.Error()},
	})
}

// writeFailure verbalizes an Error and sends it to the client.  The
// Error comes back so handlers can hand it to their golang caller
// too.
func writeFailure(w http.ResponseWriter, status int, err Error) error {
	err.Message = err.Error()
	return writeJSON(w, status, err)
}

// writeJSON encodes and sends the client response.  It returns the
// response object when that object is an Error (so handlers can
// propagate it), an encoding Error if the encode itself fails, and
// nil otherwise.
func writeJSON(w http.ResponseWriter, status int, obj interface{}) error {
	bytes, e := json.Marshal(obj)
	if e != nil {
		// every response is one of this package's own types, so this
		// can't happen short of a broken encoder; hand-quote a
		// minimal 500 rather than recursing into another encode
		err := Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
		err.Message = err.Error()
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%q", err.Message)
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if err, ok := obj.(Error); ok {
		return err
	}
	return nil
}
