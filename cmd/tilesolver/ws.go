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

package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/puzzle"
	"github.com/gorilla/websocket"
)

/*

websocket solving

Hosts that drive an animation want the solution moves one at a time
without holding an open POST.  The socket protocol is one inbound
board summary, then one outbound message per solution move, then a
summary message and a normal close.

*/

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// A solveStep is one streamed solution move.
type solveStep struct {
	Index int    `json:"index"`
	Move  string `json:"move"`
	Code  string `json:"code"`
}

// A solveDone trailer closes a streamed solution.
type solveDone struct {
	Done   bool   `json:"done"`
	Length int    `json:"length"`
	Path   string `json:"path"`
}

// solveSocketHandler upgrades the connection, reads one board
// summary, and streams the solution back move by move.  The solve
// itself runs on the connection's goroutine; each connection is one
// solve.
func solveSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	_, message, err := conn.ReadMessage()
	if err != nil {
		log.Printf("WebSocket read error: %v", err)
		return
	}
	var summary puzzle.Summary
	if err := json.Unmarshal(message, &summary); err != nil {
		writeSocketError(conn, err)
		return
	}
	board, err := puzzle.NewBoardFromSummary(&summary)
	if err != nil {
		writeSocketError(conn, err)
		return
	}

	moves := puzzle.Solve(board)
	path := puzzle.MovesPath(moves)
	for i, m := range moves {
		step := solveStep{Index: i, Move: m.String(), Code: path[i : i+1]}
		if err := writeSocketJSON(conn, step); err != nil {
			log.Printf("WebSocket write error at move %d: %v", i, err)
			return
		}
	}
	if err := writeSocketJSON(conn, solveDone{Done: true, Length: len(moves), Path: path}); err != nil {
		log.Printf("WebSocket close-summary write error: %v", err)
		return
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	log.Printf("Streamed %d-move solution over websocket.", len(moves))
}

// writeSocketJSON sends one JSON text message.
func writeSocketJSON(conn *websocket.Conn, body interface{}) error {
	bytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, bytes)
}

// writeSocketError reports a board problem to the peer and closes.
func writeSocketError(conn *websocket.Conn, err error) {
	if serr, ok := err.(puzzle.Error); ok {
		serr.Message = serr.Error()
		writeSocketJSON(conn, serr)
	} else {
		writeSocketJSON(conn, map[string]string{"message": err.Error()})
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseUnsupportedData, ""))
}
