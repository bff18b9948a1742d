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

// Command-line client for the tile solver
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/puzzle"
	"github.com/KYDronePilot/sliding-tile-puzzle-solver/storage"
)

// storageReady records whether the solution cache came up.  Solving
// works without it; repeat solves just pay the full search again.
var storageReady bool

func main() {
	if cid, dbid, err := storage.Connect(); err != nil {
		log.Printf("Running without the solution cache: %v", err)
	} else {
		storageReady = true
		defer storage.Close()
		log.Printf("Connected to cache at %q and database at %q.", cid, dbid)
	}

	// catch signals
	shutdownOnSignal()

	// serve
	if err := listener(os.Stdout, os.Stdin); err != nil {
		log.Printf("CLI failure: %v", err)
		shutdown(listenerFailureShutdown)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "tilesolver> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, strings.ToLower(arg))
				}
			}
			dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*os.File, *request)
}

// the command dispatch info is sorted for easy usage printing, and
// then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"csv", "n,t0,t1,…", "load a board from its text form", csvHandler},
		{"move", "u|d|l|r", "move the blank one step", moveHandler},
		{"moves", "", "show the legal moves", movesHandler},
		{"new", "[n]", "start a solved n×n board (default 3)", newHandler},
		{"show", "", "show the current board", showHandler},
		{"shuffle", "[k]", "shuffle with k random moves (default 25)", shuffleHandler},
		{"solve", "", "solve the current board", solveHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(w, r)
	}
}

/*

request handlers

*/

// the board being worked on; every session starts with a solved 3×3
var currentBoard *puzzle.Board

// board returns the current board, creating the default if none has
// been made yet.
func board() *puzzle.Board {
	if currentBoard == nil {
		root, err := puzzle.NewGameBoard(3, 0)
		if err != nil {
			panic(err)
		}
		currentBoard = root.Board
	}
	return currentBoard
}

func newHandler(w *os.File, r *request) {
	size := 3
	if len(r.args) > 0 {
		var err error
		if size, err = strconv.Atoi(r.args[0]); err != nil {
			usageHandler(fmt.Sprintf("%s size (%s) is not a number", r.command, r.args[0]), w, r)
			return
		}
	}
	root, err := puzzle.NewGameBoard(size, 0)
	if err != nil {
		fmt.Fprintf(w, "Can't make a %d×%d board: %v\n", size, size, err)
		return
	}
	currentBoard = root.Board
	showHandler(w, r)
}

func shuffleHandler(w *os.File, r *request) {
	count := 25
	if len(r.args) > 0 {
		var err error
		if count, err = strconv.Atoi(r.args[0]); err != nil || count < 0 {
			usageHandler(fmt.Sprintf("%s count (%s) must be a non-negative number",
				r.command, r.args[0]), w, r)
			return
		}
	}
	b := board()
	root, err := puzzle.NewGameBoard(b.Size(), count)
	if err != nil {
		panic(err)
	}
	currentBoard = root.Board
	showHandler(w, r)
}

func csvHandler(w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s takes the board text form as one argument", r.command), w, r)
		return
	}
	b, err := puzzle.ParseBoard(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Parse failed: %v\n", err)
		return
	}
	currentBoard = b
	showHandler(w, r)
}

func showHandler(w *os.File, r *request) {
	b := board()
	fmt.Fprintf(w, "%s", b)
	if b.IsSolved() {
		fmt.Fprintf(w, "The board is solved.\n")
	}
}

func movesHandler(w *os.File, r *request) {
	moves := board().Moves()
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	fmt.Fprintf(w, "Legal moves: %s\n", strings.Join(words, ", "))
}

func moveHandler(w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one direction argument", r.command), w, r)
		return
	}
	move, ok := parseDirection(r.args[0])
	if !ok {
		usageHandler(fmt.Sprintf("%s direction (%s) must be one of u, d, l, r",
			r.command, r.args[0]), w, r)
		return
	}
	b := board()
	if !b.IsValidMove(move) {
		fmt.Fprintf(w, "Can't move %v here.\n", move)
		return
	}
	b.MoveBlank(move)
	showHandler(w, r)
}

func solveHandler(w *os.File, r *request) {
	b := board()
	var path string
	if storageReady {
		var err error
		if path, err = storage.SolvePath(b.Signature()); err != nil {
			fmt.Fprintf(w, "Solve failed: %v\n", err)
			return
		}
	} else {
		path = puzzle.MovesPath(puzzle.Solve(b))
	}
	if path == "" {
		fmt.Fprintf(w, "The board is already solved.\n")
		return
	}
	moves, err := puzzle.ParseMovesPath(path)
	if err != nil {
		panic(err)
	}
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	fmt.Fprintf(w, "Solution (%d moves): %s\n", len(moves), path)
	fmt.Fprintf(w, "  %s\n", strings.Join(words, ", "))
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-11s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("Error executing %q: %v\n", r.inline, err)
}

// parseDirection maps a direction word or its first letter to a
// move.
func parseDirection(arg string) (puzzle.Direction, bool) {
	switch arg {
	case "u", "up":
		return puzzle.Up, true
	case "d", "down":
		return puzzle.Down, true
	case "l", "left":
		return puzzle.Left, true
	case "r", "right":
		return puzzle.Right, true
	}
	return puzzle.NoDirection, false
}

/*

shutdown handling

*/

type shutdownCause int

const (
	unknownShutdown shutdownCause = iota
	runtimeFailureShutdown
	startupFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// for testing, allow shutdown to panic rather than exit
var alwaysPanic = false

// shutdown: process exit with logging.
func shutdown(cause shutdownCause) {
	if storageReady {
		storage.Close()
	}
	if alwaysPanic {
		panic(cause)
	}
	switch cause {
	case unknownShutdown:
		log.Fatal("Exiting: no cause given.")
	case startupFailureShutdown:
		log.Fatal("Exiting: initialization failure.")
	case caughtSignalShutdown:
		log.Fatal("Exiting: caught signal.")
	case listenerFailureShutdown:
		log.Fatal("Exiting: command listener failure.")
	default:
		log.Fatalf("Exiting: unknown cause: %v", cause)
	}
}

// shutdownOnSignal: catch signals and exit cleanly.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		s := <-c
		log.Printf("Received OS-level signal: %v", s)
		shutdown(caughtSignalShutdown)
	}()
}
