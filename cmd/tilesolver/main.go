package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/KYDronePilot/sliding-tile-puzzle-solver/puzzle"
	"github.com/KYDronePilot/sliding-tile-puzzle-solver/storage"
)

// storageReady records whether the cache and database came up.  The
// server still solves without them; it just can't remember what it
// solved.
var storageReady bool

func main() {
	if cid, dbid, err := storage.Connect(); err != nil {
		log.Printf("Running without storage: %v", err)
	} else {
		storageReady = true
		defer storage.Close()
		log.Printf("Connected to cache at %q and database at %q.", cid, dbid)
	}

	http.HandleFunc("/api/solve", solveHandler)
	http.HandleFunc("/api/shuffle", shuffleHandler)
	http.HandleFunc("/api/catalog", catalogHandler)
	http.HandleFunc("/ws/solve", solveSocketHandler)

	// environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	err := http.ListenAndServe(port, nil)
	if err != nil {
		log.Fatal("Listener failure: ", err)
	}
}

/*

request handlers

*/

// solveHandler serves POSTed board summaries, preferring a stored
// solution over a fresh search when storage is up.
func solveHandler(w http.ResponseWriter, r *http.Request) {
	defer recoverHandler(w, r)
	if !allowMethod(w, r, "POST") {
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)

	if !storageReady {
		if _, err := puzzle.SolveHandler(w, r); err != nil {
			log.Printf("Solve failed, returned error.")
		}
		return
	}

	dec := json.NewDecoder(r.Body)
	var summary puzzle.Summary
	if err := dec.Decode(&summary); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	board, err := puzzle.NewBoardFromSummary(&summary)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	path, err := storage.SolvePath(board.Signature())
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	moves, err := puzzle.ParseMovesPath(path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"moves": words, "path": path, "length": len(moves),
	})
	log.Printf("Returned %d-move solution.", len(moves))
}

// shuffleHandler serves freshly generated boards.
func shuffleHandler(w http.ResponseWriter, r *http.Request) {
	defer recoverHandler(w, r)
	if !allowMethod(w, r, "POST") {
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	if _, err := puzzle.ShuffleHandler(w, r); err != nil {
		log.Printf("Shuffle failed, returned error.")
	}
}

// catalogHandler lists the stored starting puzzles.
func catalogHandler(w http.ResponseWriter, r *http.Request) {
	defer recoverHandler(w, r)
	if !allowMethod(w, r, "GET") {
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	if !storageReady {
		http.Error(w, "catalog requires storage", http.StatusServiceUnavailable)
		return
	}
	infos, err := storage.AllPuzzles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusOK, infos)
}

/*

utilities

*/

// allowMethod guards a handler's method, answering 405 otherwise.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// respond sends a JSON response body.
func respond(w http.ResponseWriter, status int, body interface{}) {
	bytes, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

// respondError sends an error as JSON, preserving structured Errors.
func respondError(w http.ResponseWriter, status int, err error) {
	if serr, ok := err.(puzzle.Error); ok {
		serr.Message = serr.Error()
		respond(w, status, serr)
		return
	}
	respond(w, status, map[string]string{"message": err.Error()})
}

// recoverHandler turns stray panics into 500 responses instead of
// dropped connections.
func recoverHandler(w http.ResponseWriter, r *http.Request) {
	if err := recover(); err != nil {
		log.Printf("Panic handling %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
