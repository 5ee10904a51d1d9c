package mobile

import (
	"log"
	"net/http"

	"shashki/internal/server/game"
	httpserver "shashki/internal/server/http"
	"shashki/internal/storage"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// dbDir: directory for the scoreboard, empty keeps it in memory
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, dbDir string, port string) {
	scores, err := storage.Open(dbDir)
	if err != nil {
		log.Printf("Failed to open scoreboard, falling back to memory: %v", err)
		if scores, err = storage.Open(""); err != nil {
			log.Printf("Scoreboard unavailable: %v", err)
			return
		}
	}

	api := httpserver.NewHandler(game.NewManager(scores), scores)
	srv := httpserver.NewServer(api, webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		defer scores.Close()
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
