package main

import (
	"chat-circle/internal"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	ViewerPort     int    `env:"VIEWER_PORT,default=8090"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode, next to a running server
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Serve the inspector only
	stats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/inspect", internal.InspectHandler(db, stats))

	address := fmt.Sprintf("localhost:%d", config.ViewerPort)
	fmt.Printf("Viewer started at http://%s/inspect\n", address)
	if err := http.ListenAndServe(address, mux); err != nil {
		log.Printf("Viewer stopped: %v", err)
	}
}
