package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"pawconnect/internal/config"
	"pawconnect/internal/database"
	"pawconnect/internal/repository"
)

// Deletes SQL-store session entries untouched for longer than SESSION_TTL.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.StoreDriver != config.StoreSQL {
		log.Printf("session cleanup skipped: store=%s expires entries on its own or keeps none", cfg.StoreDriver)
		return
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.SessionTTL)
	n, err := repository.NewGormStore(db).DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("cleanup kv_entries failed: %v", err)
	}

	log.Printf("session cleanup completed: kv_entries=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
}
