package main

import (
	"log"

	"github.com/joho/godotenv"

	"pawconnect/internal/config"
	"pawconnect/internal/database"
	"pawconnect/internal/modules/catalog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.MigrateStore(db); err != nil {
		log.Fatal("AutoMigrate kv_entries failed:", err)
	}
	if err := database.MigrateSchema(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Seeding pets...")
	n, err := database.SeedPets(db, catalog.DefaultPets)
	if err != nil {
		log.Fatal("seed pets failed:", err)
	}

	log.Printf("seed completed: pets_inserted=%d", n)
}
