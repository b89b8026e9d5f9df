package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"pawconnect/internal/domain"
	"pawconnect/internal/repository"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// MigrateStore creates the table behind the SQL key-value store.
func MigrateStore(db *gorm.DB) error {
	return db.AutoMigrate(&repository.KVEntry{})
}

// MigrateSchema creates the relational tables for users, pets, bookings and reviews. The
// service keeps its state in the key-value store; these tables describe the same entities
// for a server-side backend.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Pet{},
		&domain.Booking{},
		&domain.Review{},
	)
}

// SeedPets inserts the pets that are not in the table yet and reports how many were added.
// Rows go in as column maps: a struct insert would replace Available=false with the column
// default.
func SeedPets(db *gorm.DB, pets []domain.Pet) (int64, error) {
	if len(pets) == 0 {
		return 0, nil
	}
	rows := make([]map[string]any, 0, len(pets))
	for _, p := range pets {
		rows = append(rows, map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"breed":       p.Breed,
			"age":         p.Age,
			"behavior":    p.Behavior,
			"available":   p.Available,
			"image_url":   p.ImageURL,
			"description": p.Description,
		})
	}
	res := db.Model(&domain.Pet{}).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}
