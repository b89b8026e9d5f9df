package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/domain"
	"pawconnect/internal/repository"
)

func TestMigrate_CreatesTables(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:database_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	require.NoError(t, MigrateStore(db))
	require.NoError(t, MigrateSchema(db))

	m := db.Migrator()
	assert.True(t, m.HasTable(&repository.KVEntry{}))
	assert.True(t, m.HasTable("users"))
	assert.True(t, m.HasTable("pets"))
	assert.True(t, m.HasTable("bookings"))
	assert.True(t, m.HasTable("reviews"))
	assert.False(t, m.HasColumn(&domain.Review{}, "username"))
}

func TestSchema_Defaults(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:database_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, MigrateSchema(db))

	require.NoError(t, db.Exec(`INSERT INTO bookings (id, user_id, pet_id, pet_name, breed, subscription_type, date, time, created_at)
		VALUES ('b1', 'u1', '3', 'Luna', 'Siberian Husky', 'daily', '2025-06-01', '10:00 AM', CURRENT_TIMESTAMP)`).Error)

	var b domain.Booking
	require.NoError(t, db.First(&b, "id = ?", "b1").Error)
	assert.False(t, b.ChecklistCompleted)

	require.NoError(t, db.Create(&domain.User{ID: "u1", Username: "alice", Password: "pw", Role: domain.RoleOwner}).Error)
	err = db.Create(&domain.User{ID: "u2", Username: "alice", Password: "pw", Role: domain.RoleCompanion}).Error
	assert.Error(t, err, "username is unique")
}

func TestSeedPets_KeepsUnavailableAndIsIdempotent(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:database_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, MigrateSchema(db))

	pets := []domain.Pet{
		{ID: "1", Name: "Max", Breed: "Golden Retriever", Age: 3, Behavior: "Friendly", Available: true},
		{ID: "6", Name: "Charlie", Breed: "Labrador Retriever", Age: 2, Behavior: "Social", Available: false},
	}
	n, err := SeedPets(db, pets)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var charlie domain.Pet
	require.NoError(t, db.First(&charlie, "id = ?", "6").Error)
	assert.False(t, charlie.Available)

	n, err = SeedPets(db, pets)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	var count int64
	require.NoError(t, db.Model(&domain.Pet{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
