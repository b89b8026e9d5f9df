package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row layout of the kv_entries table.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;index"`
}

func (KVEntry) TableName() string { return "kv_entries" }

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e KVEntry
	tx := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&e)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return e.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	e := KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KVEntry{}).Error
}

// DeleteOlderThan removes entries not written since cutoff and reports how many went.
func (s *GormStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&KVEntry{})
	return tx.RowsAffected, tx.Error
}
