package repository

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KVStore is the key-value port the persistence gateway writes through. Values are opaque
// bytes; absence is reported as ErrKeyNotFound.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
