package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:kv_store_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&KVEntry{}))
	return db
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour)
}

func exerciseKVStore(t *testing.T, s KVStore) {
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "session:a:slot", []byte(`[1,2]`)))
	v, err := s.Get(ctx, "session:a:slot")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(v))

	require.NoError(t, s.Set(ctx, "session:a:slot", []byte(`[3]`)))
	v, err = s.Get(ctx, "session:a:slot")
	require.NoError(t, err)
	assert.Equal(t, `[3]`, string(v), "set must overwrite")

	require.NoError(t, s.Delete(ctx, "session:a:slot"))
	_, err = s.Get(ctx, "session:a:slot")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, s.Delete(ctx, "never-written"))
}

func TestMemoryStore(t *testing.T) {
	exerciseKVStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
	assert.Equal(t, 1, s.Len())
}

func TestRedisStore(t *testing.T) {
	exerciseKVStore(t, newTestRedisStore(t))
}

func TestRedisStore_SetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, 30*time.Minute)
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	assert.Equal(t, 30*time.Minute, mr.TTL("k"))

	mr.FastForward(31 * time.Minute)
	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_TTLCountsFromLastWrite(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, 30*time.Minute)
	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	mr.FastForward(20 * time.Minute)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, mr.TTL("k"), "reads leave the TTL alone")

	require.NoError(t, s.Set(ctx, "k", []byte("w")))
	assert.Equal(t, 30*time.Minute, mr.TTL("k"))

	mr.FastForward(20 * time.Minute)
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "w", string(v))
}

func TestGormStore(t *testing.T) {
	exerciseKVStore(t, NewGormStore(openTestDB(t)))
}

func TestGormStore_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	s := NewGormStore(db)

	require.NoError(t, s.Set(ctx, "old", []byte("1")))
	require.NoError(t, s.Set(ctx, "fresh", []byte("2")))
	require.NoError(t, db.Model(&KVEntry{}).Where("entry_key = ?", "old").
		Update("updated_at", time.Now().Add(-48*time.Hour)).Error)

	n, err := s.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = s.Get(ctx, "fresh")
	assert.NoError(t, err)
}
