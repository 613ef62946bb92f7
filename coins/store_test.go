package coins

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/benz9527/xdsa/xlog"
)

func newTestRedisStore(t *testing.T) MemoStore {
	mredis := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mredis.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisMemoStore(client, "")
}

func newTestGormStore(t *testing.T, namespace string) MemoStore {
	logger := xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelError))
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: xlog.NewGormXLogger(logger, xlog.WithGormXLoggerLogLevel(glogger.Error)),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every new connection would open a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	store, err := NewGormMemoStore(db, namespace)
	require.NoError(t, err)
	return store
}

func testMemoStoreContract(t *testing.T, store MemoStore) {
	ctx := context.Background()
	scopeA, scopeB := Scope([]int{1, 5, 10, 25}), Scope([]int{5, 10})
	require.Equal(t, "1,5,10,25", scopeA)

	_, ok, err := store.Load(ctx, scopeA, 7)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Store(ctx, scopeA, 7, 3))
	require.NoError(t, store.Store(ctx, scopeA, 3, 3))
	require.NoError(t, store.Store(ctx, scopeB, 3, unreachable))
	count, ok, err := store.Load(ctx, scopeA, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, count)
	count, ok, err = store.Load(ctx, scopeB, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, unreachable, count)

	t.Log("overwrite keeps a single entry")
	require.NoError(t, store.Store(ctx, scopeA, 7, 2))
	count, _, err = store.Load(ctx, scopeA, 7)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	n, err := store.Len(ctx, scopeA)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, store.Clear(ctx, scopeA))
	n, err = store.Len(ctx, scopeA)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	n, err = store.Len(ctx, scopeB)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	t.Log("memoized solves through the store")
	res, err := Memoized(ctx, usCoins, 42, WithMemoStore(store))
	require.NoError(t, err)
	require.Equal(t, 5, res.Count)
	require.Equal(t, int64(132), res.Calls)
	require.Equal(t, 42, res.MemoEntries)

	res, err = Memoized(ctx, usCoins, 42, WithMemoStore(store))
	require.NoError(t, err)
	require.Equal(t, 5, res.Count)
	require.Equal(t, int64(1), res.Calls)
	require.Equal(t, 0, res.MemoEntries)
}

func TestMapMemoStore(t *testing.T) {
	testMemoStoreContract(t, NewMapMemoStore())
}

func TestRedisMemoStore(t *testing.T) {
	testMemoStoreContract(t, newTestRedisStore(t))
}

func TestRedisMemoStore_KeyLayout(t *testing.T) {
	mredis := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mredis.Addr()})
	defer func() { _ = client.Close() }()
	store := NewRedisMemoStore(client, "memo")
	require.NoError(t, store.Store(context.Background(), "5,10", 20, 2))
	require.True(t, mredis.Exists("memo:{5,10}"))
	require.Equal(t, "2", mredis.HGet("memo:{5,10}", "20"))

	mredis.HSet("memo:{5,10}", "15", "x")
	_, _, err := store.Load(context.Background(), "5,10", 15)
	require.Error(t, err)
}

func TestRedisMemoStore_Unavailable(t *testing.T) {
	mredis := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mredis.Addr(), MaxRetries: -1})
	defer func() { _ = client.Close() }()
	mredis.Close()
	_, err := Memoized(context.Background(), usCoins, 10, WithMemoStore(NewRedisMemoStore(client, "")))
	require.Error(t, err)
}

func TestGormMemoStore(t *testing.T) {
	testMemoStoreContract(t, newTestGormStore(t, "test"))
}

func TestGormMemoStore_Namespaces(t *testing.T) {
	logger := xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelError))
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: xlog.NewGormXLogger(logger),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer func() { _ = sqlDB.Close() }()

	a, err := NewGormMemoStore(db, "a")
	require.NoError(t, err)
	b, err := NewGormMemoStore(db, "")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.Store(ctx, "1", 4, 4))
	_, ok, err := b.Load(ctx, "1", 4)
	require.NoError(t, err)
	require.False(t, ok)
	n, err := a.Len(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = NewGormMemoStore(nil, "a")
	require.Error(t, err)
}
