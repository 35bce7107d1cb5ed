package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	return NewManager(store), store, mr
}

func TestManager_ReplaysCompletedResponse(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	calls := 0
	op := func(ctx context.Context) (interface{}, error) {
		calls++
		return map[string]any{"stampId": 42}, nil
	}

	first, err := m.Execute(ctx, "receipt:1:abc", time.Hour, op)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := m.Execute(ctx, "receipt:1:abc", time.Hour, op)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, map[string]interface{}{"stampId": float64(42)}, second.Response)
	assert.Equal(t, 1, calls)
}

func TestManager_FailedRunIsNotStored(t *testing.T) {
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := m.Execute(ctx, "k", time.Hour, func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	rec, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, rec)

	res, err := m.Execute(ctx, "k", time.Hour, func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Response)
}

func TestManager_LockedKeyIsInProgress(t *testing.T) {
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	ok, err := store.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = m.Execute(ctx, "k", time.Hour, func(ctx context.Context) (interface{}, error) {
		t.Fatal("operation must not run while locked")
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrRequestInProgress)
}

func TestManager_RecordExpires(t *testing.T) {
	m, _, mr := newTestManager(t)
	ctx := context.Background()

	calls := 0
	op := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}
	_, err := m.Execute(ctx, "k", time.Minute, op)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	res, err := m.Execute(ctx, "k", time.Minute, op)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, 2, calls)
}

func TestManager_NilOperation(t *testing.T) {
	m, _, _ := newTestManager(t)
	_, err := m.Execute(context.Background(), "k", time.Minute, nil)
	assert.Error(t, err)
}

type failingSetStore struct {
	*RedisStore
}

func (s failingSetStore) Set(context.Context, string, *Record, time.Duration) error {
	return errors.New("redis: connection pool timeout")
}

func TestManager_StoreFailureKeepsFreshResult(t *testing.T) {
	_, store, _ := newTestManager(t)
	m := NewManager(failingSetStore{store})
	ctx := context.Background()

	res, err := m.Execute(ctx, "k", time.Hour, func(ctx context.Context) (interface{}, error) {
		return "committed", nil
	})
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, "committed", res.Response)

	locked, err := store.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, locked, "lock must be released after the run")
}
