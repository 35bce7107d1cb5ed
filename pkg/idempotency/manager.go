package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"scoup/pkg/apperr"

	"github.com/rs/zerolog/log"
)

const defaultLockTTL = time.Minute

// ErrRequestInProgress is returned while another request holds the key.
var ErrRequestInProgress = apperr.Conflict("REQUEST_IN_PROGRESS", "request with this key is already in progress")

type Operation func(ctx context.Context) (interface{}, error)

// Result carries either the fresh response or, when FromCache is set, the
// stored JSON of the first successful run.
type Result struct {
	Response  interface{}
	FromCache bool
}

type Manager struct {
	store   Store
	lockTTL time.Duration
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, lockTTL: defaultLockTTL}
}

// Execute runs fn once per key. A completed key replays its stored
// response; a key whose first run is still going fails with
// ErrRequestInProgress. Failed runs are not stored, so the key can be retried.
// Once fn succeeds its result is returned even if it cannot be stored.
func (m *Manager) Execute(ctx context.Context, key string, ttl time.Duration, fn Operation) (*Result, error) {
	if fn == nil {
		return nil, errors.New("operation fn cannot be nil")
	}

	if res, err := m.replay(ctx, key); res != nil || err != nil {
		return res, err
	}

	locked, err := m.store.Lock(ctx, key, m.lockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrRequestInProgress
	}
	defer func() { _ = m.store.ReleaseLock(context.WithoutCancel(ctx), key) }()

	// finished between the first read and the lock
	if res, err := m.replay(ctx, key); res != nil || err != nil {
		return res, err
	}

	result, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	// fn has committed; a storage failure only costs the replay
	if err := m.remember(ctx, key, result, ttl); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("idempotent response not stored")
	}
	return &Result{Response: result}, nil
}

func (m *Manager) remember(ctx context.Context, key string, result interface{}, ttl time.Duration) error {
	responseBytes, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, key, &Record{Status: StatusCompleted, Response: responseBytes}, ttl)
}

func (m *Manager) replay(ctx context.Context, key string) (*Result, error) {
	record, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Status != StatusCompleted {
		return nil, nil
	}

	var response interface{}
	if len(record.Response) > 0 {
		if err := json.Unmarshal(record.Response, &response); err != nil {
			return nil, err
		}
	}
	return &Result{Response: response, FromCache: true}, nil
}
