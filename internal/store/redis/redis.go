// Package redis stores per-session key-value data in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/store"
)

const keyPrefix = "storefront:session:"

// SessionStore hands out a store.KeyValue per session ID.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store. Values expire ttl
// after their last write; a zero ttl keeps them forever.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// ForSession returns the key-value view of one session.
func (s *SessionStore) ForSession(sessionID string) store.KeyValue {
	return &sessionKV{store: s, sessionID: sessionID}
}

func (s *SessionStore) key(sessionID, key string) string {
	return keyPrefix + sessionID + ":" + key
}

type sessionKV struct {
	store     *SessionStore
	sessionID string
}

func (kv *sessionKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := kv.store.client.Get(ctx, kv.store.key(kv.sessionID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (kv *sessionKV) SetItem(ctx context.Context, key, value string) error {
	if err := kv.store.client.Set(ctx, kv.store.key(kv.sessionID, key), value, kv.store.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
