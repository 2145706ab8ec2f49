package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/store"
	"github.com/utafrali/storefront/pkg/logger"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, ttl), mr
}

func TestSessionKV_GetMissing(t *testing.T) {
	s, _ := setupTestRedis(t, time.Hour)

	v, ok, err := s.ForSession("abc").GetItem(context.Background(), store.CartKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSessionKV_SetUsesNamespacedKeyAndTTL(t *testing.T) {
	s, mr := setupTestRedis(t, time.Hour)

	require.NoError(t, s.ForSession("abc").SetItem(context.Background(), store.CartKey, "[]"))

	got, err := mr.Get("storefront:session:abc:cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
	assert.Equal(t, time.Hour, mr.TTL("storefront:session:abc:cart"))
}

func TestSessionKV_SessionsAreIsolated(t *testing.T) {
	s, _ := setupTestRedis(t, 0)
	ctx := context.Background()

	carts := store.NewCartStore(s.ForSession("one"), logger.Discard())
	cart := domain.NewCart(nil)
	_, err := carts.Add(ctx, cart, 1, "Widget", "In Stock", "Default", 2)
	require.NoError(t, err)

	other, err := store.NewCartStore(s.ForSession("two"), logger.Discard()).Load(ctx)
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	again, err := carts.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again.TotalQuantity())
}

func TestSessionKV_Expires(t *testing.T) {
	s, mr := setupTestRedis(t, time.Minute)
	kv := s.ForSession("abc")
	require.NoError(t, kv.SetItem(context.Background(), store.CartKey, "[]"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := kv.GetItem(context.Background(), store.CartKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionKV_BackendDown(t *testing.T) {
	s, mr := setupTestRedis(t, time.Minute)
	mr.Close()

	_, _, err := s.ForSession("abc").GetItem(context.Background(), store.CartKey)
	assert.Error(t, err)
}
