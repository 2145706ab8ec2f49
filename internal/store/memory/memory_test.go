package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValue_GetSet(t *testing.T) {
	kv := New()
	ctx := context.Background()

	_, ok, err := kv.GetItem(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.SetItem(ctx, "cart", "[]"))
	v, ok, err := kv.GetItem(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestKeyValue_ConcurrentAccess(t *testing.T) {
	kv := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kv.SetItem(ctx, "cart", "[]")
			_, _, _ = kv.GetItem(ctx, "cart")
		}()
	}
	wg.Wait()

	_, ok, _ := kv.GetItem(ctx, "cart")
	assert.True(t, ok)
}
