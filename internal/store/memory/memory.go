// Package memory provides a map-backed store.KeyValue.
package memory

import (
	"context"
	"sync"
)

// KeyValue is an in-process key-value map, safe for concurrent use.
type KeyValue struct {
	mu    sync.RWMutex
	items map[string]string
}

// New returns an empty KeyValue.
func New() *KeyValue {
	return &KeyValue{items: make(map[string]string)}
}

func (kv *KeyValue) GetItem(_ context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.items[key]
	return v, ok, nil
}

func (kv *KeyValue) SetItem(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.items[key] = value
	return nil
}
