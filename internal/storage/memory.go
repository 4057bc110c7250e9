package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-process key-value store with the same quota semantics
// as KVRepo. Useful for tests and for running without a database.
type MemoryKV struct {
	mu    sync.Mutex
	data  map[string][]byte
	quota int
}

func NewMemoryKV(quota int) *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}, quota: quota}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Put(ctx context.Context, key string, value []byte) error {
	return m.Update(ctx, key, func([]byte) ([]byte, error) { return value, nil })
}

func (m *MemoryKV) Update(_ context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var cur []byte
	if v, ok := m.data[key]; ok {
		cur = make([]byte, len(v))
		copy(cur, v)
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	if m.quota > 0 && len(next) > m.quota {
		return quotaError(len(next), m.quota)
	}
	stored := make([]byte, len(next))
	copy(stored, next)
	m.data[key] = stored
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
