package store

import (
	"context"
	"sync"

	"orbosis/pkg/types"
)

// Memory is the default backend: a process-lifetime keyed store, the
// closest analogue to a browser tab's storage.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return decodeProfile(m.entries[key]), nil
}

func (m *Memory) Set(ctx context.Context, key string, profile *types.Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = raw
	return nil
}

func (m *Memory) Merge(ctx context.Context, key string, patch *types.Profile) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged := mergeProfiles(decodeProfile(m.entries[key]), patch)

	raw, err := encodeProfile(merged)
	if err != nil {
		return nil, err
	}

	m.entries[key] = raw
	return merged, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *Memory) GetValue(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries[key], nil
}

func (m *Memory) SetValue(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}
