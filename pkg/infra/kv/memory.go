package kv

import (
	"context"
	"sync"
)

// Memory is a map-backed store for tests and dry runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// GetValue returns the stored value or defaultValue when absent.
func (s *Memory) GetValue(_ context.Context, key, defaultValue string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

// SetValue associates key with value.
func (s *Memory) SetValue(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
