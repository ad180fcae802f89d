// Package memory is a process-local ttl cache.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
	}
}

// Get returns content by key, nil if the key is absent or expired.
// Expired entries are evicted lazily.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(it.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil
	}

	return it.content
}

// Set ...
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	s.items[key] = item{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
	s.mu.Unlock()
}
