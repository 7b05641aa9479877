// Package memory contains in-memory storage with expiration of values.
package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const cleanupInterval = time.Minute

// Storage keeps content until its ttl is expired.
type Storage struct {
	c *cache.Cache
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		c: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Get returns content by key or nil when it's missed or expired.
func (s *Storage) Get(key string) []byte {
	v, ok := s.c.Get(key)
	if !ok {
		return nil
	}

	return v.([]byte)
}

// Set puts content by key for duration. Non-positive duration means content is not stored.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	if duration <= 0 {
		return
	}

	s.c.Set(key, content, duration)
}
