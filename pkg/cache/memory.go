package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps records in process memory. Useful for tests and for
// callers that manage persistence themselves. Entries never expire; the
// eviction policy is the caller's problem.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the record for key
func (s *MemoryStore) Get(key string) (Record, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	record, ok := value.(Record)
	return record, ok
}

// Put stores the record under key
func (s *MemoryStore) Put(key string, record Record) error {
	s.cache.Set(key, record, gocache.NoExpiration)
	return nil
}

// Has reports whether key is present
func (s *MemoryStore) Has(key string) bool {
	_, ok := s.cache.Get(key)
	return ok
}

// Flush is a no-op; Put writes through
func (s *MemoryStore) Flush() error {
	return nil
}
