package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DiskStore persists records as one JSON file per key. Writes are
// buffered in memory and hit the disk on Flush, with a temp-file plus
// atomic rename so a crash never leaves a half-written record behind.
type DiskStore struct {
	dir     string
	pending map[string]Record
	mu      sync.Mutex
}

// NewDiskStore creates a disk-backed store rooted at dir
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		pending: make(map[string]Record),
	}, nil
}

// keyPath maps an arbitrary cache key to a stable filename. Keys carry
// file names and platform names, so they are hashed rather than escaped.
func (s *DiskStore) keyPath(key string) string {
	sum := sha1.Sum([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}

// Get returns the record for key, checking pending writes first
func (s *DiskStore) Get(key string) (Record, bool) {
	s.mu.Lock()
	if record, ok := s.pending[key]; ok {
		s.mu.Unlock()
		return record, true
	}
	s.mu.Unlock()

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return nil, false
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false
	}
	return record, true
}

// Put buffers the record for key until the next Flush
func (s *DiskStore) Put(key string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = record
	return nil
}

// Has reports whether key is present in the pending buffer or on disk
func (s *DiskStore) Has(key string) bool {
	s.mu.Lock()
	if _, ok := s.pending[key]; ok {
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()

	_, err := os.Stat(s.keyPath(key))
	return err == nil
}

// Flush writes all pending records to disk
func (s *DiskStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, record := range s.pending {
		if err := s.writeRecord(key, record); err != nil {
			return err
		}
		delete(s.pending, key)
	}
	return nil
}

// writeRecord writes one record atomically
func (s *DiskStore) writeRecord(key string, record Record) error {
	path := s.keyPath(key)
	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(record); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode cache record: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync cache file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	return nil
}
