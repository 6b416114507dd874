// Package cache provides the keyed blob store the engine parks raw
// provider responses in, so expensive identification calls happen at
// most once per distinct item.
package cache

// Record is one cached provider response: a tree of nested mappings and
// sequences exactly as decoded from the wire.
type Record = map[string]interface{}

// Store is the cache contract. Implementations serialize access per key;
// the engine performs no cross-key locking.
type Store interface {
	// Get returns the record for key and whether it was present.
	Get(key string) (Record, bool)
	// Put stores the record under key, replacing any previous value.
	Put(key string, record Record) error
	// Has reports whether key is present without fetching the record.
	Has(key string) bool
	// Flush persists any pending writes. A no-op for stores that write
	// through on Put.
	Flush() error
}
