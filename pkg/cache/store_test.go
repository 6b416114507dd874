package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() Record {
	return Record{
		"id":   "123",
		"noms": []interface{}{map[string]interface{}{"region": "us", "text": "Test Game"}},
	}
}

func TestDiskStorePutGetBeforeFlush(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("game__Platform", testRecord()))

	record, ok := store.Get("game__Platform")
	require.True(t, ok)
	assert.Equal(t, "123", record["id"])
	assert.True(t, store.Has("game__Platform"))
}

func TestDiskStoreFlushPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("game__Platform", testRecord()))
	require.NoError(t, store.Flush())

	// A fresh store over the same directory sees the record.
	reopened, err := NewDiskStore(dir)
	require.NoError(t, err)

	record, ok := reopened.Get("game__Platform")
	require.True(t, ok)
	assert.Equal(t, "123", record["id"])

	// Nested values survive the JSON round trip as generic trees.
	noms, ok := record["noms"].([]interface{})
	require.True(t, ok)
	first, ok := noms[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Test Game", first["text"])
}

func TestDiskStoreFlushLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("a", testRecord()))
	require.NoError(t, store.Put("b", testRecord()))
	require.NoError(t, store.Flush())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, ".json", filepath.Ext(entry.Name()))
	}
}

func TestDiskStoreMiss(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("absent")
	assert.False(t, ok)
	assert.False(t, store.Has("absent"))
}

func TestDiskStoreKeysWithPathCharacters(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	// Keys derive from file names and platform names; none of this may
	// leak into the cache filename.
	key := `Sonic The Hedgehog (USA, Europe)__Sega/MegaDrive`
	require.NoError(t, store.Put(key, testRecord()))
	require.NoError(t, store.Flush())

	_, ok := store.Get(key)
	assert.True(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put("key", testRecord()))
	assert.True(t, store.Has("key"))

	record, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "123", record["id"])

	_, ok = store.Get("absent")
	assert.False(t, ok)

	assert.NoError(t, store.Flush())
}
