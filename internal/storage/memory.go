package storage

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = errors.New("key not found")

// MemoryDB is a map-backed DB for tests and ephemeral caches. It does
// not implement Batcher, so batch users fall back to direct writes.
type MemoryDB struct {
	data map[string][]byte
}

// NewMemory creates an empty in-memory database.
func NewMemory() *MemoryDB {
	return &MemoryDB{data: make(map[string][]byte)}
}

func (m *MemoryDB) Get(key []byte) ([]byte, error) {
	v, ok := m.data[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *MemoryDB) Put(key, value []byte) error {
	m.data[string(key)] = value
	return nil
}

func (m *MemoryDB) Delete(key []byte) error {
	delete(m.data, string(key))
	return nil
}

func (m *MemoryDB) Has(key []byte) (bool, error) {
	_, ok := m.data[string(key)]
	return ok, nil
}

// ForEach visits every key with the given prefix, in no particular
// order.
func (m *MemoryDB) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	p := string(prefix)
	for k, v := range m.data {
		if !strings.HasPrefix(k, p) {
			continue
		}
		if err := fn([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryDB) Close() error {
	return nil
}
