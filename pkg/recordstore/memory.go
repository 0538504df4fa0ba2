package recordstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process Store used in tests and the testing
// environment. A single mutex serializes all mutations, giving it the same
// per-key write serialization as PostgresStore.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

// Load returns the collection for key, empty when absent or corrupt.
func (s *MemoryStore) Load(ctx context.Context, key Key) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeRecords(s.collections[key.String()]), nil
}

// Save overwrites the collection.
func (s *MemoryStore) Save(ctx context.Context, key Key, records []json.RawMessage) error {
	payload, err := encodeRecords(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[key.String()] = payload
	return nil
}

// UpsertNewest prepends record to the collection.
func (s *MemoryStore) UpsertNewest(ctx context.Context, key Key, record json.RawMessage) error {
	return s.mutate(key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return prependRecord(records, record), true
	})
}

// ToggleFavorite flips isFavorite on the matching record; no-op when absent.
func (s *MemoryStore) ToggleFavorite(ctx context.Context, key Key, recordID string) error {
	return s.mutate(key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return toggleFavoriteIn(records, recordID)
	})
}

// DeleteRecord removes the matching record; no-op when absent.
func (s *MemoryStore) DeleteRecord(ctx context.Context, key Key, recordID string) error {
	return s.mutate(key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return deleteRecordIn(records, recordID)
	})
}

// SetRaw seeds a collection payload directly, bypassing encoding.
// Intended for corrupt-payload tests.
func (s *MemoryStore) SetRaw(key Key, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[key.String()] = payload
}

func (s *MemoryStore) mutate(key Key, fn func([]json.RawMessage) ([]json.RawMessage, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, changed := fn(decodeRecords(s.collections[key.String()]))
	if !changed {
		return nil
	}
	payload, err := encodeRecords(records)
	if err != nil {
		return err
	}
	s.collections[key.String()] = payload
	return nil
}
