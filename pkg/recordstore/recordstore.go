// Package recordstore persists per-user JSON record collections.
//
// Each (kind, user) pair owns one independent collection stored as a single
// jsonb document, newest record first. Reads never fail on missing or
// unparsable data; both count as "no records yet". Every mutation locks the
// collection row for the duration of its load-then-save cycle, so concurrent
// writers to the same key serialize instead of silently losing updates.
package recordstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aikombin/aikombin-server/pkg/database"
)

// Store is the persistence interface injected into every flow that touches
// record collections. No component reaches into storage directly.
type Store interface {
	// Load returns the stored collection, or an empty slice when the
	// collection is absent or its payload cannot be parsed.
	Load(ctx context.Context, key Key) ([]json.RawMessage, error)

	// Save overwrites the entire collection.
	Save(ctx context.Context, key Key, records []json.RawMessage) error

	// UpsertNewest prepends record to the collection. New records are
	// always ordered first.
	UpsertNewest(ctx context.Context, key Key, record json.RawMessage) error

	// ToggleFavorite flips the isFavorite field of the record with the
	// given id. A missing id is a silent no-op.
	ToggleFavorite(ctx context.Context, key Key, recordID string) error

	// DeleteRecord removes the record with the given id. A missing id is
	// a silent no-op.
	DeleteRecord(ctx context.Context, key Key, recordID string) error
}

// PostgresStore implements Store on a record_collections jsonb table.
type PostgresStore struct {
	db *database.Database
}

// NewPostgresStore returns a PostgresStore backed by the given pool.
func NewPostgresStore(db *database.Database) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	selectPayload          = `SELECT payload FROM record_collections WHERE collection_key = $1`
	selectPayloadForUpdate = selectPayload + ` FOR UPDATE`
	upsertPayload          = `INSERT INTO record_collections (collection_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (collection_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

// Load returns the collection for key, empty when absent or corrupt.
func (s *PostgresStore) Load(ctx context.Context, key Key) ([]json.RawMessage, error) {
	var payload []byte
	err := s.db.DB().QueryRowContext(ctx, selectPayload, key.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}
	return decodeRecords(payload), nil
}

// Save overwrites the collection in a single statement.
func (s *PostgresStore) Save(ctx context.Context, key Key, records []json.RawMessage) error {
	payload, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	if _, err := s.db.DB().ExecContext(ctx, upsertPayload, key.String(), payload); err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}

// UpsertNewest prepends record inside one serialized load-then-save cycle.
func (s *PostgresStore) UpsertNewest(ctx context.Context, key Key, record json.RawMessage) error {
	return s.mutate(ctx, key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return prependRecord(records, record), true
	})
}

// ToggleFavorite flips isFavorite on the matching record; no-op when absent.
func (s *PostgresStore) ToggleFavorite(ctx context.Context, key Key, recordID string) error {
	return s.mutate(ctx, key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return toggleFavoriteIn(records, recordID)
	})
}

// DeleteRecord removes the matching record; no-op when absent.
func (s *PostgresStore) DeleteRecord(ctx context.Context, key Key, recordID string) error {
	return s.mutate(ctx, key, func(records []json.RawMessage) ([]json.RawMessage, bool) {
		return deleteRecordIn(records, recordID)
	})
}

// mutate runs fn over the collection with the row locked. fn returns the new
// collection and whether anything changed; unchanged collections skip the write.
func (s *PostgresStore) mutate(ctx context.Context, key Key, fn func([]json.RawMessage) ([]json.RawMessage, bool)) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var payload []byte
		err := tx.QueryRowContext(ctx, selectPayloadForUpdate, key.String()).Scan(&payload)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock collection %s: %w", key, err)
		}

		records, changed := fn(decodeRecords(payload))
		if !changed {
			return nil
		}

		encoded, err := encodeRecords(records)
		if err != nil {
			return fmt.Errorf("encode collection %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, upsertPayload, key.String(), encoded); err != nil {
			return fmt.Errorf("write collection %s: %w", key, err)
		}
		return nil
	})
}

func prependRecord(records []json.RawMessage, record json.RawMessage) []json.RawMessage {
	return append([]json.RawMessage{record}, records...)
}

// toggleFavoriteIn flips isFavorite on the record whose id matches.
// Reports false when nothing changed.
func toggleFavoriteIn(records []json.RawMessage, recordID string) ([]json.RawMessage, bool) {
	for i, raw := range records {
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		if id, _ := fields["id"].(string); id != recordID {
			continue
		}
		fav, _ := fields["isFavorite"].(bool)
		fields["isFavorite"] = !fav
		updated, err := json.Marshal(fields)
		if err != nil {
			return records, false
		}
		out := make([]json.RawMessage, len(records))
		copy(out, records)
		out[i] = updated
		return out, true
	}
	return records, false
}

// deleteRecordIn removes the record whose id matches. Reports false when absent.
func deleteRecordIn(records []json.RawMessage, recordID string) ([]json.RawMessage, bool) {
	for i, raw := range records {
		var fields struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		if fields.ID == recordID {
			out := make([]json.RawMessage, 0, len(records)-1)
			out = append(out, records[:i]...)
			return append(out, records[i+1:]...), true
		}
	}
	return records, false
}

// decodeRecords treats nil and corrupt payloads as an empty collection.
func decodeRecords(payload []byte) []json.RawMessage {
	if len(payload) == 0 {
		return []json.RawMessage{}
	}
	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err != nil {
		return []json.RawMessage{}
	}
	return records
}

func encodeRecords(records []json.RawMessage) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	return json.Marshal(records)
}
