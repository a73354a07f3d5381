package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"heritage/api/internal/gateway"
	"heritage/api/internal/rdf"
)

// EntityStore serves property sets from the entities table. It answers with
// the same errors as the HTTP knowledge store client.
type EntityStore struct {
	db *sql.DB
}

func NewEntityStore(db *sql.DB) *EntityStore {
	return &EntityStore{db: db}
}

func (s *EntityStore) Fetch(ctx context.Context, typ, id string) (rdf.PropertySet, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT properties FROM entities WHERE entity_type=$1 AND entity_id=$2`, typ, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gateway.ErrNotFound
	}
	if err != nil {
		return nil, &gateway.UpstreamError{Op: "query", Err: err}
	}

	var props rdf.PropertySet
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, &gateway.UpstreamError{Op: "decode", Err: err}
	}
	if props == nil {
		return nil, gateway.ErrNotFound
	}
	return props, nil
}

// UpsertEntity stores the property set for (typ, id). Used by seeding and tests.
func (s *EntityStore) UpsertEntity(ctx context.Context, typ, id string, props rdf.PropertySet) error {
	encoded, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("marshal properties: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entities (entity_type, entity_id, properties)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET properties=EXCLUDED.properties, updated_at=NOW()
	`, typ, id, string(encoded))
	if err != nil {
		return fmt.Errorf("upsert entity: %w", err)
	}
	return nil
}

func (s *EntityStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
