package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uzafar/campusdesk/internal/pkg/dberrors"
)

// Postgres implements Store on top of a single documents table with a JSONB
// body and a version counter. Every mutation is one statement (or one
// row-locked transaction), so per-document writes are atomic; nothing spans
// documents.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed document store.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// Get retrieves a document by collection and ID.
func (s *Postgres) Get(ctx context.Context, collection, id string) (*Document, error) {
	query := `
		SELECT data, version
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	doc := Document{Collection: collection, ID: id}
	err := s.db.QueryRow(ctx, query, collection, id).Scan(&doc.Data, &doc.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving document %s/%s: %w", collection, id, err)
	}

	return &doc, nil
}

// Query retrieves all documents of a collection matching the filters.
// Equality filters become JSONB containment checks; membership filters match
// against the field's array elements.
func (s *Postgres) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	query := `
		SELECT id, data, version
		FROM documents
		WHERE collection = $1
	`
	args := []interface{}{collection}

	for _, f := range filters {
		if f.Contains {
			value, err := json.Marshal([]interface{}{f.Value})
			if err != nil {
				return nil, fmt.Errorf("error encoding filter value for %q: %w", f.Field, err)
			}
			args = append(args, f.Field, string(value))
			query += fmt.Sprintf(" AND data->$%d @> $%d::jsonb", len(args)-1, len(args))
		} else {
			value, err := json.Marshal(map[string]interface{}{f.Field: f.Value})
			if err != nil {
				return nil, fmt.Errorf("error encoding filter value for %q: %w", f.Field, err)
			}
			args = append(args, string(value))
			query += fmt.Sprintf(" AND data @> $%d::jsonb", len(args))
		}
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc := Document{Collection: collection}
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.Version); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// Create inserts a new document, failing with ErrAlreadyExists if the ID is taken.
func (s *Postgres) Create(ctx context.Context, collection, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding document %s/%s: %w", collection, id, err)
	}

	query := `
		INSERT INTO documents (collection, id, data, version)
		VALUES ($1, $2, $3, 1)
	`

	_, err = s.db.Exec(ctx, query, collection, id, data)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "documents_pkey") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("error creating document %s/%s: %w", collection, id, err)
	}

	return nil
}

// Set replaces the whole document body, creating the document if absent.
// With an expected version the write is a compare-and-swap.
func (s *Postgres) Set(ctx context.Context, collection, id string, value interface{}, opts ...WriteOption) error {
	o := applyWriteOptions(opts)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding document %s/%s: %w", collection, id, err)
	}

	if o.ExpectedVersion > 0 {
		query := `
			UPDATE documents
			SET data = $3, version = version + 1, updated_at = NOW()
			WHERE collection = $1 AND id = $2 AND version = $4
		`
		cmdTag, err := s.db.Exec(ctx, query, collection, id, data, o.ExpectedVersion)
		if err != nil {
			return fmt.Errorf("error replacing document %s/%s: %w", collection, id, err)
		}
		if cmdTag.RowsAffected() == 0 {
			if _, getErr := s.Get(ctx, collection, id); errors.Is(getErr, ErrNotFound) {
				return ErrNotFound
			}
			return ErrVersionConflict
		}
		return nil
	}

	query := `
		INSERT INTO documents (collection, id, data, version)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, version = documents.version + 1, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, collection, id, data); err != nil {
		return fmt.Errorf("error replacing document %s/%s: %w", collection, id, err)
	}

	return nil
}

// Update merges field updates into an existing document. The row is locked
// for the duration, so concurrent updates of the same document serialize.
func (s *Postgres) Update(ctx context.Context, collection, id string, fields []FieldUpdate, opts ...WriteOption) error {
	o := applyWriteOptions(opts)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var data []byte
	var version int64
	err = tx.QueryRow(ctx, `
		SELECT data, version
		FROM documents
		WHERE collection = $1 AND id = $2
		FOR UPDATE
	`, collection, id).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("error locking document %s/%s: %w", collection, id, err)
	}

	if o.ExpectedVersion > 0 && version != o.ExpectedVersion {
		return ErrVersionConflict
	}

	updated, err := ApplyFieldUpdates(data, fields)
	if err != nil {
		return fmt.Errorf("error updating document %s/%s: %w", collection, id, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE documents
		SET data = $3, version = version + 1, updated_at = NOW()
		WHERE collection = $1 AND id = $2
	`, collection, id, updated)
	if err != nil {
		return fmt.Errorf("error writing document %s/%s: %w", collection, id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	if _, err := s.db.Exec(ctx, query, collection, id); err != nil {
		return fmt.Errorf("error deleting document %s/%s: %w", collection, id, err)
	}

	return nil
}
