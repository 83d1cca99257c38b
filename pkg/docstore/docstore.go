// Package docstore provides a generic document repository over a single
// JSONB-backed table. Each entity gets its own Repository instantiation bound
// to a collection name, so every admin screen binds to the same four
// operations without bespoke persistence code.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a document id does not exist in the collection.
var ErrNotFound = errors.New("document not found")

// Doc wraps a stored value with its store-assigned id and creation timestamp.
type Doc[T any] struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Data      T         `json:"data"`
}

// Repository is a typed gateway to one collection.
type Repository[T any] struct {
	pool       *pgxpool.Pool
	collection string
	less       func(a, b Doc[T]) bool
}

// Option configures a Repository.
type Option[T any] func(*Repository[T])

// WithSort applies less after every List, replacing the default
// newest-first order.
func WithSort[T any](less func(a, b Doc[T]) bool) Option[T] {
	return func(r *Repository[T]) { r.less = less }
}

// NewRepository creates a repository bound to a collection.
func NewRepository[T any](pool *pgxpool.Pool, collection string, opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{pool: pool, collection: collection}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Collection returns the collection name the repository is bound to.
func (r *Repository[T]) Collection() string { return r.collection }

// List returns every document in the collection, newest first unless a sort
// function was configured.
func (r *Repository[T]) List(ctx context.Context) ([]Doc[T], error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, data, created_at FROM documents WHERE collection = $1 ORDER BY created_at DESC`,
		r.collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	defer rows.Close()

	var list []Doc[T]
	for rows.Next() {
		var (
			doc Doc[T]
			raw []byte
		)
		if err := rows.Scan(&doc.ID, &raw, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.collection, err)
		}
		if err := json.Unmarshal(raw, &doc.Data); err != nil {
			return nil, fmt.Errorf("decode %s document %s: %w", r.collection, doc.ID, err)
		}
		list = append(list, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	if r.less != nil {
		sort.SliceStable(list, func(i, j int) bool { return r.less(list[i], list[j]) })
	}
	return list, nil
}

// Get returns one document by id.
func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (Doc[T], error) {
	var (
		doc Doc[T]
		raw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, data, created_at FROM documents WHERE collection = $1 AND id = $2`,
		r.collection, id).Scan(&doc.ID, &raw, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("get %s %s: %w", r.collection, id, err)
	}
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return doc, fmt.Errorf("decode %s document %s: %w", r.collection, id, err)
	}
	return doc, nil
}

// Create inserts a new document. The store assigns the id and stamps the
// creation timestamp.
func (r *Repository[T]) Create(ctx context.Context, v T) (Doc[T], error) {
	doc := Doc[T]{Data: v}
	raw, err := json.Marshal(v)
	if err != nil {
		return doc, fmt.Errorf("encode %s document: %w", r.collection, err)
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO documents (collection, data) VALUES ($1, $2) RETURNING id, created_at`,
		r.collection, raw).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return doc, fmt.Errorf("create %s document: %w", r.collection, err)
	}
	return doc, nil
}

// Update replaces the document body. Last write wins; there is no conflict
// detection between concurrent editors.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, v T) (Doc[T], error) {
	doc := Doc[T]{ID: id, Data: v}
	raw, err := json.Marshal(v)
	if err != nil {
		return doc, fmt.Errorf("encode %s document: %w", r.collection, err)
	}
	err = r.pool.QueryRow(ctx,
		`UPDATE documents SET data = $3 WHERE collection = $1 AND id = $2 RETURNING created_at`,
		r.collection, id, raw).Scan(&doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("update %s %s: %w", r.collection, id, err)
	}
	return doc, nil
}

// Patch merges the given fields into the document body and returns the
// merged document.
func (r *Repository[T]) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) (Doc[T], error) {
	doc := Doc[T]{ID: id}
	patch, err := json.Marshal(fields)
	if err != nil {
		return doc, fmt.Errorf("encode %s patch: %w", r.collection, err)
	}
	var raw []byte
	err = r.pool.QueryRow(ctx,
		`UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2 RETURNING data, created_at`,
		r.collection, id, patch).Scan(&raw, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("patch %s %s: %w", r.collection, id, err)
	}
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return doc, fmt.Errorf("decode %s document %s: %w", r.collection, id, err)
	}
	return doc, nil
}

// Delete removes a document. Deleting an id that does not exist is not an
// error, so repeated deletes are safe.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		r.collection, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.collection, id, err)
	}
	return nil
}
