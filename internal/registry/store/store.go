// Package store supplies record snapshots to the query and analytics
// engines. Implementations own persistence and snapshot consistency; the
// engines only ever see read-only value copies.
package store

import (
	"context"

	"murima/internal/registry/models"
)

// Store is interface-driven so services and the importer stay testable and
// the in-memory and PostgreSQL implementations swap without rewiring.
type Store interface {
	// Create assigns the next id and the creation timestamp, then persists
	// the record.
	Create(ctx context.Context, b *models.Business) error
	// Update replaces an existing record, reassigning UpdatedAt. CreatedAt
	// is immutable and preserved from the stored record.
	Update(ctx context.Context, b *models.Business) error
	// GetByID returns one record or sentinel.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Business, error)
	// Delete removes one record or returns sentinel.ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// All returns a value snapshot of every record, ordered by id. Callers
	// may filter, sort, and slice it freely without affecting the store.
	All(ctx context.Context) ([]models.Business, error)
}
