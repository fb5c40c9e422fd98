// Package store provides storage backends for graphs uploaded to the HTTP
// server.
//
// Two implementations are available:
//   - memory: in-process map, the default for a single-instance server
//   - redis: Redis-backed storage for deployments that must survive restarts
//     or share graphs across instances
//
// Records are encoded with BSON for the Redis backend; the wire types in
// pkg/graphio carry bson tags for this purpose.
package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/edgekit/edgekit/pkg/graphio"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("graph not found")

// Record is a stored graph with its server-side identity.
type Record struct {
	ID        string           `json:"id" bson:"id"`
	Name      string           `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	Graph     graphio.Document `json:"graph" bson:"graph"`
}

// Store is the interface for graph storage backends.
type Store interface {
	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, overwriting any previous record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all stored records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Close releases backend resources.
	Close() error
}

// NewRecord creates a record for doc with a fresh identifier and the current
// time.
func NewRecord(name string, doc graphio.Document) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Graph:     doc,
	}
}

// sortNewestFirst orders records by creation time, newest first, so List is
// stable across backends.
func sortNewestFirst(recs []*Record) {
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}
