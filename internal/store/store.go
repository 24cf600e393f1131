// Package store provides document collections backed by either a gorm
// database (postgres, sqlite) or MongoDB.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document matches a lookup, update or delete.
var ErrNotFound = errors.New("document not found")

// Fields maps document keys (the JSON wire names) to values.
type Fields map[string]any

// SortOrder orders results by a single document key.
type SortOrder struct {
	Key        string
	Descending bool
}

// Query describes a find-many request. A zero Limit means no limit.
type Query struct {
	Filter Fields
	Sort   []SortOrder
	Limit  int
}

// Collection is a set of documents of one kind, keyed by their string id.
type Collection[T any] interface {
	Name() string
	Insert(ctx context.Context, doc *T) error
	FindOne(ctx context.Context, filter Fields) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	UpdateByID(ctx context.Context, id string, set Fields) error
	DeleteByID(ctx context.Context, id string) error
}
