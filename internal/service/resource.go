package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
)

// MaxListLimit caps the number of documents a list returns.
const MaxListLimit = 1000

// Document is implemented by pointers to every stored model.
type Document interface {
	Doc() *models.Document
}

// ListOptions narrows and orders a list. An empty SortKey selects the
// resource's natural order; a zero Limit returns up to MaxListLimit.
type ListOptions struct {
	Filter     store.Fields
	SortKey    string
	Descending bool
	Limit      int
}

// CollectionService is the contract for resources addressed by id.
type CollectionService[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, patch store.Fields) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Resource implements the CRUD contract for one collection.
type Resource[T any, PT interface {
	*T
	Document
}] struct {
	name  string
	coll  store.Collection[T]
	order store.SortOrder
	now   func() time.Time
}

// Option configures a Resource.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func defaultNow() time.Time {
	return time.Now()
}

// NewResource returns a Resource named name (as used in not-found messages)
// that lists in natural order unless told otherwise.
func NewResource[T any, PT interface {
	*T
	Document
}](name string, coll store.Collection[T], natural store.SortOrder, opts ...Option) *Resource[T, PT] {
	o := options{now: defaultNow}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T, PT]{name: name, coll: coll, order: natural, now: o.now}
}

// Name is the human-readable resource name.
func (r *Resource[T, PT]) Name() string {
	return r.name
}

func (r *Resource[T, PT]) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *Resource[T, PT]) notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: r.name}
	}
	return err
}

func (r *Resource[T, PT]) findOne(ctx context.Context, filter store.Fields) (*T, error) {
	doc, err := r.coll.FindOne(ctx, filter)
	if err != nil {
		return nil, r.notFound(err)
	}
	return doc, nil
}

// Get returns the document with the given id.
func (r *Resource[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, store.Fields{"id": id})
}

// First returns the first document in the collection.
func (r *Resource[T, PT]) First(ctx context.Context) (*T, error) {
	return r.findOne(ctx, nil)
}

// Exists reports whether the collection holds any document.
func (r *Resource[T, PT]) Exists(ctx context.Context) (bool, error) {
	_, err := r.coll.FindOne(ctx, nil)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns documents matching opts.Filter in the requested order.
func (r *Resource[T, PT]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	sort := r.order
	if opts.SortKey != "" {
		sort = store.SortOrder{Key: opts.SortKey, Descending: opts.Descending}
	}

	limit := opts.Limit
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	docs, err := r.coll.Find(ctx, store.Query{
		Filter: opts.Filter,
		Sort:   []store.SortOrder{sort},
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

// Create stamps doc with a new id and timestamps and stores it.
func (r *Resource[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	now := r.timestamp()
	header := PT(doc).Doc()
	header.ID = uuid.NewString()
	header.CreatedAt = now
	header.UpdatedAt = now

	if err := r.coll.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update sets the fields in patch on the document with the given id,
// refreshes updatedAt and returns the stored result. The read and the write
// are separate store calls; concurrent updates to one document race and the
// last write wins.
func (r *Resource[T, PT]) Update(ctx context.Context, id string, patch store.Fields) (*T, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}
	return r.apply(ctx, id, patch)
}

func (r *Resource[T, PT]) apply(ctx context.Context, id string, patch store.Fields) (*T, error) {
	set := make(store.Fields, len(patch)+1)
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = r.timestamp()

	if err := r.coll.UpdateByID(ctx, id, set); err != nil {
		return nil, r.notFound(err)
	}
	return r.Get(ctx, id)
}

// Delete removes the document with the given id.
func (r *Resource[T, PT]) Delete(ctx context.Context, id string) error {
	return r.notFound(r.coll.DeleteByID(ctx, id))
}
