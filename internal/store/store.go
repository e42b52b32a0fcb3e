package store

import (
	"context"
	"errors"
)

// Store errors
var (
	ErrNotFound        = errors.New("document not found")
	ErrAlreadyExists   = errors.New("document already exists")
	ErrVersionConflict = errors.New("document version conflict")
)

// Document is one stored record of a collection. Data holds the raw JSON
// body; Version increments on every write and backs conditional writes.
type Document struct {
	Collection string
	ID         string
	Data       []byte
	Version    int64
}

// Filter narrows a Query. With Contains set, the field is treated as an
// array and matched by membership instead of equality.
type Filter struct {
	Field    string
	Value    interface{}
	Contains bool
}

// Where creates an equality filter on a top-level document field.
func Where(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// WhereContains creates an array-membership filter on a top-level document field.
func WhereContains(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value, Contains: true}
}

// WriteOptions controls conditional writes.
type WriteOptions struct {
	// ExpectedVersion, when positive, makes the write fail with
	// ErrVersionConflict unless the stored document still has this version.
	ExpectedVersion int64
}

// WriteOption configures a Set or Update call.
type WriteOption func(*WriteOptions)

// WithExpectedVersion makes the write conditional on the document version
// read earlier, turning a read-modify-write into a compare-and-swap.
func WithExpectedVersion(version int64) WriteOption {
	return func(o *WriteOptions) {
		o.ExpectedVersion = version
	}
}

func applyWriteOptions(opts []WriteOption) WriteOptions {
	var o WriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is the document-store contract the workflow engines are written
// against. Set replaces a whole document; Update merges field updates into
// an existing one. Both are atomic per document. Delete is idempotent.
type Store interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Create(ctx context.Context, collection, id string, value interface{}) error
	Set(ctx context.Context, collection, id string, value interface{}, opts ...WriteOption) error
	Update(ctx context.Context, collection, id string, fields []FieldUpdate, opts ...WriteOption) error
	Delete(ctx context.Context, collection, id string) error
}
