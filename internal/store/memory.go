package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-memory Store with the same semantics as Postgres,
// used by tests and local tooling.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]*Document
}

// NewMemory creates an empty in-memory document store.
func NewMemory() *Memory {
	return &Memory{collections: map[string]map[string]*Document{}}
}

func (s *Memory) collection(name string) map[string]*Document {
	c, ok := s.collections[name]
	if !ok {
		c = map[string]*Document{}
		s.collections[name] = c
	}
	return c
}

// Get retrieves a document by collection and ID.
func (s *Memory) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *doc
	copied.Data = append([]byte(nil), doc.Data...)
	return &copied, nil
}

// Query retrieves all documents of a collection matching the filters,
// ordered by ID for determinism.
func (s *Memory) Query(_ context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.collections[collection] {
		match, err := matchesFilters(doc.Data, filters)
		if err != nil {
			return nil, err
		}
		if match {
			copied := *doc
			copied.Data = append([]byte(nil), doc.Data...)
			docs = append(docs, copied)
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Create inserts a new document, failing with ErrAlreadyExists if the ID is taken.
func (s *Memory) Create(_ context.Context, collection, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding document %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, exists := c[id]; exists {
		return ErrAlreadyExists
	}
	c[id] = &Document{Collection: collection, ID: id, Data: data, Version: 1}
	return nil
}

// Set replaces the whole document body, creating the document if absent.
func (s *Memory) Set(_ context.Context, collection, id string, value interface{}, opts ...WriteOption) error {
	o := applyWriteOptions(opts)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding document %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	existing, ok := c[id]
	if o.ExpectedVersion > 0 {
		if !ok {
			return ErrNotFound
		}
		if existing.Version != o.ExpectedVersion {
			return ErrVersionConflict
		}
	}

	if ok {
		existing.Data = data
		existing.Version++
		return nil
	}
	c[id] = &Document{Collection: collection, ID: id, Data: data, Version: 1}
	return nil
}

// Update merges field updates into an existing document.
func (s *Memory) Update(_ context.Context, collection, id string, fields []FieldUpdate, opts ...WriteOption) error {
	o := applyWriteOptions(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	if o.ExpectedVersion > 0 && doc.Version != o.ExpectedVersion {
		return ErrVersionConflict
	}

	updated, err := ApplyFieldUpdates(doc.Data, fields)
	if err != nil {
		return fmt.Errorf("error updating document %s/%s: %w", collection, id, err)
	}

	doc.Data = updated
	doc.Version++
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Memory) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matchesFilters(data []byte, filters []Filter) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}

	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("failed to decode document: %w", err)
	}

	for _, f := range filters {
		value := normalizeValue(f.Value)
		if f.Contains {
			arr, ok := doc[f.Field].([]interface{})
			if !ok || !arrayContains(arr, value) {
				return false, nil
			}
		} else if !jsonEqual(doc[f.Field], value) {
			return false, nil
		}
	}

	return true, nil
}
