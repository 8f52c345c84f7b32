// Package registry implements the in-memory resource registry: an ordered
// record collection plus the identifier allocator that owns it.
package registry

import (
	"strings"
	"sync"
	"time"

	"github.com/registrolabs/registro/pkg/schema"
)

// Registry is the authoritative in-memory store of records. It is safe
// for concurrent use. The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	records []schema.Record
	index   map[int]int // id -> position in records
	nextID  int
}

// New returns an empty registry. Identifiers start at 1 and are never
// reused.
func New() *Registry {
	return &Registry{
		index:  make(map[int]int),
		nextID: 1,
	}
}

// Create validates the input, allocates the next identifier, and appends
// the new record. The counter read, increment, and append happen under a
// single lock so concurrent creates never share an identifier and readers
// never observe a partially-appended record. On validation failure the
// collection and counter are left untouched.
func (r *Registry) Create(name, email string) (schema.Record, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return schema.Record{}, &ValidationError{Fields: missing}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := schema.Record{
		ID:        r.nextID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.index[rec.ID] = len(r.records)
	r.records = append(r.records, rec)

	return rec, nil
}

// Get returns the record with the given id. A non-positive id is rejected
// as ErrInvalidID before the collection is consulted; a well-formed id
// with no match yields ErrNotFound.
func (r *Registry) Get(id int) (schema.Record, error) {
	if id <= 0 {
		return schema.Record{}, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return schema.Record{}, ErrNotFound
	}
	return r.records[pos], nil
}

// List returns a snapshot of all records in insertion order. The returned
// slice is a copy; mutating it does not affect the registry. The error is
// always nil for the embedded registry and exists so remote
// implementations can satisfy the same interface.
func (r *Registry) List() ([]schema.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schema.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Len reports the current number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
