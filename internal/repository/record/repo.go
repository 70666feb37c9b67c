// Package record implements the in-memory record store. State lives for the
// process lifetime; there is no persistence layer by design.
package record

import (
	"context"
	"fmt"
	"sync"

	"github.com/strandhq/strand/internal/domain"
	domrec "github.com/strandhq/strand/internal/domain/record"
)

// Repo implements usecase/record.Repository. Records are kept in insertion
// order and indexed by exact value and by content hash. All operations are
// atomic under the mutex.
type Repo struct {
	mu      sync.RWMutex
	ordered []domrec.Record
	byValue map[string]domrec.Record
	byID    map[string]domrec.Record
}

// New creates an empty in-memory record repository.
func New() *Repo {
	return &Repo{
		byValue: make(map[string]domrec.Record),
		byID:    make(map[string]domrec.Record),
	}
}

// Insert appends a record. Fails with domain.ErrDuplicateValue if a record
// with the same value is already stored.
func (r *Repo) Insert(_ context.Context, rec domrec.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byValue[rec.Value()]; ok {
		return fmt.Errorf("insert %s: %w", rec.ID(), domain.ErrDuplicateValue)
	}

	r.ordered = append(r.ordered, rec)
	r.byValue[rec.Value()] = rec
	r.byID[rec.ID()] = rec
	return nil
}

// GetByValue returns the record with an exact, case-sensitive value match.
func (r *Repo) GetByValue(_ context.Context, value string) (domrec.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byValue[value]
	if !ok {
		return domrec.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

// GetByID returns the record with the given content hash.
func (r *Repo) GetByID(_ context.Context, id string) (domrec.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return domrec.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

// Delete removes the record with the exact value. Fails with
// domain.ErrNotFound if no such record exists.
func (r *Repo) Delete(_ context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byValue[value]
	if !ok {
		return fmt.Errorf("delete: %w", domain.ErrNotFound)
	}

	delete(r.byValue, value)
	delete(r.byID, rec.ID())
	for i := range r.ordered {
		if r.ordered[i].Value() == value {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a snapshot of all records in insertion order.
func (r *Repo) List(_ context.Context) ([]domrec.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domrec.Record, len(r.ordered))
	copy(snapshot, r.ordered)
	return snapshot, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered), nil
}

// Ping reports store availability (always healthy for the in-memory store;
// kept so the health service has a uniform contract).
func (r *Repo) Ping(_ context.Context) error { return nil }
