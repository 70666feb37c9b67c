// Package record orchestrates string analysis, storage, and filtered
// retrieval.
package record

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/strandhq/strand/internal/domain"
	"github.com/strandhq/strand/internal/domain/filter"
	"github.com/strandhq/strand/internal/domain/query"
	domrec "github.com/strandhq/strand/internal/domain/record"
	"github.com/strandhq/strand/internal/logger"
	"github.com/strandhq/strand/internal/metrics"
)

// DefaultMaxValueBytes bounds accepted values when no limit is configured.
const DefaultMaxValueBytes = 65536 // 64KB

// Service handles record creation, lookup, filtering, and deletion.
type Service struct {
	repo          Repository
	maxValueBytes int
}

// New creates a record service.
func New(repo Repository) *Service {
	return &Service{repo: repo, maxValueBytes: DefaultMaxValueBytes}
}

// WithMaxValueBytes configures the accepted value size limit.
func (s *Service) WithMaxValueBytes(n int) *Service {
	if n > 0 {
		s.maxValueBytes = n
	}
	return s
}

// Create analyzes and stores a value. The empty string is valid input;
// a value already stored fails with domain.ErrDuplicateValue.
func (s *Service) Create(ctx context.Context, value string) (domrec.Record, error) {
	if len(value) > s.maxValueBytes {
		return domrec.Record{}, fmt.Errorf(
			"value is %d bytes, limit is %d: %w", len(value), s.maxValueBytes, domain.ErrValueTooLarge,
		)
	}

	rec := domrec.Analyze(value)
	if err := s.repo.Insert(ctx, rec); err != nil {
		return domrec.Record{}, fmt.Errorf("insert record: %w", err)
	}

	metrics.StringsAnalyzedTotal.Inc()
	metrics.RecordsStored.Inc()
	logger.FromContext(ctx).Debug("record created",
		zap.String("id", rec.ID()),
		zap.Int("length", rec.Properties().Length),
	)
	return rec, nil
}

// List returns all records matching the filter set, in insertion order.
// An empty set matches everything.
func (s *Service) List(ctx context.Context, f filter.Set) ([]domrec.Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	matched := make([]domrec.Record, 0, len(recs))
	for _, rec := range recs {
		if f.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Query interprets a natural-language query, then lists matching records.
// A blank query fails with domain.ErrMissingQuery; a query with no
// recognized phrase fails with domain.ErrUnparsableQuery. Zero matches is a
// valid outcome, distinct from both.
func (s *Service) Query(ctx context.Context, text string) ([]domrec.Record, filter.Set, error) {
	if strings.TrimSpace(text) == "" {
		return nil, filter.Set{}, domain.ErrMissingQuery
	}

	f, err := query.Parse(text)
	if err != nil {
		metrics.QueryParseTotal.WithLabelValues("unparsable").Inc()
		return nil, filter.Set{}, fmt.Errorf("parse query: %w", err)
	}
	metrics.QueryParseTotal.WithLabelValues("parsed").Inc()

	recs, err := s.List(ctx, f)
	if err != nil {
		return nil, filter.Set{}, err
	}

	logger.FromContext(ctx).Debug("natural-language query evaluated",
		zap.String("query", text),
		zap.Int("matches", len(recs)),
	)
	return recs, f, nil
}

// Get returns the record with the exact, case-sensitive value.
func (s *Service) Get(ctx context.Context, value string) (domrec.Record, error) {
	rec, err := s.repo.GetByValue(ctx, value)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// GetByID returns the record with the given content hash.
func (s *Service) GetByID(ctx context.Context, id string) (domrec.Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record by id: %w", err)
	}
	return rec, nil
}

// Delete removes the record with the exact value.
func (s *Service) Delete(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, value); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	metrics.RecordsStored.Dec()
	return nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
