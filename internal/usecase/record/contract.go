package record

import (
	"context"

	domrec "github.com/strandhq/strand/internal/domain/record"
)

// Repository defines the storage contract for analyzed records.
type Repository interface {
	Insert(ctx context.Context, rec domrec.Record) error
	GetByValue(ctx context.Context, value string) (domrec.Record, error)
	GetByID(ctx context.Context, id string) (domrec.Record, error)
	Delete(ctx context.Context, value string) error
	List(ctx context.Context) ([]domrec.Record, error)
	Count(ctx context.Context) (int, error)
}
