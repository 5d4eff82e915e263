package mashup

import (
	"context"

	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// Repository defines the storage contract for Mashup records.
type Repository interface {
	Insert(ctx context.Context, rec record.Mashup) (record.Mashup, error)
	Get(ctx context.Context, id string) (record.Mashup, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]record.Mashup, error)
	FindCriteria(ctx context.Context, c query.MashupCriteria, limit int) ([]record.Mashup, error)
	FindKeywords(ctx context.Context, kw query.Keywords, limit int) ([]record.Mashup, error)
}
