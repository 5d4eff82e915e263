package api

import (
	"context"

	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// Repository defines the storage contract for API records.
type Repository interface {
	Insert(ctx context.Context, rec record.API) (record.API, error)
	Get(ctx context.Context, id string) (record.API, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]record.API, error)
	FindCriteria(ctx context.Context, c query.APICriteria, limit int) ([]record.API, error)
	FindKeywords(ctx context.Context, kw query.Keywords, limit int) ([]record.API, error)
}
