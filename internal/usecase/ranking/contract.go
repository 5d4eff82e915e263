package ranking

import (
	"context"

	"github.com/apicatalog/catalogd/internal/domain/query"
)

// Repository defines the aggregation contract the rankings rely on.
type Repository interface {
	TopUsedAPIs(ctx context.Context, k int) ([]query.UsageCount, error)
	TopAPIRich(ctx context.Context, k int) ([]query.APIRichness, error)
}
