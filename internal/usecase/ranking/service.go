// Package ranking computes the two top-K aggregations over the mashup
// collection: most-used APIs and API-richest mashups.
package ranking

import (
	"context"
	"fmt"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/query"
)

// DefaultK is the ranking size when the caller does not supply one.
const DefaultK = 10

// Service handles the top-K ranking queries.
type Service struct {
	repo Repository
}

// New creates a ranking service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// TopUsedAPIs returns the k most-referenced API names across all mashups.
// k must be >= 0; zero yields an empty ranking.
func (s *Service) TopUsedAPIs(ctx context.Context, k int) ([]query.UsageCount, error) {
	if k < 0 {
		return nil, fmt.Errorf("k must be >= 0, got %d: %w", k, domain.ErrInvalidQuery)
	}

	ranking, err := s.repo.TopUsedAPIs(ctx, k)
	if err != nil {
		return nil, fmt.Errorf("top used apis: %w", err)
	}
	return ranking, nil
}

// TopAPIRichMashups returns the k mashups composing the most APIs.
// k must be >= 0; zero yields an empty ranking.
func (s *Service) TopAPIRichMashups(ctx context.Context, k int) ([]query.APIRichness, error) {
	if k < 0 {
		return nil, fmt.Errorf("k must be >= 0, got %d: %w", k, domain.ErrInvalidQuery)
	}

	ranking, err := s.repo.TopAPIRich(ctx, k)
	if err != nil {
		return nil, fmt.Errorf("top api-rich mashups: %w", err)
	}
	return ranking, nil
}
