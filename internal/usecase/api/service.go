// Package api exposes the API-record operations: ingest-side Add and the
// read-side list/criteria/keyword queries with their minimal projections.
package api

import (
	"context"
	"fmt"

	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// Default result caps, overridable via WithLimits.
const (
	DefaultListLimit     = 10
	DefaultCriteriaLimit = 10000
	DefaultKeywordLimit  = 1000
)

// Service handles API record storage and queries.
type Service struct {
	repo          Repository
	listLimit     int
	criteriaLimit int
	keywordLimit  int
}

// New creates an API service.
func New(repo Repository) *Service {
	return &Service{
		repo:          repo,
		listLimit:     DefaultListLimit,
		criteriaLimit: DefaultCriteriaLimit,
		keywordLimit:  DefaultKeywordLimit,
	}
}

// WithLimits overrides the result caps. Non-positive values keep the default.
func (s *Service) WithLimits(list, criteria, keyword int) *Service {
	if list > 0 {
		s.listLimit = list
	}
	if criteria > 0 {
		s.criteriaLimit = criteria
	}
	if keyword > 0 {
		s.keywordLimit = keyword
	}
	return s
}

// Add validates and persists a record. The store assigns the identifier;
// any identifier on rec is ignored.
func (s *Service) Add(ctx context.Context, rec record.API) (record.API, error) {
	rec.ID = ""
	if err := rec.Validate(); err != nil {
		return record.API{}, err
	}

	stored, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return record.API{}, fmt.Errorf("insert api: %w", err)
	}
	return stored, nil
}

// Get returns one record by identifier.
func (s *Service) Get(ctx context.Context, id string) (record.API, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return record.API{}, fmt.Errorf("get api %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes one record by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete api %s: %w", id, err)
	}
	return nil
}

// List returns up to the list cap of stored records.
func (s *Service) List(ctx context.Context) ([]record.API, error) {
	recs, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list apis: %w", err)
	}
	return recs, nil
}

// SearchByCriteria runs the conjunctive criteria filter and projects each
// match to its name.
func (s *Service) SearchByCriteria(ctx context.Context, c query.APICriteria) ([]query.APIRef, error) {
	recs, err := s.repo.FindCriteria(ctx, c, s.criteriaLimit)
	if err != nil {
		return nil, fmt.Errorf("search apis by criteria: %w", err)
	}
	return project(recs), nil
}

// SearchByKeywords runs the keyword conjunction and projects each match to
// its name. An empty keyword list is rejected.
func (s *Service) SearchByKeywords(ctx context.Context, kw query.Keywords) ([]query.APIRef, error) {
	if err := kw.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindKeywords(ctx, kw, s.keywordLimit)
	if err != nil {
		return nil, fmt.Errorf("search apis by keywords: %w", err)
	}
	return project(recs), nil
}

func project(recs []record.API) []query.APIRef {
	refs := make([]query.APIRef, len(recs))
	for i, rec := range recs {
		refs[i] = query.APIRef{Name: rec.Name}
	}
	return refs
}
