// Package mashup exposes the Mashup-record operations, symmetric to the API
// service but projecting matches to titles.
package mashup

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

// Service handles Mashup record storage and queries.
type Service struct {
	repo          Repository
	listLimit     int
	criteriaLimit int
	keywordLimit  int
}

// New creates a Mashup service.
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

// Add validates and persists a record. The store assigns the identifier.
func (s *Service) Add(ctx context.Context, rec record.Mashup) (record.Mashup, error) {
	rec.ID = ""
	if err := rec.Validate(); err != nil {
		return record.Mashup{}, err
	}

	stored, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return record.Mashup{}, fmt.Errorf("insert mashup: %w", err)
	}
	return stored, nil
}

// Get returns one record by identifier.
func (s *Service) Get(ctx context.Context, id string) (record.Mashup, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return record.Mashup{}, fmt.Errorf("get mashup %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes one record by identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete mashup %s: %w", id, err)
	}
	return nil
}

// List returns up to the list cap of stored records.
func (s *Service) List(ctx context.Context) ([]record.Mashup, error) {
	recs, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list mashups: %w", err)
	}
	return recs, nil
}

// SearchByCriteria runs the conjunctive criteria filter and projects each
// match to its title.
func (s *Service) SearchByCriteria(ctx context.Context, c query.MashupCriteria) ([]query.MashupRef, error) {
	recs, err := s.repo.FindCriteria(ctx, c, s.criteriaLimit)
	if err != nil {
		return nil, fmt.Errorf("search mashups by criteria: %w", err)
	}
	return project(recs), nil
}

// SearchByKeywords runs the keyword conjunction and projects each match to
// its title. An empty keyword list is rejected.
func (s *Service) SearchByKeywords(ctx context.Context, kw query.Keywords) ([]query.MashupRef, error) {
	if err := kw.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.repo.FindKeywords(ctx, kw, s.keywordLimit)
	if err != nil {
		return nil, fmt.Errorf("search mashups by keywords: %w", err)
	}
	return project(recs), nil
}

func project(recs []record.Mashup) []query.MashupRef {
	refs := make([]query.MashupRef, len(recs))
	for i, rec := range recs {
		refs[i] = query.MashupRef{Title: rec.Title}
	}
	return refs
}
