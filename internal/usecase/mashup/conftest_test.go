package mashup

import (
	"context"
	"testing"

	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	insertFn       func(ctx context.Context, rec record.Mashup) (record.Mashup, error)
	getFn          func(ctx context.Context, id string) (record.Mashup, error)
	deleteFn       func(ctx context.Context, id string) error
	listFn         func(ctx context.Context, limit int) ([]record.Mashup, error)
	findCriteriaFn func(ctx context.Context, c query.MashupCriteria, limit int) ([]record.Mashup, error)
	findKeywordsFn func(ctx context.Context, kw query.Keywords, limit int) ([]record.Mashup, error)
}

func (m *mockRepo) Insert(ctx context.Context, rec record.Mashup) (record.Mashup, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, rec)
	}
	rec.ID = "generated"
	return rec, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (record.Mashup, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return record.Mashup{}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRepo) List(ctx context.Context, limit int) ([]record.Mashup, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockRepo) FindCriteria(ctx context.Context, c query.MashupCriteria, limit int) ([]record.Mashup, error) {
	if m.findCriteriaFn != nil {
		return m.findCriteriaFn(ctx, c, limit)
	}
	return nil, nil
}

func (m *mockRepo) FindKeywords(ctx context.Context, kw query.Keywords, limit int) ([]record.Mashup, error) {
	if m.findKeywordsFn != nil {
		return m.findKeywordsFn(ctx, kw, limit)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	mr := &mockRepo{}
	return New(mr), mr
}
