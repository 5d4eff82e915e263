package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/query"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	topUsedFn func(ctx context.Context, k int) ([]query.UsageCount, error)
	topRichFn func(ctx context.Context, k int) ([]query.APIRichness, error)
}

func (m *mockRepo) TopUsedAPIs(ctx context.Context, k int) ([]query.UsageCount, error) {
	if m.topUsedFn != nil {
		return m.topUsedFn(ctx, k)
	}
	return nil, nil
}

func (m *mockRepo) TopAPIRich(ctx context.Context, k int) ([]query.APIRichness, error) {
	if m.topRichFn != nil {
		return m.topRichFn(ctx, k)
	}
	return nil, nil
}

func TestTopUsedAPIs_NegativeK(t *testing.T) {
	mr := &mockRepo{
		topUsedFn: func(_ context.Context, _ int) ([]query.UsageCount, error) {
			t.Fatal("repository must not run for negative k")
			return nil, nil
		},
	}

	_, err := New(mr).TopUsedAPIs(context.Background(), -1)
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestTopUsedAPIs_PassesK(t *testing.T) {
	mr := &mockRepo{
		topUsedFn: func(_ context.Context, k int) ([]query.UsageCount, error) {
			if k != 7 {
				t.Errorf("expected k=7, got %d", k)
			}
			return []query.UsageCount{{Name: "maps", Count: 3}}, nil
		},
	}

	ranking, err := New(mr).TopUsedAPIs(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 1 || ranking[0].Name != "maps" {
		t.Errorf("unexpected ranking: %v", ranking)
	}
}

func TestTopAPIRichMashups_NegativeK(t *testing.T) {
	mr := &mockRepo{
		topRichFn: func(_ context.Context, _ int) ([]query.APIRichness, error) {
			t.Fatal("repository must not run for negative k")
			return nil, nil
		},
	}

	_, err := New(mr).TopAPIRichMashups(context.Background(), -5)
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestTopAPIRichMashups_RepoError(t *testing.T) {
	mr := &mockRepo{
		topRichFn: func(_ context.Context, _ int) ([]query.APIRichness, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}

	_, err := New(mr).TopAPIRichMashups(context.Background(), 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
