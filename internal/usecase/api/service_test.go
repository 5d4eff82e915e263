package api

import (
	"context"
	"errors"
	"testing"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

func TestAdd_ClearsClientID(t *testing.T) {
	svc, mr := newTestService(t)

	mr.insertFn = func(_ context.Context, rec record.API) (record.API, error) {
		if rec.ID != "" {
			t.Errorf("client id must be cleared before insert, got %q", rec.ID)
		}
		rec.ID = "fresh"
		return rec, nil
	}

	stored, err := svc.Add(context.Background(), record.API{ID: "mine", Name: "maps", Title: "Maps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != "fresh" {
		t.Errorf("expected store-assigned id, got %q", stored.ID)
	}
}

func TestAdd_InvalidRecord(t *testing.T) {
	svc, mr := newTestService(t)
	mr.insertFn = func(_ context.Context, _ record.API) (record.API, error) {
		t.Fatal("insert must not run for an invalid record")
		return record.API{}, nil
	}

	_, err := svc.Add(context.Background(), record.API{Name: "maps"}) // no title
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}

	_, err = svc.Add(context.Background(), record.API{Title: "Maps"}) // no name
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestDelete_PassesThrough(t *testing.T) {
	svc, mr := newTestService(t)

	mr.deleteFn = func(_ context.Context, id string) error {
		if id != "abc" {
			t.Errorf("expected id abc, got %q", id)
		}
		return nil
	}

	if err := svc.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.deleteFn = func(_ context.Context, _ string) error { return domain.ErrNotFound }
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_UsesConfiguredLimit(t *testing.T) {
	mr := &mockRepo{}
	svc := New(mr).WithLimits(25, 0, 0)

	mr.listFn = func(_ context.Context, limit int) ([]record.API, error) {
		if limit != 25 {
			t.Errorf("expected limit 25, got %d", limit)
		}
		return []record.API{}, nil
	}

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_DefaultLimit(t *testing.T) {
	svc, mr := newTestService(t)

	mr.listFn = func(_ context.Context, limit int) ([]record.API, error) {
		if limit != DefaultListLimit {
			t.Errorf("expected default limit %d, got %d", DefaultListLimit, limit)
		}
		return []record.API{}, nil
	}

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearchByCriteria_Projection(t *testing.T) {
	svc, mr := newTestService(t)

	mr.findCriteriaFn = func(_ context.Context, _ query.APICriteria, limit int) ([]record.API, error) {
		if limit != DefaultCriteriaLimit {
			t.Errorf("expected criteria limit %d, got %d", DefaultCriteriaLimit, limit)
		}
		return []record.API{
			{Name: "maps", Title: "Maps"},
			{Name: "feed", Title: "Feed"},
		}, nil
	}

	refs, err := svc.SearchByCriteria(context.Background(), query.APICriteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 || refs[0].Name != "maps" || refs[1].Name != "feed" {
		t.Errorf("unexpected projection: %v", refs)
	}
}

func TestSearchByKeywords_RejectsEmpty(t *testing.T) {
	svc, mr := newTestService(t)
	mr.findKeywordsFn = func(_ context.Context, _ query.Keywords, _ int) ([]record.API, error) {
		t.Fatal("repository must not be queried for an empty keyword list")
		return nil, nil
	}

	_, err := svc.SearchByKeywords(context.Background(), query.Keywords{})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSearchByKeywords_RepoError(t *testing.T) {
	svc, mr := newTestService(t)
	mr.findKeywordsFn = func(_ context.Context, _ query.Keywords, _ int) ([]record.API, error) {
		return nil, domain.ErrStoreUnavailable
	}

	_, err := svc.SearchByKeywords(context.Background(), query.Keywords{"maps"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
