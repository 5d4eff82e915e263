package mashup

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/apicatalog/catalogd/internal/domain/record"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn      func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	jsonGetMultiFn func(ctx context.Context, keys []string, path string) ([][]byte, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
	delFn          func(ctx context.Context, key string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return []byte("[]"), nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys, path)
	}
	return make([][]byte, len(keys)), nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return true, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

// seedStore backs the mock with a fixed id -> record map.
func seedStore(t *testing.T, ms *mockStore, recs map[string]record.Mashup) {
	t.Helper()

	ms.scanFn = func(_ context.Context, _ string) ([]string, error) {
		keys := make([]string, 0, len(recs))
		for id := range recs {
			keys = append(keys, recordKey(id))
		}
		return keys, nil
	}
	ms.jsonGetMultiFn = func(_ context.Context, keys []string, _ string) ([][]byte, error) {
		out := make([][]byte, len(keys))
		for i, key := range keys {
			rec, ok := recs[extractID(key)]
			if !ok {
				continue
			}
			data, err := json.Marshal([]record.Mashup{rec})
			if err != nil {
				t.Fatalf("marshal seed record: %v", err)
			}
			out[i] = data
		}
		return out, nil
	}
}

// usages builds an APIUsage list from names.
func usages(names ...string) []record.APIUsage {
	out := make([]record.APIUsage, len(names))
	for i, n := range names {
		out[i] = record.APIUsage{Name: n, URL: "http://" + n + ".example"}
	}
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
