package chi

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	chiRouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/apicatalog/catalogd/internal/db"
	apirepo "github.com/apicatalog/catalogd/internal/repository/api"
	mashuprepo "github.com/apicatalog/catalogd/internal/repository/mashup"
	apiuc "github.com/apicatalog/catalogd/internal/usecase/api"
	healthuc "github.com/apicatalog/catalogd/internal/usecase/health"
	mashupuc "github.com/apicatalog/catalogd/internal/usecase/mashup"
	rankinguc "github.com/apicatalog/catalogd/internal/usecase/ranking"
)

// fakeStore is an in-memory JSON document store driving the real repositories
// in handler tests.
type fakeStore struct {
	mu      sync.RWMutex
	docs    map[string][]byte
	pingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]byte{}}
}

func (f *fakeStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakeStore) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return wrapArray(data), nil
}

func (f *fakeStore) JSONGetMulti(_ context.Context, keys []string, _ string) ([][]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([][]byte, len(keys))
	for i, key := range keys {
		if data, ok := f.docs[key]; ok {
			out[i] = wrapArray(data)
		}
	}
	return out, nil
}

func (f *fakeStore) Scan(_ context.Context, pattern string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	prefix := strings.TrimSuffix(pattern, "*")
	keys := []string{}
	for key := range f.docs {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, key)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.docs[key]
	return ok, nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.pingErr
}

// wrapArray mimics a JSON.GET "$" reply: a one-element array.
func wrapArray(data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, '[')
	out = append(out, data...)
	return append(out, ']')
}

// newTestRouter wires the full stack over a fake store.
func newTestRouter(t *testing.T) (*chiRouter.Mux, *fakeStore) {
	t.Helper()

	fs := newFakeStore()
	apiSvc := apiuc.New(apirepo.New(fs))
	mashupSvc := mashupuc.New(mashuprepo.New(fs))
	rankingSvc := rankinguc.New(mashuprepo.New(fs))
	healthSvc := healthuc.New(fs)

	server := NewServer(apiSvc, mashupSvc, rankingSvc, healthSvc, zap.NewNop())

	r := chiRouter.NewRouter()
	server.Routes(r)
	return r, fs
}

func doRequest(t *testing.T, r *chiRouter.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
