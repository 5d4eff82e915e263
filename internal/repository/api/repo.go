// Package api is the store adapter for API records: insert, find-by-id,
// list and the criteria/keyword find operations. Filters arrive as typed
// query values and are evaluated while streaming scanned documents — the
// scan+predicate pair is this store's native filter representation.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/apicatalog/catalogd/internal/db"
	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/query"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

const collection = "apis"

// store is the consumer interface for API records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo implements usecase/api.Repository.
type Repo struct {
	store store
}

// New creates an API record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Insert persists a record under a freshly assigned identifier and returns
// the stored record. Any caller-supplied identifier is discarded.
func (r *Repo) Insert(ctx context.Context, rec record.API) (record.API, error) {
	rec.ID = uuid.NewString()

	data, err := json.Marshal(rec)
	if err != nil {
		return record.API{}, fmt.Errorf("marshal api record: %w", err)
	}
	if err := r.store.JSONSet(ctx, recordKey(rec.ID), "$", data); err != nil {
		return record.API{}, wrapStore("json.set api", err)
	}
	return rec, nil
}

// Get returns a record by identifier.
func (r *Repo) Get(ctx context.Context, id string) (record.API, error) {
	raw, err := r.store.JSONGet(ctx, recordKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return record.API{}, domain.ErrNotFound
		}
		return record.API{}, wrapStore("json.get api", err)
	}
	return decode(id, raw)
}

// Delete removes a record by identifier.
func (r *Repo) Delete(ctx context.Context, id string) error {
	ok, err := r.store.Exists(ctx, recordKey(id))
	if err != nil {
		return wrapStore("exists api", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, recordKey(id)); err != nil {
		return wrapStore("del api", err)
	}
	return nil
}

// List returns up to limit records in stable key order.
func (r *Repo) List(ctx context.Context, limit int) ([]record.API, error) {
	return r.collect(ctx, limit, func(*record.API) bool { return true })
}

// FindCriteria returns up to limit records matching the criteria.
func (r *Repo) FindCriteria(ctx context.Context, c query.APICriteria, limit int) ([]record.API, error) {
	return r.collect(ctx, limit, func(rec *record.API) bool { return c.Matches(rec) })
}

// FindKeywords returns up to limit records matching every keyword.
func (r *Repo) FindKeywords(ctx context.Context, kw query.Keywords, limit int) ([]record.API, error) {
	return r.collect(ctx, limit, func(rec *record.API) bool {
		return kw.Match(rec.Title, rec.Summary, rec.Description)
	})
}

// collect streams all stored records through the predicate, stopping once
// limit matches are gathered. Keys are sorted so results are deterministic
// across invocations.
func (r *Repo) collect(ctx context.Context, limit int, match func(*record.API) bool) ([]record.API, error) {
	out := []record.API{}
	if limit <= 0 {
		return out, nil
	}

	keys, err := r.store.Scan(ctx, recordKey("*"))
	if err != nil {
		return nil, wrapStore("scan apis", err)
	}
	sort.Strings(keys)

	const chunk = 100
	for i := 0; i < len(keys); i += chunk {
		end := min(i+chunk, len(keys))
		raws, err := r.store.JSONGetMulti(ctx, keys[i:end], "$")
		if err != nil {
			return nil, wrapStore("json.get apis", err)
		}
		for j, raw := range raws {
			if raw == nil {
				continue
			}
			rec, err := decode(extractID(keys[i+j]), raw)
			if err != nil {
				continue
			}
			if match(&rec) {
				out = append(out, rec)
				if len(out) >= limit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}

// decode unmarshals a JSON.GET "$" result (a one-element array).
func decode(id string, raw []byte) (record.API, error) {
	var docs []record.API
	if err := json.Unmarshal(raw, &docs); err != nil {
		return record.API{}, fmt.Errorf("unmarshal api record %s: %w", id, err)
	}
	if len(docs) == 0 {
		return record.API{}, domain.ErrNotFound
	}
	rec := docs[0]
	rec.ID = id
	return rec, nil
}

func recordKey(id string) string {
	return domain.KeyPrefix + collection + ":" + id
}

func extractID(key string) string {
	return strings.TrimPrefix(key, domain.KeyPrefix+collection+":")
}

func wrapStore(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
