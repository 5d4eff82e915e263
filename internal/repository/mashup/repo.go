// Package mashup is the store adapter for Mashup records. Besides the find
// operations it owns the two aggregations — most-used APIs and API-richest
// mashups — expressed as scan, group/count, sort, limit over the collection.
package mashup

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

const collection = "mashups"

// store is the consumer interface for Mashup records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo implements usecase/mashup.Repository and usecase/ranking.Repository.
type Repo struct {
	store store
}

// New creates a Mashup record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Insert persists a record under a freshly assigned identifier and returns
// the stored record. Any caller-supplied identifier is discarded.
func (r *Repo) Insert(ctx context.Context, rec record.Mashup) (record.Mashup, error) {
	rec.ID = uuid.NewString()

	data, err := json.Marshal(rec)
	if err != nil {
		return record.Mashup{}, fmt.Errorf("marshal mashup record: %w", err)
	}
	if err := r.store.JSONSet(ctx, recordKey(rec.ID), "$", data); err != nil {
		return record.Mashup{}, wrapStore("json.set mashup", err)
	}
	return rec, nil
}

// Get returns a record by identifier.
func (r *Repo) Get(ctx context.Context, id string) (record.Mashup, error) {
	raw, err := r.store.JSONGet(ctx, recordKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return record.Mashup{}, domain.ErrNotFound
		}
		return record.Mashup{}, wrapStore("json.get mashup", err)
	}
	return decode(id, raw)
}

// Delete removes a record by identifier.
func (r *Repo) Delete(ctx context.Context, id string) error {
	ok, err := r.store.Exists(ctx, recordKey(id))
	if err != nil {
		return wrapStore("exists mashup", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, recordKey(id)); err != nil {
		return wrapStore("del mashup", err)
	}
	return nil
}

// List returns up to limit records in stable key order.
func (r *Repo) List(ctx context.Context, limit int) ([]record.Mashup, error) {
	return r.find(ctx, limit, func(*record.Mashup) bool { return true })
}

// FindCriteria returns up to limit records matching the criteria.
func (r *Repo) FindCriteria(ctx context.Context, c query.MashupCriteria, limit int) ([]record.Mashup, error) {
	return r.find(ctx, limit, func(rec *record.Mashup) bool { return c.Matches(rec) })
}

// FindKeywords returns up to limit records matching every keyword.
func (r *Repo) FindKeywords(ctx context.Context, kw query.Keywords, limit int) ([]record.Mashup, error) {
	return r.find(ctx, limit, func(rec *record.Mashup) bool {
		return kw.Match(rec.Title, rec.Summary, rec.Description)
	})
}

// TopUsedAPIs groups every APIUsage entry across all mashups by name,
// counts occurrences and returns the k highest. Empty usage names are
// excluded. Ties break on name ascending so rankings are deterministic and
// a smaller k is always a prefix of a larger one.
func (r *Repo) TopUsedAPIs(ctx context.Context, k int) ([]query.UsageCount, error) {
	if k <= 0 {
		return []query.UsageCount{}, nil
	}

	counts := map[string]int{}
	err := r.scan(ctx, func(rec *record.Mashup) bool {
		for _, u := range rec.APIs {
			if u.Name != "" {
				counts[u.Name]++
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	ranking := make([]query.UsageCount, 0, len(counts))
	for name, n := range counts {
		ranking = append(ranking, query.UsageCount{Name: name, Count: n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking, nil
}

// TopAPIRich ranks mashups by the size of their APIs list, descending, and
// returns the k richest. Only mashups with a non-empty title participate; a
// missing list counts as zero. Ties break on title ascending.
func (r *Repo) TopAPIRich(ctx context.Context, k int) ([]query.APIRichness, error) {
	if k <= 0 {
		return []query.APIRichness{}, nil
	}

	ranking := []query.APIRichness{}
	err := r.scan(ctx, func(rec *record.Mashup) bool {
		if rec.Title != "" {
			ranking = append(ranking, query.APIRichness{Title: rec.Title, NumberAPIs: len(rec.APIs)})
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].NumberAPIs != ranking[j].NumberAPIs {
			return ranking[i].NumberAPIs > ranking[j].NumberAPIs
		}
		return ranking[i].Title < ranking[j].Title
	})

	if len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking, nil
}

func (r *Repo) find(ctx context.Context, limit int, match func(*record.Mashup) bool) ([]record.Mashup, error) {
	out := []record.Mashup{}
	if limit <= 0 {
		return out, nil
	}
	err := r.scan(ctx, func(rec *record.Mashup) bool {
		if match(rec) {
			out = append(out, *rec)
		}
		return len(out) < limit
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan streams every stored record through visit in stable key order;
// visit returns false to stop early.
func (r *Repo) scan(ctx context.Context, visit func(*record.Mashup) bool) error {
	keys, err := r.store.Scan(ctx, recordKey("*"))
	if err != nil {
		return wrapStore("scan mashups", err)
	}
	sort.Strings(keys)

	const chunk = 100
	for i := 0; i < len(keys); i += chunk {
		end := min(i+chunk, len(keys))
		raws, err := r.store.JSONGetMulti(ctx, keys[i:end], "$")
		if err != nil {
			return wrapStore("json.get mashups", err)
		}
		for j, raw := range raws {
			if raw == nil {
				continue
			}
			rec, err := decode(extractID(keys[i+j]), raw)
			if err != nil {
				continue
			}
			if !visit(&rec) {
				return nil
			}
		}
	}
	return nil
}

// decode unmarshals a JSON.GET "$" result (a one-element array).
func decode(id string, raw []byte) (record.Mashup, error) {
	var docs []record.Mashup
	if err := json.Unmarshal(raw, &docs); err != nil {
		return record.Mashup{}, fmt.Errorf("unmarshal mashup record %s: %w", id, err)
	}
	if len(docs) == 0 {
		return record.Mashup{}, domain.ErrNotFound
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
