// Package query is the store-facing query vocabulary: typed criteria values
// with match semantics the repositories evaluate while streaming documents.
// All dimensions of a criteria value combine with logical AND; the tag and
// used-API dimensions are each an OR over their set members. Parameters left
// nil (or empty sets) are omitted from the match entirely.
package query

import (
	"strconv"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain/record"
)

// APICriteria filters API records.
type APICriteria struct {
	UpdatedYear *int
	Protocols   *string
	Category    *string
	MinRating   *float64
	MaxRating   *float64
	Tags        []string
}

// IsZero reports whether no dimension is set.
func (c APICriteria) IsZero() bool {
	return c.UpdatedYear == nil && c.Protocols == nil && c.Category == nil &&
		c.MinRating == nil && c.MaxRating == nil && len(c.Tags) == 0
}

// Matches reports whether rec satisfies every supplied dimension.
func (c APICriteria) Matches(rec *record.API) bool {
	if c.UpdatedYear != nil && !yearPrefixMatch(rec.Updated, *c.UpdatedYear) {
		return false
	}
	if c.Protocols != nil && !containsFold(rec.Protocols, *c.Protocols) {
		return false
	}
	if c.Category != nil && !containsFold(rec.Category, *c.Category) {
		return false
	}
	if c.MinRating != nil && (rec.Rating == nil || *rec.Rating < *c.MinRating) {
		return false
	}
	if c.MaxRating != nil && (rec.Rating == nil || *rec.Rating > *c.MaxRating) {
		return false
	}
	if len(c.Tags) > 0 && !intersects(rec.Tags, c.Tags) {
		return false
	}
	return true
}

// MashupCriteria filters Mashup records.
type MashupCriteria struct {
	UpdatedYear *int
	UsedAPIs    []string
	Tags        []string
}

// IsZero reports whether no dimension is set.
func (c MashupCriteria) IsZero() bool {
	return c.UpdatedYear == nil && len(c.UsedAPIs) == 0 && len(c.Tags) == 0
}

// Matches reports whether rec satisfies every supplied dimension.
func (c MashupCriteria) Matches(rec *record.Mashup) bool {
	if c.UpdatedYear != nil && !yearPrefixMatch(rec.Updated, *c.UpdatedYear) {
		return false
	}
	if len(c.UsedAPIs) > 0 {
		names := make([]string, 0, len(rec.APIs))
		for _, u := range rec.APIs {
			names = append(names, u.Name)
		}
		if !intersects(names, c.UsedAPIs) {
			return false
		}
	}
	if len(c.Tags) > 0 && !intersects(rec.Tags, c.Tags) {
		return false
	}
	return true
}

// SplitList parses a comma-separated criteria input: items are trimmed and
// empty items discarded. An empty input yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// yearPrefixMatch reports whether updated starts with the decimal year.
func yearPrefixMatch(updated *string, year int) bool {
	return updated != nil && strings.HasPrefix(*updated, strconv.Itoa(year))
}

// containsFold is a case-insensitive substring match on an optional field.
// An absent field never matches.
func containsFold(field *string, sub string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(strings.TrimSpace(sub)))
}

// intersects reports whether any member of have equals a member of want.
func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
