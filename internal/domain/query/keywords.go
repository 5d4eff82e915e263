package query

import (
	"fmt"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain"
)

// Keywords is an ordered keyword list. A record matches when every keyword
// appears as a case-insensitive substring of at least one of the record's
// title, summary or description. Keyword order never affects the result set.
type Keywords []string

// Validate rejects an empty keyword list. A zero-keyword search would be an
// empty conjunction matching the whole collection, which callers never want
// implicitly.
func (k Keywords) Validate() error {
	if len(k) == 0 {
		return fmt.Errorf("at least one keyword is required: %w", domain.ErrInvalidQuery)
	}
	return nil
}

// Match reports whether every keyword occurs in at least one field.
// Absent optional fields are treated as empty.
func (k Keywords) Match(title string, summary, description *string) bool {
	fields := []string{strings.ToLower(title)}
	if summary != nil {
		fields = append(fields, strings.ToLower(*summary))
	}
	if description != nil {
		fields = append(fields, strings.ToLower(*description))
	}

	for _, kw := range k {
		lkw := strings.ToLower(kw)
		found := false
		for _, f := range fields {
			if strings.Contains(f, lkw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
