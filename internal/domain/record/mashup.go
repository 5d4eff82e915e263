package record

import (
	"fmt"

	"github.com/apicatalog/catalogd/internal/domain"
)

// APIUsage references a consumed API by its API.Name, not by store identifier.
// Referential integrity is not enforced: a mashup may name an API that was
// never ingested.
type APIUsage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Mashup is one cataloged mashup composition. Unlike API, its download and
// comment counters are integers in the source catalog.
type Mashup struct {
	ID           string     `json:"_id,omitempty"`
	Title        string     `json:"title"`
	Summary      *string    `json:"summary,omitempty"`
	Author       *string    `json:"author,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Type         *string    `json:"type,omitempty"`
	Downloads    *int       `json:"downloads,omitempty"`
	UseCount     *int       `json:"useCount,omitempty"`
	NumComments  *int       `json:"numComments,omitempty"`
	SampleURL    *string    `json:"sampleUrl,omitempty"`
	DateModified *string    `json:"dateModified,omitempty"`
	CommentsURL  *string    `json:"commentsUrl,omitempty"`
	Tags         []string   `json:"tags"`
	APIs         []APIUsage `json:"apis"`
	Updated      *string    `json:"updated,omitempty"`
}

// Validate checks required attributes.
func (m *Mashup) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrInvalidRecord)
	}
	return nil
}
