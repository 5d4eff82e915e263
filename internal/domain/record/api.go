// Package record holds the two persisted catalog entity types and their
// soft cross-reference. Optional attributes are pointers: a nil pointer means
// the attribute is absent, which is distinct from a present empty string and
// must survive a store round-trip.
package record

import (
	"fmt"

	"github.com/apicatalog/catalogd/internal/domain"
)

// API is one cataloged web API.
//
// Name is the canonical cross-reference key used by Mashup.APIs entries;
// Title is the display name. Both are required. Downloads, UseCount and
// NumComments are free-form strings in the source catalog (some numeric,
// some not) and are carried opaquely.
type API struct {
	ID               string   `json:"_id,omitempty"`
	Title            string   `json:"title"`
	Summary          *string  `json:"summary,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	Name             string   `json:"name"`
	Label            *string  `json:"label,omitempty"`
	Author           *string  `json:"author,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Type             *int     `json:"type,omitempty"`
	Downloads        *string  `json:"downloads,omitempty"`
	UseCount         *string  `json:"useCount,omitempty"`
	SampleURL        *string  `json:"sampleUrl,omitempty"`
	DownloadURL      *string  `json:"downloadUrl,omitempty"`
	DateModified     *string  `json:"dateModified,omitempty"`
	RemoteFeed       *string  `json:"remoteFeed,omitempty"`
	NumComments      *string  `json:"numComments,omitempty"`
	CommentsURL      *string  `json:"commentsUrl,omitempty"`
	Tags             []string `json:"tags"`
	Category         *string  `json:"category,omitempty"`
	Protocols        *string  `json:"protocols,omitempty"`
	ServiceEndpoint  *string  `json:"serviceEndpoint,omitempty"`
	Version          *string  `json:"version,omitempty"`
	WSDL             *string  `json:"wsdl,omitempty"`
	DataFormats      *string  `json:"dataFormats,omitempty"`
	APIGroups        *string  `json:"apiGroups,omitempty"`
	Example          *string  `json:"example,omitempty"`
	ClientInstall    *string  `json:"clientInstall,omitempty"`
	Authentication   *string  `json:"authentication,omitempty"`
	SSL              *string  `json:"ssl,omitempty"`
	Readonly         *string  `json:"readonly,omitempty"`
	VendorAPIKits    *string  `json:"vendorApiKits,omitempty"`
	CommunityAPIKits *string  `json:"communityApiKits,omitempty"`
	Blog             *string  `json:"blog,omitempty"`
	Forum            *string  `json:"forum,omitempty"`
	Support          *string  `json:"support,omitempty"`
	AccountReq       *string  `json:"accountReq,omitempty"`
	Commercial       *string  `json:"commercial,omitempty"`
	Provider         *string  `json:"provider,omitempty"`
	ManagedBy        *string  `json:"managedBy,omitempty"`
	NonCommercial    *string  `json:"nonCommercial,omitempty"`
	DataLicensing    *string  `json:"dataLicensing,omitempty"`
	Fees             *string  `json:"fees,omitempty"`
	Limits           *string  `json:"limits,omitempty"`
	Terms            *string  `json:"terms,omitempty"`
	Company          *string  `json:"company,omitempty"`
	Updated          *string  `json:"updated,omitempty"`
}

// Validate checks required attributes.
func (a *API) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrInvalidRecord)
	}
	if a.Title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrInvalidRecord)
	}
	return nil
}
