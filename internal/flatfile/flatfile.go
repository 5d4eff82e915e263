// Package flatfile parses the web-services catalog dump format: one record
// per line, fields separated by "$#$", list members by "###" and API-usage
// name/url pairs by "$$$".
//
// Every field is trimmed and a field that is empty after trimming becomes an
// absent attribute, never an empty string. The source tooling trimmed only
// mashup fields; that asymmetry was an accident, not a contract, so both
// record types normalize the same way here.
package flatfile

import (
	"strconv"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain"
)

// Delimiters of the catalog dump format.
const (
	FieldSep = "$#$"
	ListSep  = "###"
	PairSep  = "$$$"
)

// SplitTags splits a "###"-separated tag field. Empty input yields an empty
// set, never a single empty-string element.
func SplitTags(v string) []string {
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ListSep)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func optStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// optFloat parses an optional float field; a present non-numeric value is a
// record-aborting parse error.
func optFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, domain.ErrMalformedNumericField
	}
	return &f, nil
}

// optInt parses an optional integer field with the same error contract.
func optInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, domain.ErrMalformedNumericField
	}
	return &n, nil
}
