package query

import (
	"errors"
	"testing"

	"github.com/apicatalog/catalogd/internal/domain"
)

func TestKeywords_Validate(t *testing.T) {
	if err := (Keywords{}).Validate(); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("empty keyword list must be rejected, got %v", err)
	}
	if err := (Keywords{"map"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKeywords_MatchAcrossFields(t *testing.T) {
	summary := "Mapping for the masses"
	description := "Plot markers and routes"

	// Each keyword may be satisfied by a different field.
	kw := Keywords{"google", "masses", "routes"}
	if !kw.Match("Google Maps API", &summary, &description) {
		t.Error("expected match with keywords spread across fields")
	}

	// One unsatisfied keyword fails the whole conjunction.
	kw = Keywords{"google", "finance"}
	if kw.Match("Google Maps API", &summary, &description) {
		t.Error("one missing keyword must reject the record")
	}
}

func TestKeywords_CaseInsensitive(t *testing.T) {
	summary := "MAPPING for the masses"
	if !(Keywords{"mApPiNg"}).Match("title", &summary, nil) {
		t.Error("keyword match must be case-insensitive")
	}
}

func TestKeywords_OrderIrrelevant(t *testing.T) {
	summary := "Mapping for the masses"
	a := Keywords{"google", "masses"}
	b := Keywords{"masses", "google"}

	got := a.Match("Google Maps API", &summary, nil)
	if got != b.Match("Google Maps API", &summary, nil) {
		t.Error("keyword order must not affect the result")
	}
	if !got {
		t.Error("expected match")
	}
}

func TestKeywords_AbsentFields(t *testing.T) {
	if (Keywords{"masses"}).Match("Google Maps API", nil, nil) {
		t.Error("absent fields must not match")
	}
	if !(Keywords{"google"}).Match("Google Maps API", nil, nil) {
		t.Error("title alone must be searchable")
	}
}
