package flatfile

import (
	"fmt"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// MashupMinFields is the minimum field count of a mashup dump line: the fixed
// head (positions 0..15) plus the trailing APIs list and updated fields.
const MashupMinFields = 18

// mashupField binds one head position to one record attribute. Positions 0
// (source id), 3 (rating), 4 (name) and 5 (label) exist in the dump but are
// not part of the mashup model and are discarded.
type mashupField struct {
	pos  int
	name string
	set  func(*record.Mashup, string) error
}

func mStrAttr(pos int, name string, fp func(*record.Mashup) **string) mashupField {
	return mashupField{
		pos:  pos,
		name: name,
		set: func(r *record.Mashup, v string) error {
			*fp(r) = optStr(v)
			return nil
		},
	}
}

func mIntAttr(pos int, name string, fp func(*record.Mashup) **int) mashupField {
	return mashupField{
		pos:  pos,
		name: name,
		set: func(r *record.Mashup, v string) error {
			n, err := optInt(v)
			if err != nil {
				return err
			}
			*fp(r) = n
			return nil
		},
	}
}

var mashupSchema = []mashupField{
	{
		pos: 1, name: "title",
		set: func(r *record.Mashup, v string) error { r.Title = v; return nil },
	},
	mStrAttr(2, "summary", func(r *record.Mashup) **string { return &r.Summary }),
	mStrAttr(6, "author", func(r *record.Mashup) **string { return &r.Author }),
	mStrAttr(7, "description", func(r *record.Mashup) **string { return &r.Description }),
	mStrAttr(8, "type", func(r *record.Mashup) **string { return &r.Type }),
	mIntAttr(9, "downloads", func(r *record.Mashup) **int { return &r.Downloads }),
	mIntAttr(10, "useCount", func(r *record.Mashup) **int { return &r.UseCount }),
	mStrAttr(11, "sampleUrl", func(r *record.Mashup) **string { return &r.SampleURL }),
	mStrAttr(12, "dateModified", func(r *record.Mashup) **string { return &r.DateModified }),
	mIntAttr(13, "numComments", func(r *record.Mashup) **int { return &r.NumComments }),
	mStrAttr(14, "commentsUrl", func(r *record.Mashup) **string { return &r.CommentsURL }),
	{
		pos: 15, name: "tags",
		set: func(r *record.Mashup, v string) error { r.Tags = SplitTags(v); return nil },
	},
}

// ParseMashup decodes one mashup dump line. The APIs list occupies the
// second-to-last field and updated the last, regardless of total field count.
func ParseMashup(line string) (record.Mashup, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), FieldSep)
	if len(fields) < MashupMinFields {
		return record.Mashup{}, fmt.Errorf(
			"mashup record has %d fields, want at least %d: %w",
			len(fields), MashupMinFields, domain.ErrTruncatedRecord,
		)
	}

	rec := record.Mashup{Tags: []string{}}
	for _, f := range mashupSchema {
		if err := f.set(&rec, strings.TrimSpace(fields[f.pos])); err != nil {
			return record.Mashup{}, fmt.Errorf("field %d (%s): %w", f.pos, f.name, err)
		}
	}

	rec.APIs = parseUsages(strings.TrimSpace(fields[len(fields)-2]))
	rec.Updated = optStr(strings.TrimSpace(fields[len(fields)-1]))
	return rec, nil
}

// parseUsages splits the "###"-separated API list into name/url pairs.
// An entry that does not split into exactly two "$$$" parts is silently
// dropped; the record itself still parses. This reproduces the source
// catalog tooling's lossy behavior on purpose.
func parseUsages(v string) []record.APIUsage {
	usages := []record.APIUsage{}
	if v == "" {
		return usages
	}
	for _, entry := range strings.Split(v, ListSep) {
		parts := strings.Split(entry, PairSep)
		if len(parts) != 2 {
			continue
		}
		usages = append(usages, record.APIUsage{
			Name: strings.TrimSpace(parts[0]),
			URL:  strings.TrimSpace(parts[1]),
		})
	}
	return usages
}
