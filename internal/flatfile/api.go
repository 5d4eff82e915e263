package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain"
	"github.com/apicatalog/catalogd/internal/domain/record"
)

// APIFieldCount is the exact field count of an API dump line.
const APIFieldCount = 46

// apiField binds one flat-file position to one record attribute, with a
// decoder and the matching encoder. Schema drift is a one-row change here;
// nothing else does index arithmetic.
type apiField struct {
	pos  int
	name string
	set  func(*record.API, string) error
	get  func(*record.API) string
}

// strAttr builds the schema row for a plain optional string attribute.
func strAttr(pos int, name string, fp func(*record.API) **string) apiField {
	return apiField{
		pos:  pos,
		name: name,
		set: func(r *record.API, v string) error {
			*fp(r) = optStr(v)
			return nil
		},
		get: func(r *record.API) string { return derefStr(*fp(r)) },
	}
}

// apiSchema covers positions 1..45. Position 0 carries the source catalog's
// own identifier and is discarded: the store is the sole identifier authority.
var apiSchema = []apiField{
	{
		pos: 1, name: "title",
		set: func(r *record.API, v string) error { r.Title = v; return nil },
		get: func(r *record.API) string { return r.Title },
	},
	strAttr(2, "summary", func(r *record.API) **string { return &r.Summary }),
	{
		pos: 3, name: "rating",
		set: func(r *record.API, v string) error {
			f, err := optFloat(v)
			if err != nil {
				return err
			}
			r.Rating = f
			return nil
		},
		get: func(r *record.API) string {
			if r.Rating == nil {
				return ""
			}
			return strconv.FormatFloat(*r.Rating, 'f', -1, 64)
		},
	},
	{
		pos: 4, name: "name",
		set: func(r *record.API, v string) error { r.Name = v; return nil },
		get: func(r *record.API) string { return r.Name },
	},
	strAttr(5, "label", func(r *record.API) **string { return &r.Label }),
	strAttr(6, "author", func(r *record.API) **string { return &r.Author }),
	strAttr(7, "description", func(r *record.API) **string { return &r.Description }),
	{
		pos: 8, name: "type",
		set: func(r *record.API, v string) error {
			n, err := optInt(v)
			if err != nil {
				return err
			}
			r.Type = n
			return nil
		},
		get: func(r *record.API) string {
			if r.Type == nil {
				return ""
			}
			return strconv.Itoa(*r.Type)
		},
	},
	strAttr(9, "downloads", func(r *record.API) **string { return &r.Downloads }),
	strAttr(10, "useCount", func(r *record.API) **string { return &r.UseCount }),
	strAttr(11, "sampleUrl", func(r *record.API) **string { return &r.SampleURL }),
	strAttr(12, "downloadUrl", func(r *record.API) **string { return &r.DownloadURL }),
	strAttr(13, "dateModified", func(r *record.API) **string { return &r.DateModified }),
	strAttr(14, "remoteFeed", func(r *record.API) **string { return &r.RemoteFeed }),
	strAttr(15, "numComments", func(r *record.API) **string { return &r.NumComments }),
	strAttr(16, "commentsUrl", func(r *record.API) **string { return &r.CommentsURL }),
	{
		pos: 17, name: "tags",
		set: func(r *record.API, v string) error { r.Tags = SplitTags(v); return nil },
		get: func(r *record.API) string { return strings.Join(r.Tags, ListSep) },
	},
	strAttr(18, "category", func(r *record.API) **string { return &r.Category }),
	strAttr(19, "protocols", func(r *record.API) **string { return &r.Protocols }),
	strAttr(20, "serviceEndpoint", func(r *record.API) **string { return &r.ServiceEndpoint }),
	strAttr(21, "version", func(r *record.API) **string { return &r.Version }),
	strAttr(22, "wsdl", func(r *record.API) **string { return &r.WSDL }),
	strAttr(23, "dataFormats", func(r *record.API) **string { return &r.DataFormats }),
	strAttr(24, "apiGroups", func(r *record.API) **string { return &r.APIGroups }),
	strAttr(25, "example", func(r *record.API) **string { return &r.Example }),
	strAttr(26, "clientInstall", func(r *record.API) **string { return &r.ClientInstall }),
	strAttr(27, "authentication", func(r *record.API) **string { return &r.Authentication }),
	strAttr(28, "ssl", func(r *record.API) **string { return &r.SSL }),
	strAttr(29, "readonly", func(r *record.API) **string { return &r.Readonly }),
	strAttr(30, "vendorApiKits", func(r *record.API) **string { return &r.VendorAPIKits }),
	strAttr(31, "communityApiKits", func(r *record.API) **string { return &r.CommunityAPIKits }),
	strAttr(32, "blog", func(r *record.API) **string { return &r.Blog }),
	strAttr(33, "forum", func(r *record.API) **string { return &r.Forum }),
	strAttr(34, "support", func(r *record.API) **string { return &r.Support }),
	strAttr(35, "accountReq", func(r *record.API) **string { return &r.AccountReq }),
	strAttr(36, "commercial", func(r *record.API) **string { return &r.Commercial }),
	strAttr(37, "provider", func(r *record.API) **string { return &r.Provider }),
	strAttr(38, "managedBy", func(r *record.API) **string { return &r.ManagedBy }),
	strAttr(39, "nonCommercial", func(r *record.API) **string { return &r.NonCommercial }),
	strAttr(40, "dataLicensing", func(r *record.API) **string { return &r.DataLicensing }),
	strAttr(41, "fees", func(r *record.API) **string { return &r.Fees }),
	strAttr(42, "limits", func(r *record.API) **string { return &r.Limits }),
	strAttr(43, "terms", func(r *record.API) **string { return &r.Terms }),
	strAttr(44, "company", func(r *record.API) **string { return &r.Company }),
	strAttr(45, "updated", func(r *record.API) **string { return &r.Updated }),
}

// ParseAPI decodes one API dump line into a record. The returned record has
// no identifier; the store assigns one at insert.
func ParseAPI(line string) (record.API, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), FieldSep)
	if len(fields) != APIFieldCount {
		return record.API{}, fmt.Errorf(
			"api record has %d fields, want %d: %w",
			len(fields), APIFieldCount, domain.ErrTruncatedRecord,
		)
	}

	rec := record.API{Tags: []string{}}
	for _, f := range apiSchema {
		if err := f.set(&rec, strings.TrimSpace(fields[f.pos])); err != nil {
			return record.API{}, fmt.Errorf("field %d (%s): %w", f.pos, f.name, err)
		}
	}
	return rec, nil
}

// EncodeAPI re-serializes a record into the dump format. Position 0 carries
// the record's identifier (empty when unassigned).
func EncodeAPI(rec *record.API) string {
	fields := make([]string, APIFieldCount)
	fields[0] = rec.ID
	for _, f := range apiSchema {
		fields[f.pos] = f.get(rec)
	}
	return strings.Join(fields, FieldSep)
}
