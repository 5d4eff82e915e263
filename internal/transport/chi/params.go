package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/apicatalog/catalogd/internal/domain/query"
)

// apiCriteriaFromQuery builds an APICriteria from query parameters. Absent
// parameters stay nil and are omitted from the match.
func apiCriteriaFromQuery(q url.Values) (query.APICriteria, error) {
	var c query.APICriteria

	year, err := intParam(q, "updated_year")
	if err != nil {
		return query.APICriteria{}, err
	}
	c.UpdatedYear = year

	if v := q.Get("protocols"); v != "" {
		c.Protocols = &v
	}
	if v := q.Get("category"); v != "" {
		c.Category = &v
	}

	minRating, err := floatParam(q, "min_rating")
	if err != nil {
		return query.APICriteria{}, err
	}
	c.MinRating = minRating

	maxRating, err := floatParam(q, "max_rating")
	if err != nil {
		return query.APICriteria{}, err
	}
	c.MaxRating = maxRating

	c.Tags = query.SplitList(q.Get("tags"))
	return c, nil
}

// mashupCriteriaFromQuery builds a MashupCriteria from query parameters.
func mashupCriteriaFromQuery(q url.Values) (query.MashupCriteria, error) {
	var c query.MashupCriteria

	year, err := intParam(q, "updated_year")
	if err != nil {
		return query.MashupCriteria{}, err
	}
	c.UpdatedYear = year

	c.UsedAPIs = query.SplitList(q.Get("used_apis"))
	c.Tags = query.SplitList(q.Get("tags"))
	return c, nil
}

// keywordsFromQuery collects repeated ?keywords= values, trimmed, empties
// dropped. Validation of the resulting list belongs to the use case.
func keywordsFromQuery(q url.Values) query.Keywords {
	var kw query.Keywords
	for _, v := range q["keywords"] {
		if v = strings.TrimSpace(v); v != "" {
			kw = append(kw, v)
		}
	}
	return kw
}

// topKFromQuery parses ?k=, falling back to def when absent.
func topKFromQuery(q url.Values, def int) (int, error) {
	v := q.Get("k")
	if v == "" {
		return def, nil
	}
	k, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("k must be an integer, got %q", v)
	}
	return k, nil
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	return &n, nil
}

func floatParam(q url.Values, name string) (*float64, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", name, v)
	}
	return &f, nil
}
