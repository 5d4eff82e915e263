package query

// APIRef is the minimal projection of an API match.
type APIRef struct {
	Name string `json:"name"`
}

// MashupRef is the minimal projection of a Mashup match.
type MashupRef struct {
	Title string `json:"title"`
}

// UsageCount is one row of the top-used-APIs ranking.
type UsageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// APIRichness is one row of the top-API-rich-mashups ranking.
type APIRichness struct {
	Title      string `json:"title"`
	NumberAPIs int    `json:"numberApis"`
}
