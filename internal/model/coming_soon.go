package model

// ComingSoonResponse is the envelope returned by the upstream coming_soon
// endpoint.
type ComingSoonResponse struct {
	Value []ComingSoonMovie `json:"value"`
}

// ComingSoonMovie is a title without current showtimes.  CorporateFilmID is
// the identity used for deduplication and for matching against the
// billboard; an empty value makes the entry unique.
type ComingSoonMovie struct {
	ID              string  `json:"ID"`
	ScheduledFilmID string  `json:"ScheduledFilmId"`
	Title           string  `json:"Title"`
	Synopsis        string  `json:"Synopsis"`
	SynopsisAlt     string  `json:"SynopsisAlt"`
	RunTime         string  `json:"RunTime"`
	OpeningDate     string  `json:"OpeningDate"`
	TrailerURL      string  `json:"TrailerUrl"`
	GenreID         string  `json:"GenreId"`
	GenreID2        string  `json:"GenreId2"`
	GenreID3        *string `json:"GenreId3"`
	CorporateFilmID string  `json:"CorporateFilmId"`
	Rating          string  `json:"Rating"`
}

// Genres returns the non-empty genre ids in order.
func (m ComingSoonMovie) Genres() []string {
	return nonEmpty(&m.GenreID, &m.GenreID2, m.GenreID3)
}
