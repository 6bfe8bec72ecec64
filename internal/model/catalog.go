package model

// EntryKind discriminates the two movie shapes served by the catalog.
type EntryKind string

const (
	KindBillboard  EntryKind = "billboard"
	KindComingSoon EntryKind = "coming_soon"
)

// CatalogEntry is a movie from either feed.  Kind is set once when the entry
// is built and exactly one of Billboard or ComingSoon is non-nil.
type CatalogEntry struct {
	Kind       EntryKind        `json:"kind"`
	Billboard  *BillboardMovie  `json:"billboard,omitempty"`
	ComingSoon *ComingSoonMovie `json:"coming_soon,omitempty"`
}

// FromBillboard wraps a billboard movie.
func FromBillboard(m BillboardMovie) CatalogEntry {
	return CatalogEntry{Kind: KindBillboard, Billboard: &m}
}

// FromComingSoon wraps a coming-soon movie.
func FromComingSoon(m ComingSoonMovie) CatalogEntry {
	return CatalogEntry{Kind: KindComingSoon, ComingSoon: &m}
}

// Title returns the display title.  Coming-soon entries use SynopsisAlt,
// which carries the localized title upstream, falling back to Title.
func (e CatalogEntry) Title() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.Title
	case KindComingSoon:
		if e.ComingSoon.SynopsisAlt != "" {
			return e.ComingSoon.SynopsisAlt
		}
		return e.ComingSoon.Title
	}
	return ""
}

// SearchTitle returns the title matched by free-text search.
func (e CatalogEntry) SearchTitle() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.Title
	case KindComingSoon:
		return e.ComingSoon.Title
	}
	return ""
}

// Genres returns the entry's non-empty genre tags in order.
func (e CatalogEntry) Genres() []string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.Genres()
	case KindComingSoon:
		return e.ComingSoon.Genres()
	}
	return nil
}

// FilmID is the key the UI uses for an entry: film_HO_code for billboard
// movies, CorporateFilmId for coming-soon ones.
func (e CatalogEntry) FilmID() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.FilmHOCode
	case KindComingSoon:
		return e.ComingSoon.CorporateFilmID
	}
	return ""
}

// PosterID is the corporate film id used to build the poster URL.
func (e CatalogEntry) PosterID() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.CorporateFilmID
	case KindComingSoon:
		return e.ComingSoon.CorporateFilmID
	}
	return ""
}

// OpeningDate returns the raw release date string.
func (e CatalogEntry) OpeningDate() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.OpeningDate
	case KindComingSoon:
		return e.ComingSoon.OpeningDate
	}
	return ""
}

// Rating returns the age rating.
func (e CatalogEntry) Rating() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.Rating
	case KindComingSoon:
		return e.ComingSoon.Rating
	}
	return ""
}

// Runtime returns the running time as published upstream.
func (e CatalogEntry) Runtime() string {
	switch e.Kind {
	case KindBillboard:
		return e.Billboard.Runtime
	case KindComingSoon:
		return e.ComingSoon.RunTime
	}
	return ""
}
