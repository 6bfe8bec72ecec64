package model

// BillboardDay pairs a date with the movies scheduled at one theatre on
// that date.  The upstream billboard endpoint returns one entry per date.
type BillboardDay struct {
	Date   string           `json:"date"`
	Movies []BillboardMovie `json:"movies"`
}

// BillboardMovie is a movie currently scheduled at a theatre.
//
// Fields:
//  FilmHOCode      – stable film code, unique per movie within a billboard.
//  CorporateFilmID – cross-feed identifier; also names the poster image.
//  OpeningDate     – release date as an ISO string.
//  Genre*          – up to three genre tags, the last two optional.
//  Versions        – presentation cuts, each with its own sessions.
type BillboardMovie struct {
	Title           string         `json:"title"`
	TrailerURL      string         `json:"trailer_url"`
	GraphicURL      string         `json:"graphic_url"`
	Runtime         string         `json:"runtime"`
	Rating          string         `json:"rating"`
	FilmHOCode      string         `json:"film_HO_code"`
	CorporateFilmID string         `json:"corporate_film_id"`
	Synopsis        string         `json:"synopsis"`
	SynopsisAlt     string         `json:"synopsis_alt"`
	OpeningDate     string         `json:"opening_date"`
	Genre           string         `json:"genre"`
	Genre2          *string        `json:"genre2,omitempty"`
	Genre3          *string        `json:"genre3,omitempty"`
	Cast            []CastMember   `json:"cast"`
	Versions        []MovieVersion `json:"movie_versions"`
}

// Genres returns the non-empty genre tags in order.
func (m BillboardMovie) Genres() []string {
	return nonEmpty(&m.Genre, m.Genre2, m.Genre3)
}

// HasSessions reports whether any version carries at least one session.
func (m BillboardMovie) HasSessions() bool {
	for _, v := range m.Versions {
		if len(v.Sessions) > 0 {
			return true
		}
	}
	return false
}

// CastMember is an actor or director credited on a billboard movie.
type CastMember struct {
	ID         string `json:"ID"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
	PersonType string `json:"PersonType"`
}

// MovieVersion is one presentation cut of a movie.  Its free-text Title
// embeds format (2D, 3D, XD, DBOX) and language (DOB, SUB) tokens.
type MovieVersion struct {
	FilmHOPK   string    `json:"film_HOPK"`
	Title      string    `json:"title"`
	FilmHOCode string    `json:"film_HO_code"`
	ID         string    `json:"id"`
	Sessions   []Session `json:"sessions"`
}

// Session is a single showtime.  Hour is the "HH:MM" string used for display.
type Session struct {
	ID             string `json:"id"`
	Showtime       string `json:"showtime"`
	Day            string `json:"day"`
	Hour           string `json:"hour"`
	SeatsAvailable int    `json:"seats_available"`
}

func nonEmpty(vals ...*string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != nil && *v != "" {
			out = append(out, *v)
		}
	}
	return out
}
