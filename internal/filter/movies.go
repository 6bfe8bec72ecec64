package filter

import (
	"strings"

	"github.com/iliyamo/cinema-billboard/internal/model"
)

// MovieFilter holds the showtimes page selections.
type MovieFilter struct {
	Format   string
	Language string
	Query    string
}

// Match reports whether m passes every active dimension of f.
func (f MovieFilter) Match(m model.BillboardMovie) bool {
	if !IsAll(f.Format) && !anyVersionContains(m.Versions, f.Format) {
		return false
	}
	if !IsAll(f.Language) && !anyVersionContains(m.Versions, f.Language) {
		return false
	}
	return MatchQuery(m.Title, m.Genres(), f.Query)
}

// FilterBillboard returns the movies with at least one session that pass f,
// in input order.
func FilterBillboard(movies []model.BillboardMovie, f MovieFilter) []model.BillboardMovie {
	out := make([]model.BillboardMovie, 0, len(movies))
	for _, m := range movies {
		if !m.HasSessions() {
			continue
		}
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// MatchQuery reports whether query is empty or occurs, ignoring case, in the
// title or in the genres joined by spaces.
func MatchQuery(title string, genres []string, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return containsFold(title, q) || containsFold(strings.Join(genres, " "), q)
}

// SearchCatalog returns the entries whose title or genres match query.
func SearchCatalog(entries []model.CatalogEntry, query string) []model.CatalogEntry {
	out := make([]model.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if MatchQuery(e.SearchTitle(), e.Genres(), query) {
			out = append(out, e)
		}
	}
	return out
}

func anyVersionContains(versions []model.MovieVersion, token string) bool {
	for _, v := range versions {
		if strings.Contains(v.Title, token) {
			return true
		}
	}
	return false
}
