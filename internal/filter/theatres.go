package filter

import (
	"sort"
	"strings"

	"github.com/iliyamo/cinema-billboard/internal/model"
)

// TheatreFilter holds the theatre directory selections.
type TheatreFilter struct {
	Query    string
	District string
}

// Match reports whether t passes f.  Query matches name, address or city;
// District must equal the theatre's city.
func (f TheatreFilter) Match(t model.Theatre) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsFold(t.Name, q) && !containsFold(t.Address1, q) && !containsFold(t.City, q) {
			return false
		}
	}
	if !IsAll(f.District) && strings.TrimSpace(t.City) != strings.TrimSpace(f.District) {
		return false
	}
	return true
}

// FilterTheatres flattens groups and keeps the theatres passing f.
func FilterTheatres(groups []model.TheatreGroup, f TheatreFilter) []model.Theatre {
	all := model.FlattenTheatres(groups)
	out := make([]model.Theatre, 0, len(all))
	for _, t := range all {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Districts returns the sorted distinct non-empty cities across groups.
func Districts(groups []model.TheatreGroup) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range model.FlattenTheatres(groups) {
		city := strings.TrimSpace(t.City)
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}

// FindTheatre returns the theatre with the given id.
func FindTheatre(groups []model.TheatreGroup, id string) (model.Theatre, bool) {
	for _, g := range groups {
		for _, t := range g.Cinemas {
			if t.ID == id {
				return t, true
			}
		}
	}
	return model.Theatre{}, false
}
