// Package catalog classifies billboard and coming-soon movies into the
// buckets shown on the movies page: on sale, pre-sale and upcoming.
package catalog

import (
	"sort"
	"time"

	"github.com/iliyamo/cinema-billboard/internal/model"
)

// Classifier evaluates date predicates in a fixed location.
type Classifier struct {
	Location *time.Location
}

// Classification holds the result of Classify.  Buckets never share a
// coming-soon entry.
type Classification struct {
	OnSale           []model.BillboardMovie  `json:"on_sale"`
	BillboardPreSale []model.BillboardMovie  `json:"billboard_pre_sale"`
	PreSale          []model.ComingSoonMovie `json:"pre_sale"`
	Upcoming         []model.ComingSoonMovie `json:"upcoming"`
}

// New returns a Classifier for loc; nil means UTC.
func New(loc *time.Location) Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return Classifier{Location: loc}
}

// DedupComingSoon keeps the first entry for each CorporateFilmID, preserving
// input order.  Entries without an id are always kept.
func DedupComingSoon(movies []model.ComingSoonMovie) []model.ComingSoonMovie {
	seen := make(map[string]struct{}, len(movies))
	out := make([]model.ComingSoonMovie, 0, len(movies))
	for _, m := range movies {
		if m.CorporateFilmID == "" {
			out = append(out, m)
			continue
		}
		if _, dup := seen[m.CorporateFilmID]; dup {
			continue
		}
		seen[m.CorporateFilmID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// UniqueBillboardMovies flattens billboard days and keeps the first movie
// for each film_HO_code.  Movies without a code are always kept.
func UniqueBillboardMovies(days []model.BillboardDay) []model.BillboardMovie {
	seen := make(map[string]struct{})
	var out []model.BillboardMovie
	for _, d := range days {
		for _, m := range d.Movies {
			if m.FilmHOCode != "" {
				if _, dup := seen[m.FilmHOCode]; dup {
					continue
				}
				seen[m.FilmHOCode] = struct{}{}
			}
			out = append(out, m)
		}
	}
	return out
}

// DaysUntil returns fractional days from now until date.  ok is false when
// the date cannot be parsed.
func (c Classifier) DaysUntil(date string, now time.Time) (float64, bool) {
	t, ok := ParseDate(date, c.Location)
	if !ok {
		return 0, false
	}
	return DaysBetween(now, t), true
}

// DaysSince returns fractional days elapsed from date until now.
func (c Classifier) DaysSince(date string, now time.Time) (float64, bool) {
	d, ok := c.DaysUntil(date, now)
	return -d, ok
}

// IsRecentRelease reports whether m opened within the last RecentWindow days.
func (c Classifier) IsRecentRelease(m model.BillboardMovie, now time.Time) bool {
	d, ok := c.DaysSince(m.OpeningDate, now)
	return ok && d >= 0 && d <= RecentWindow
}

// IsOpen reports whether m's opening date is at or before now.
func (c Classifier) IsOpen(m model.BillboardMovie, now time.Time) bool {
	t, ok := ParseDate(m.OpeningDate, c.Location)
	return ok && !t.After(now)
}

func (c Classifier) opensLater(m model.BillboardMovie, now time.Time) bool {
	t, ok := ParseDate(m.OpeningDate, c.Location)
	return ok && t.After(now)
}

func (c Classifier) inPreSaleWindow(m model.ComingSoonMovie, now time.Time) bool {
	d, ok := c.DaysUntil(m.OpeningDate, now)
	return ok && d >= 0 && d <= RecentWindow
}

// Classify buckets the coming-soon and billboard feeds against now.
//
// Coming-soon entries are deduplicated first.  An entry whose corporate film
// id already appears in the billboard lands in no bucket.  Otherwise it is
// pre-sale when it opens within RecentWindow days, and upcoming when not.
// Billboard movies already open are on sale, recent releases first; those
// opening later are billboard pre-sale.
func (c Classifier) Classify(comingSoon []model.ComingSoonMovie, billboard []model.BillboardMovie, now time.Time) Classification {
	inBillboard := make(map[string]struct{}, len(billboard))
	for _, m := range billboard {
		if m.CorporateFilmID != "" {
			inBillboard[m.CorporateFilmID] = struct{}{}
		}
	}

	res := Classification{
		OnSale:           []model.BillboardMovie{},
		BillboardPreSale: []model.BillboardMovie{},
		PreSale:          []model.ComingSoonMovie{},
		Upcoming:         []model.ComingSoonMovie{},
	}

	for _, m := range DedupComingSoon(comingSoon) {
		if m.CorporateFilmID != "" {
			if _, listed := inBillboard[m.CorporateFilmID]; listed {
				continue
			}
		}
		if c.inPreSaleWindow(m, now) {
			res.PreSale = append(res.PreSale, m)
		} else {
			res.Upcoming = append(res.Upcoming, m)
		}
	}

	for _, m := range billboard {
		switch {
		case c.IsOpen(m, now):
			res.OnSale = append(res.OnSale, m)
		case c.opensLater(m, now):
			res.BillboardPreSale = append(res.BillboardPreSale, m)
		}
	}
	sort.SliceStable(res.OnSale, func(i, j int) bool {
		return c.IsRecentRelease(res.OnSale[i], now) && !c.IsRecentRelease(res.OnSale[j], now)
	})
	return res
}
