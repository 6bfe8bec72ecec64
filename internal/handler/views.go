package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/cinema-billboard/internal/catalog"
	"github.com/iliyamo/cinema-billboard/internal/filter"
	"github.com/iliyamo/cinema-billboard/internal/model"
	"github.com/iliyamo/cinema-billboard/internal/showtime"
	"github.com/iliyamo/cinema-billboard/internal/upstream"
)

// MsgNoMovies is shown when the showtimes filters leave nothing to list.
const MsgNoMovies = "No se encontraron películas con los filtros seleccionados."

// ShowtimesView is the showtimes page for one theatre and date.
type ShowtimesView struct {
	CinemaID     string            `json:"cinema_id"`
	Theatre      *model.Theatre    `json:"theatre"`
	Dates        []string          `json:"dates"`
	SelectedDate string            `json:"selected_date"`
	Format       string            `json:"format"`
	Language     string            `json:"language"`
	Formats      []string          `json:"formats"`
	Languages    []Option          `json:"languages"`
	Movies       []ShowtimeMovie   `json:"movies"`
	Message      string            `json:"message,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// Option is a select entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShowtimeMovie is one movie card on the showtimes page.
type ShowtimeMovie struct {
	Title           string          `json:"title"`
	CorporateFilmID string          `json:"corporate_film_id"`
	FilmHOCode      string          `json:"film_HO_code"`
	Rating          string          `json:"rating"`
	Runtime         string          `json:"runtime"`
	Synopsis        string          `json:"synopsis"`
	TrailerURL      string          `json:"trailer_url"`
	PosterURL       string          `json:"poster_url"`
	Genres          []string        `json:"genres"`
	Formats         []string        `json:"formats"`
	Languages       []string        `json:"languages"`
	Groups          []ShowtimeGroup `json:"groups"`
}

// ShowtimeGroup lists the sessions under one "<format> <language>" heading.
type ShowtimeGroup struct {
	Key      string        `json:"key"`
	Format   string        `json:"format"`
	Language string        `json:"language"`
	Sessions []SessionSlot `json:"sessions"`
}

// SessionSlot is a session with its 12-hour display label.
type SessionSlot struct {
	ID             string `json:"id"`
	Showtime       string `json:"showtime"`
	Hour           string `json:"hour"`
	Label          string `json:"label"`
	SeatsAvailable int    `json:"seats_available"`
}

// ShowtimesQuery holds the showtimes page selections.
type ShowtimesQuery struct {
	CinemaID string
	Date     string
	Format   string
	Language string
}

// dayKey reduces an upstream day date to YYYY-MM-DD.
func dayKey(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}

// BuildShowtimesView renders the showtimes page from fetched snapshots.
// Without a requested date the first available date is selected.  Movies
// without sessions are omitted.
func BuildShowtimesView(days []model.BillboardDay, theatres []model.TheatreGroup, q ShowtimesQuery, poster func(string) string) ShowtimesView {
	v := ShowtimesView{
		CinemaID:  q.CinemaID,
		Dates:     []string{},
		Format:    selection(q.Format),
		Language:  selection(q.Language),
		Formats:   showtime.FormatVocabulary(),
		Languages: languageOptions(),
		Movies:    []ShowtimeMovie{},
	}
	if t, ok := filter.FindTheatre(theatres, q.CinemaID); ok {
		v.Theatre = &t
	}

	seen := make(map[string]bool, len(days))
	for _, d := range days {
		k := dayKey(d.Date)
		if k != "" && !seen[k] {
			seen[k] = true
			v.Dates = append(v.Dates, k)
		}
	}
	v.SelectedDate = dayKey(strings.TrimSpace(q.Date))
	if v.SelectedDate == "" && len(v.Dates) > 0 {
		v.SelectedDate = v.Dates[0]
	}

	mf := filter.MovieFilter{Format: v.Format, Language: v.Language}
	for _, d := range days {
		if dayKey(d.Date) != v.SelectedDate {
			continue
		}
		for _, m := range filter.FilterBillboard(d.Movies, mf) {
			v.Movies = append(v.Movies, showtimeMovie(m, poster))
		}
	}
	if len(v.Movies) == 0 {
		v.Message = MsgNoMovies
	}
	return v
}

func showtimeMovie(m model.BillboardMovie, poster func(string) string) ShowtimeMovie {
	formats, languages := showtime.Badges(m.Versions)
	sm := ShowtimeMovie{
		Title:           m.Title,
		CorporateFilmID: m.CorporateFilmID,
		FilmHOCode:      m.FilmHOCode,
		Rating:          m.Rating,
		Runtime:         m.Runtime,
		Synopsis:        m.Synopsis,
		TrailerURL:      m.TrailerURL,
		PosterURL:       poster(m.CorporateFilmID),
		Genres:          m.Genres(),
		Formats:         nonNil(formats),
		Languages:       nonNil(languages),
		Groups:          []ShowtimeGroup{},
	}
	for _, g := range showtime.GroupSessions(m.Versions) {
		slots := make([]SessionSlot, 0, len(g.Sessions))
		for _, s := range g.Sessions {
			slots = append(slots, SessionSlot{
				ID:             s.ID,
				Showtime:       s.Showtime,
				Hour:           s.Hour,
				Label:          showtime.FormatTime(s.Hour),
				SeatsAvailable: s.SeatsAvailable,
			})
		}
		sm.Groups = append(sm.Groups, ShowtimeGroup{
			Key:      g.Key,
			Format:   g.Format,
			Language: showtime.LanguageLabel(g.Language),
			Sessions: slots,
		})
	}
	return sm
}

func selection(s string) string {
	if filter.IsAll(s) {
		return filter.All
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

func languageOptions() []Option {
	vocab := showtime.LanguageVocabulary()
	out := make([]Option, 0, len(vocab))
	for _, l := range vocab {
		out = append(out, Option{Value: l, Label: showtime.LanguageLabel(l)})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// GetShowtimesView serves the showtimes page.  The billboard and theatre
// feeds are fetched concurrently; a failed feed is reported under errors
// while the other is still used.
func (h *Handler) GetShowtimesView(c echo.Context) error {
	q := ShowtimesQuery{
		CinemaID: h.cinemaID(c),
		Date:     c.QueryParam("date"),
		Format:   c.QueryParam("format"),
		Language: c.QueryParam("language"),
	}
	if f := selection(q.Format); f != filter.All && !showtime.IsFormat(f) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Formato no válido"})
	}
	if l := selection(q.Language); l != filter.All && !showtime.IsLanguage(l) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Idioma no válido"})
	}

	ctx := c.Request().Context()
	var (
		g                   errgroup.Group
		days                []model.BillboardDay
		theatres            []model.TheatreGroup
		daysErr, theatreErr error
	)
	g.Go(func() error {
		days, daysErr = h.src.BillboardDays(ctx, q.CinemaID)
		return nil
	})
	g.Go(func() error {
		theatres, theatreErr = h.src.TheatreGroups(ctx)
		return nil
	})
	g.Wait() // each fetch keeps its error in its own variable and returns nil

	errs := map[upstream.Resource]error{
		upstream.ResourceBillboard: daysErr,
		upstream.ResourceTheatres:  theatreErr,
	}
	if err := allFailed([]upstream.Resource{upstream.ResourceBillboard, upstream.ResourceTheatres}, errs); err != nil {
		return fail(c, err)
	}

	v := BuildShowtimesView(days, theatres, q, h.posterURL)
	v.Errors = errorMessages(errs)
	return c.JSON(http.StatusOK, v)
}

// MoviesView is the movies page: on-sale titles plus the two coming-soon
// tabs, narrowed by an optional search query.
type MoviesView struct {
	Query            string            `json:"q"`
	OnSale           []CatalogItem     `json:"on_sale"`
	BillboardPreSale []CatalogItem     `json:"billboard_pre_sale"`
	PreSale          []CatalogItem     `json:"pre_sale"`
	Upcoming         []CatalogItem     `json:"upcoming"`
	Errors           map[string]string `json:"errors,omitempty"`
}

// CatalogItem is one movie card.  Recent marks billboard titles released
// within the last week.
type CatalogItem struct {
	Kind        model.EntryKind `json:"kind"`
	FilmID      string          `json:"film_id"`
	Title       string          `json:"title"`
	Genres      []string        `json:"genres"`
	Rating      string          `json:"rating"`
	Runtime     string          `json:"runtime"`
	OpeningDate string          `json:"opening_date"`
	PosterURL   string          `json:"poster_url"`
	Recent      bool            `json:"recent"`
}

// BuildMoviesView classifies both feeds at now and filters every bucket by
// query.
func BuildMoviesView(cl catalog.Classifier, comingSoon []model.ComingSoonMovie, days []model.BillboardDay, query string, now time.Time, poster func(string) string) MoviesView {
	res := cl.Classify(comingSoon, catalog.UniqueBillboardMovies(days), now)

	item := func(e model.CatalogEntry) CatalogItem {
		it := CatalogItem{
			Kind:        e.Kind,
			FilmID:      e.FilmID(),
			Title:       e.Title(),
			Genres:      e.Genres(),
			Rating:      e.Rating(),
			Runtime:     e.Runtime(),
			OpeningDate: e.OpeningDate(),
			PosterURL:   poster(e.PosterID()),
		}
		if e.Billboard != nil {
			it.Recent = cl.IsRecentRelease(*e.Billboard, now)
		}
		return it
	}
	render := func(entries []model.CatalogEntry) []CatalogItem {
		out := make([]CatalogItem, 0, len(entries))
		for _, e := range filter.SearchCatalog(entries, query) {
			out = append(out, item(e))
		}
		return out
	}
	fromBillboard := func(ms []model.BillboardMovie) []model.CatalogEntry {
		out := make([]model.CatalogEntry, 0, len(ms))
		for _, m := range ms {
			out = append(out, model.FromBillboard(m))
		}
		return out
	}
	fromComingSoon := func(ms []model.ComingSoonMovie) []model.CatalogEntry {
		out := make([]model.CatalogEntry, 0, len(ms))
		for _, m := range ms {
			out = append(out, model.FromComingSoon(m))
		}
		return out
	}

	return MoviesView{
		Query:            query,
		OnSale:           render(fromBillboard(res.OnSale)),
		BillboardPreSale: render(fromBillboard(res.BillboardPreSale)),
		PreSale:          render(fromComingSoon(res.PreSale)),
		Upcoming:         render(fromComingSoon(res.Upcoming)),
	}
}

// GetMoviesView serves the movies page for ?cinema_id and ?q.
func (h *Handler) GetMoviesView(c echo.Context) error {
	ctx := c.Request().Context()
	cinemaID := h.cinemaID(c)
	query := strings.TrimSpace(c.QueryParam("q"))

	var (
		g                  errgroup.Group
		days               []model.BillboardDay
		comingSoon         []model.ComingSoonMovie
		daysErr, comingErr error
	)
	g.Go(func() error {
		days, daysErr = h.src.BillboardDays(ctx, cinemaID)
		return nil
	})
	g.Go(func() error {
		comingSoon, comingErr = h.src.ComingSoonMovies(ctx)
		return nil
	})
	g.Wait() // each fetch keeps its error in its own variable and returns nil

	errs := map[upstream.Resource]error{
		upstream.ResourceBillboard:  daysErr,
		upstream.ResourceComingSoon: comingErr,
	}
	if err := allFailed([]upstream.Resource{upstream.ResourceBillboard, upstream.ResourceComingSoon}, errs); err != nil {
		return fail(c, err)
	}

	v := BuildMoviesView(h.classifier, comingSoon, days, query, h.now(), h.posterURL)
	v.Errors = errorMessages(errs)
	return c.JSON(http.StatusOK, v)
}

// TheatresView is the theatre directory page.
type TheatresView struct {
	Query     string          `json:"q"`
	District  string          `json:"district"`
	Districts []string        `json:"districts"`
	Theatres  []model.Theatre `json:"theatres"`
	Shown     int             `json:"shown"`
	Total     int             `json:"total"`
}

// BuildTheatresView filters the directory by query and district.
func BuildTheatresView(groups []model.TheatreGroup, query, district string) TheatresView {
	f := filter.TheatreFilter{Query: query, District: district}
	shown := filter.FilterTheatres(groups, f)
	if filter.IsAll(district) {
		district = filter.All
	}
	return TheatresView{
		Query:     query,
		District:  district,
		Districts: nonNil(filter.Districts(groups)),
		Theatres:  shown,
		Shown:     len(shown),
		Total:     len(model.FlattenTheatres(groups)),
	}
}

// GetTheatresView serves the theatre directory for ?q and ?district.
func (h *Handler) GetTheatresView(c echo.Context) error {
	groups, err := h.src.TheatreGroups(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	q := strings.TrimSpace(c.QueryParam("q"))
	d := strings.TrimSpace(c.QueryParam("district"))
	return c.JSON(http.StatusOK, BuildTheatresView(groups, q, d))
}
