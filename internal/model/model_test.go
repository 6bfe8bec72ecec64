package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCatalogEntry_Accessors(t *testing.T) {
	g2 := "Suspenso"
	b := FromBillboard(BillboardMovie{
		Title: "Bailarina", FilmHOCode: "HO1", CorporateFilmID: "C1",
		Genre: "Acción", Genre2: &g2, Rating: "M14", Runtime: "125", OpeningDate: "2025-06-05",
	})
	c := FromComingSoon(ComingSoonMovie{
		Title: "ELIO", SynopsisAlt: "Elio", CorporateFilmID: "C2",
		GenreID: "Animación", GenreID2: "", Rating: "APT", RunTime: "99", OpeningDate: "2025-06-19",
	})

	if b.Kind != KindBillboard || b.ComingSoon != nil {
		t.Fatalf("unexpected billboard entry: %+v", b)
	}
	if c.Kind != KindComingSoon || c.Billboard != nil {
		t.Fatalf("unexpected coming soon entry: %+v", c)
	}
	if b.Title() != "Bailarina" || b.FilmID() != "HO1" || b.PosterID() != "C1" {
		t.Fatalf("billboard accessors mismatch")
	}
	if c.Title() != "Elio" || c.SearchTitle() != "ELIO" || c.FilmID() != "C2" || c.PosterID() != "C2" {
		t.Fatalf("coming soon accessors mismatch")
	}
	if !reflect.DeepEqual(b.Genres(), []string{"Acción", "Suspenso"}) {
		t.Fatalf("unexpected billboard genres: %v", b.Genres())
	}
	if !reflect.DeepEqual(c.Genres(), []string{"Animación"}) {
		t.Fatalf("unexpected coming soon genres: %v", c.Genres())
	}
	if b.Rating() != "M14" || c.Runtime() != "99" || c.OpeningDate() != "2025-06-19" {
		t.Fatalf("field accessors mismatch")
	}
}

func TestCatalogEntry_ComingSoonTitleFallback(t *testing.T) {
	e := FromComingSoon(ComingSoonMovie{Title: "F1"})
	if e.Title() != "F1" {
		t.Fatalf("expected fallback to Title, got %q", e.Title())
	}
}

func TestCatalogEntry_JSONCarriesKind(t *testing.T) {
	bs, err := json.Marshal(FromComingSoon(ComingSoonMovie{Title: "Elio"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(bs, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["kind"] != "coming_soon" {
		t.Fatalf("unexpected kind: %v", out["kind"])
	}
	if _, ok := out["billboard"]; ok {
		t.Fatal("billboard must be omitted for coming soon entries")
	}
}

func TestHasSessions(t *testing.T) {
	m := BillboardMovie{Versions: []MovieVersion{{Title: "2D DOB"}, {Title: "3D SUB"}}}
	if m.HasSessions() {
		t.Fatal("expected no sessions")
	}
	m.Versions[1].Sessions = []Session{{ID: "1"}}
	if !m.HasSessions() {
		t.Fatal("expected sessions")
	}
}

func TestValidateTheatres_DuplicateID(t *testing.T) {
	groups := []TheatreGroup{
		{City: "Lima", Cinemas: []Theatre{{ID: "740"}, {ID: "741"}}},
		{City: "Arequipa", Cinemas: []Theatre{{ID: "740"}}},
	}
	if err := ValidateTheatres(groups); err == nil {
		t.Fatal("expected duplicate id error")
	}
	if err := ValidateTheatres(groups[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(FlattenTheatres(groups)); got != 3 {
		t.Fatalf("expected 3 theatres, got %d", got)
	}
}

func TestPosterURL(t *testing.T) {
	got := PosterURL("https://cdn.example.com/pe/300x400/", "1749715200000", "HO00001234")
	want := "https://cdn.example.com/pe/300x400/HO00001234.jpg?version=1749715200000"
	if got != want {
		t.Fatalf("PosterURL = %q; want %q", got, want)
	}
	if PosterURL("https://cdn.example.com", "", "X") != "https://cdn.example.com/X.jpg" {
		t.Fatal("expected no version query when version is empty")
	}
	if PosterURL("https://cdn.example.com", "1", "") != "" {
		t.Fatal("expected empty URL for empty id")
	}
}
