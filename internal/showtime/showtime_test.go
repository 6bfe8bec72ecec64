package showtime

import (
	"reflect"
	"testing"

	"github.com/iliyamo/cinema-billboard/internal/model"
)

func sessions(ids ...string) []model.Session {
	out := make([]model.Session, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Session{ID: id, Hour: "14:30"})
	}
	return out
}

func TestFormatsAndLanguages(t *testing.T) {
	cases := []struct {
		title     string
		formats   []string
		languages []string
	}{
		{"BAILARINA 2D DOB", []string{"2D"}, []string{"DOB"}},
		{"ELIO 3D XD SUB", []string{"3D", "XD"}, []string{"SUB"}},
		{"DBOX 2D DOB SUB", []string{"2D", "DBOX"}, []string{"DOB", "SUB"}},
		{"PREMIERE", nil, nil},
	}
	for _, tc := range cases {
		if got := Formats(tc.title); !reflect.DeepEqual(got, tc.formats) {
			t.Errorf("Formats(%q) = %v; want %v", tc.title, got, tc.formats)
		}
		if got := Languages(tc.title); !reflect.DeepEqual(got, tc.languages) {
			t.Errorf("Languages(%q) = %v; want %v", tc.title, got, tc.languages)
		}
	}
}

func TestGroupSessions_SingleKey(t *testing.T) {
	groups := GroupSessions([]model.MovieVersion{{Title: "2D DOB", Sessions: sessions("a", "b")}})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Key != "2D Doblada" {
		t.Fatalf("unexpected key: %q", groups[0].Key)
	}
	if len(groups[0].Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(groups[0].Sessions))
	}
}

func TestGroupSessions_ReplicatesAcrossFormats(t *testing.T) {
	groups := GroupSessions([]model.MovieVersion{{Title: "3D XD SUB", Sessions: sessions("a", "b", "c")}})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "3D Subtitulada" || groups[1].Key != "XD Subtitulada" {
		t.Fatalf("unexpected keys: %q %q", groups[0].Key, groups[1].Key)
	}
	for _, g := range groups {
		if len(g.Sessions) != 3 {
			t.Fatalf("group %q has %d sessions; want 3", g.Key, len(g.Sessions))
		}
	}
}

func TestGroupSessions_MergesVersionsAndDropsUntagged(t *testing.T) {
	versions := []model.MovieVersion{
		{Title: "2D DOB", Sessions: sessions("a")},
		{Title: "2D SUB", Sessions: sessions("b")},
		{Title: "2D DOB PREMIUM", Sessions: sessions("c")},
		{Title: "SUB ONLY", Sessions: sessions("d")},
		{Title: "3D", Sessions: sessions("e")},
	}
	groups := GroupSessions(versions)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}
	if groups[0].Key != "2D Doblada" || len(groups[0].Sessions) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Key != "2D Subtitulada" || len(groups[1].Sessions) != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestBadges_Distinct(t *testing.T) {
	formats, languages := Badges([]model.MovieVersion{
		{Title: "2D DOB"}, {Title: "3D DOB"}, {Title: "2D SUB"},
	})
	if !reflect.DeepEqual(formats, []string{"2D", "3D"}) {
		t.Fatalf("unexpected formats: %v", formats)
	}
	if !reflect.DeepEqual(languages, []string{"Doblada", "Subtitulada"}) {
		t.Fatalf("unexpected languages: %v", languages)
	}
}

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"00:00":    "12:00 AM",
		"00:45":    "12:45 AM",
		"09:05":    "9:05 AM",
		"12:00":    "12:00 PM",
		"13:05":    "1:05 PM",
		"23:59":    "11:59 PM",
		"14:30:00": "2:30 PM",
		"late":     "late",
	}
	for in, want := range cases {
		if got := FormatTime(in); got != want {
			t.Errorf("FormatTime(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestVocabularyHelpers(t *testing.T) {
	if !IsFormat("DBOX") || IsFormat("4D") {
		t.Fatal("IsFormat mismatch")
	}
	if !IsLanguage("SUB") || IsLanguage("ESP") {
		t.Fatal("IsLanguage mismatch")
	}
	if LanguageLabel("ESP") != "ESP" {
		t.Fatal("unknown language label should pass through")
	}
}
