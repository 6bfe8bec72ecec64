package showtime

import "github.com/iliyamo/cinema-billboard/internal/model"

// SessionGroup is the set of sessions listed under one heading.
type SessionGroup struct {
	Key      string          `json:"key"`
	Format   string          `json:"format"`
	Language string          `json:"language"`
	Sessions []model.Session `json:"sessions"`
}

// GroupSessions buckets sessions by "<format> <language label>".  Groups are
// returned in the order their key first appears.
//
// A version matching several formats or languages contributes its full
// session list to every combination.  A version matching no format or no
// language contributes nothing.
func GroupSessions(versions []model.MovieVersion) []SessionGroup {
	var groups []SessionGroup
	index := make(map[string]int)
	for _, v := range versions {
		formats := Formats(v.Title)
		languages := Languages(v.Title)
		for _, f := range formats {
			for _, l := range languages {
				key := f + " " + LanguageLabel(l)
				i, ok := index[key]
				if !ok {
					i = len(groups)
					index[key] = i
					groups = append(groups, SessionGroup{Key: key, Format: f, Language: l})
				}
				groups[i].Sessions = append(groups[i].Sessions, v.Sessions...)
			}
		}
	}
	return groups
}

// Badges returns the distinct formats and language labels found across a
// movie's versions, in first-seen order.
func Badges(versions []model.MovieVersion) (formats, languages []string) {
	seenF := make(map[string]bool)
	seenL := make(map[string]bool)
	for _, v := range versions {
		for _, f := range Formats(v.Title) {
			if !seenF[f] {
				seenF[f] = true
				formats = append(formats, f)
			}
		}
		for _, l := range Languages(v.Title) {
			label := LanguageLabel(l)
			if !seenL[label] {
				seenL[label] = true
				languages = append(languages, label)
			}
		}
	}
	return formats, languages
}
