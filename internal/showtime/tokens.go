// Package showtime extracts format and language tags from version titles
// and groups a movie's sessions under "<format> <language>" headings.
package showtime

import "strings"

// Format vocabulary, in display order.
const (
	Format2D   = "2D"
	Format3D   = "3D"
	FormatXD   = "XD"
	FormatDBOX = "DBOX"
)

// Language vocabulary.
const (
	LangDubbed    = "DOB"
	LangSubtitled = "SUB"
)

var (
	formatVocabulary   = []string{Format2D, Format3D, FormatXD, FormatDBOX}
	languageVocabulary = []string{LangDubbed, LangSubtitled}
	languageLabels     = map[string]string{
		LangDubbed:    "Doblada",
		LangSubtitled: "Subtitulada",
	}
)

// FormatVocabulary returns the known format tokens.
func FormatVocabulary() []string { return append([]string(nil), formatVocabulary...) }

// LanguageVocabulary returns the known language tokens.
func LanguageVocabulary() []string { return append([]string(nil), languageVocabulary...) }

// Formats returns every format token contained in title, in vocabulary order.
func Formats(title string) []string { return match(title, formatVocabulary) }

// Languages returns every language token contained in title.
func Languages(title string) []string { return match(title, languageVocabulary) }

// LanguageLabel maps a language token to its display label.  Unknown tokens
// are returned unchanged.
func LanguageLabel(token string) string {
	if l, ok := languageLabels[token]; ok {
		return l
	}
	return token
}

// IsFormat reports whether token belongs to the format vocabulary.
func IsFormat(token string) bool { return contains(formatVocabulary, token) }

// IsLanguage reports whether token belongs to the language vocabulary.
func IsLanguage(token string) bool { return contains(languageVocabulary, token) }

func match(title string, vocab []string) []string {
	var out []string
	for _, tok := range vocab {
		if strings.Contains(title, tok) {
			out = append(out, tok)
		}
	}
	return out
}

func contains(vocab []string, token string) bool {
	for _, v := range vocab {
		if v == token {
			return true
		}
	}
	return false
}
