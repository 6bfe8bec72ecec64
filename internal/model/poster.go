package model

import (
	"net/url"
	"strings"
)

// PosterURL builds the poster image URL for a corporate film id.  An empty
// id yields an empty string so callers can fall back to a placeholder.
func PosterURL(base, version, corporateFilmID string) string {
	if corporateFilmID == "" {
		return ""
	}
	u := strings.TrimRight(base, "/") + "/" + url.PathEscape(corporateFilmID) + ".jpg"
	if version != "" {
		u += "?version=" + url.QueryEscape(version)
	}
	return u
}
