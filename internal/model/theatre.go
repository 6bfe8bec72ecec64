package model

import "fmt"

// Theatre is a single cinema venue as published by the upstream theatres
// feed.  Field names follow the upstream JSON keys verbatim.
//
// Fields:
//  ID          – upstream cinema identifier, also the billboard cinema_id.
//  Name        – display name (e.g. "CINEMARK JOCKEY PLAZA").
//  PhoneNumber – contact phone.
//  City        – city or district used to group and filter theatres.
//  Address1    – primary street address.
type Theatre struct {
	ID          string `json:"ID"`
	Name        string `json:"Name"`
	PhoneNumber string `json:"PhoneNumber"`
	City        string `json:"City"`
	Address1    string `json:"Address1"`
	Address2    string `json:"Address2"`
	LoyaltyCode string `json:"LoyaltyCode"`
	Latitude    string `json:"Latitude"`
	Longitude   string `json:"Longitude"`
	Description string `json:"Description"`
	Slug        string `json:"Slug"`
}

// TheatreGroup is the upstream grouping of theatres by city.
type TheatreGroup struct {
	City    string    `json:"city"`
	Cinemas []Theatre `json:"cinemas"`
}

// FlattenTheatres returns every theatre of every group in feed order.
func FlattenTheatres(groups []TheatreGroup) []Theatre {
	out := make([]Theatre, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Cinemas...)
	}
	return out
}

// ValidateTheatres reports the first theatre ID that appears more than once
// across all groups.
func ValidateTheatres(groups []TheatreGroup) error {
	seen := make(map[string]struct{})
	for _, t := range FlattenTheatres(groups) {
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate theatre id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
