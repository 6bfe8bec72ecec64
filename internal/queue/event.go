// Package queue defines message payloads exchanged over the message broker.
package queue

// ReleaseReminderRequested is published when a visitor asks to be reminded
// of a coming-soon title's release.  It carries enough of the title for a
// downstream notifier to act without calling the upstream API again.
type ReleaseReminderRequested struct {
	CorporateFilmID string `json:"corporate_film_id"`
	Title           string `json:"title"`
	OpeningDate     string `json:"opening_date"`
	Email           string `json:"email"`
	RequestedAt     string `json:"requested_at"`
}
