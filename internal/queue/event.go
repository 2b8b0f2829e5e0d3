// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationQueue is the default queue write notifications are sent to.
const NotificationQueue = "directory.notifications"

// NotificationEvent is published after every venue, artist or show write,
// successful or not.  Message is the same text shown to the person who
// submitted the form, so consumers can log or relay it without querying
// the database.
type NotificationEvent struct {
	Entity   string `json:"entity"`    // venue, artist or show
	Action   string `json:"action"`    // create, update or delete
	Status   string `json:"status"`    // outcome status, e.g. success, write_failed
	EntityID uint64 `json:"entity_id"` // zero when no row was written
	Message  string `json:"message"`
	At       string `json:"at"` // RFC 3339, UTC
}
