package model

import "time"

// StartTimeLayout is how a show's start time is rendered to clients:
// month/day/year, then a zero-padded 24-hour clock.
const StartTimeLayout = "01/02/2006, 15:04"

// Show books one artist at one venue at one point in time.  Repeated
// bookings of the same pair at different times are distinct shows.
//
// Fields:
//  ID        - primary key identifier.
//  VenueID   - venue hosting the show (required, cascades on delete).
//  ArtistID  - artist performing (required, restricts artist delete).
//  StartTime - when the show begins, stored in UTC.
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time
	CreatedAt time.Time // shows.created_at
}

// VenueShow is a show seen from its venue: it carries the artist side
// of the join.
type VenueShow struct {
	ShowID          uint64
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is a show seen from its artist: it carries the venue side
// of the join.
type ArtistShow struct {
	ShowID         uint64
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is one row of the global shows feed, joined to both sides.
type ShowListing struct {
	ShowID          uint64
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// FormatStartTime renders t with StartTimeLayout.
func FormatStartTime(t time.Time) string {
	return t.Format(StartTimeLayout)
}
