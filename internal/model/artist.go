package model

import "time"

// Artist represents a performer that can be booked at venues.  Unlike
// venues, an artist does not own its shows: an artist that still has
// shows cannot be removed.  This struct corresponds to a row in the
// `artists` table.
type Artist struct {
	ID                 uint64    // artists.id
	Name               string    // artists.name
	City               string    // artists.city
	State              string    // artists.state
	Phone              string    // artists.phone
	ImageLink          string    // artists.image_link
	FacebookLink       string    // artists.facebook_link
	Website            string    // artists.website
	Genres             Genres    // artists.genres (JSON array)
	SeekingVenue       bool      // artists.seeking_venue
	SeekingDescription string    // artists.seeking_description
	CreatedAt          time.Time // artists.created_at
	UpdatedAt          time.Time // artists.updated_at
}

// ArtistSummary is the compact artist row used by listings and search.
type ArtistSummary struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int    `json:"num_upcoming_shows"`
}
