package model

import "time"

// Venue represents a place that hosts shows.  A venue owns its shows:
// removing a venue removes every show booked there.  This struct
// corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 - primary key identifier.
//  Name               - display name, matched by search.
//  City, State        - location; venue listings are grouped by them.
//  Address, Phone     - contact details.
//  ImageLink          - link to a picture of the venue.
//  FacebookLink       - link to the venue's facebook page.
//  Website            - venue website.
//  Genres             - ordered list of genres played at the venue.
//  SeekingTalent      - whether the venue is looking for artists.
//  SeekingDescription - free text describing what it looks for.
type Venue struct {
	ID                 uint64    // venues.id
	Name               string    // venues.name
	City               string    // venues.city
	State              string    // venues.state
	Address            string    // venues.address
	Phone              string    // venues.phone
	ImageLink          string    // venues.image_link
	FacebookLink       string    // venues.facebook_link
	Website            string    // venues.website
	Genres             Genres    // venues.genres (JSON array)
	SeekingTalent      bool      // venues.seeking_talent
	SeekingDescription string    // venues.seeking_description
	CreatedAt          time.Time // venues.created_at
	UpdatedAt          time.Time // venues.updated_at
}

// VenueSummary is the compact venue row used by listings and search.
// UpcomingShows is computed at query time and never stored.
type VenueSummary struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	City          string `json:"-"`
	State         string `json:"-"`
	UpcomingShows int    `json:"num_upcoming_shows"`
}
