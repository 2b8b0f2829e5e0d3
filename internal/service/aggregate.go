package service

import (
	"time"

	"github.com/iliyamo/showbook/internal/model"
)

// Partition splits items into shows that started strictly before now and
// shows that start strictly after now.  A show starting exactly at now
// belongs to neither list.  Input order is preserved in both lists.
func Partition[T any](items []T, now time.Time, startOf func(T) time.Time) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, it := range items {
		t := startOf(it)
		switch {
		case t.Before(now):
			past = append(past, it)
		case t.After(now):
			upcoming = append(upcoming, it)
		}
	}
	return past, upcoming
}

// VenueShowEntry is a show on a venue page: the artist side plus the
// formatted start time.
type VenueShowEntry struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowEntry is a show on an artist page: the venue side plus the
// formatted start time.
type ArtistShowEntry struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowFeedEntry is one row of the global shows feed.
type ShowFeedEntry struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func venueShowEntries(shows []model.VenueShow) []VenueShowEntry {
	out := make([]VenueShowEntry, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShowEntry{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       model.FormatStartTime(s.StartTime),
		})
	}
	return out
}

func artistShowEntries(shows []model.ArtistShow) []ArtistShowEntry {
	out := make([]ArtistShowEntry, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShowEntry{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      model.FormatStartTime(s.StartTime),
		})
	}
	return out
}
