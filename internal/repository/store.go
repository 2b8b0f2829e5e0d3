package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/showbook/internal/model"
)

// Store bundles the venue, artist and show repositories behind one value
// so the directory service receives a single data-access dependency.
type Store struct {
	Venues  *VenueRepo
	Artists *ArtistRepo
	Shows   *ShowRepo
}

// NewStore builds a Store over one connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{
		Venues:  NewVenueRepo(db),
		Artists: NewArtistRepo(db),
		Shows:   NewShowRepo(db),
	}
}

func (s *Store) VenueSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error) {
	return s.Venues.ListSummaries(ctx, now)
}

func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error) {
	return s.Venues.Search(ctx, term, now)
}

func (s *Store) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	return s.Venues.GetByID(ctx, id)
}

func (s *Store) CreateVenue(ctx context.Context, v *model.Venue) error {
	return s.Venues.Create(ctx, v)
}

func (s *Store) UpdateVenue(ctx context.Context, v *model.Venue) error {
	return s.Venues.Update(ctx, v)
}

func (s *Store) DeleteVenue(ctx context.Context, id uint64) error {
	return s.Venues.Delete(ctx, id)
}

func (s *Store) ArtistSummaries(ctx context.Context, now time.Time) ([]model.ArtistSummary, error) {
	return s.Artists.ListSummaries(ctx, now)
}

func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error) {
	return s.Artists.Search(ctx, term, now)
}

func (s *Store) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.Artists.GetByID(ctx, id)
}

func (s *Store) CreateArtist(ctx context.Context, a *model.Artist) error {
	return s.Artists.Create(ctx, a)
}

func (s *Store) UpdateArtist(ctx context.Context, a *model.Artist) error {
	return s.Artists.Update(ctx, a)
}

func (s *Store) DeleteArtist(ctx context.Context, id uint64) error {
	return s.Artists.Delete(ctx, id)
}

func (s *Store) CreateShow(ctx context.Context, sh *model.Show) error {
	return s.Shows.Create(ctx, sh)
}

func (s *Store) VenueShows(ctx context.Context, venueID uint64) ([]model.VenueShow, error) {
	return s.Shows.ListByVenue(ctx, venueID)
}

func (s *Store) ArtistShows(ctx context.Context, artistID uint64) ([]model.ArtistShow, error) {
	return s.Shows.ListByArtist(ctx, artistID)
}

func (s *Store) AllShows(ctx context.Context) ([]model.ShowListing, error) {
	return s.Shows.ListAll(ctx)
}
