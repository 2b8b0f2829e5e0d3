// Package service implements the venue, artist and show directory: reads
// with show aggregation, name search and validated transactional writes.
// Every operation gets its storage through the Store passed to
// NewDirectory; nothing is cached between calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/showbook/internal/model"
	"github.com/iliyamo/showbook/internal/repository"
)

// Store is the data access the directory needs.  repository.Store is the
// MySQL implementation.  Every write method must be atomic: it either
// applies completely or leaves storage untouched.
type Store interface {
	VenueSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error)
	GetVenue(ctx context.Context, id uint64) (*model.Venue, error)
	CreateVenue(ctx context.Context, v *model.Venue) error
	UpdateVenue(ctx context.Context, v *model.Venue) error
	DeleteVenue(ctx context.Context, id uint64) error

	ArtistSummaries(ctx context.Context, now time.Time) ([]model.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error)
	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)
	CreateArtist(ctx context.Context, a *model.Artist) error
	UpdateArtist(ctx context.Context, a *model.Artist) error
	DeleteArtist(ctx context.Context, id uint64) error

	CreateShow(ctx context.Context, s *model.Show) error
	VenueShows(ctx context.Context, venueID uint64) ([]model.VenueShow, error)
	ArtistShows(ctx context.Context, artistID uint64) ([]model.ArtistShow, error)
	AllShows(ctx context.Context) ([]model.ShowListing, error)
}

// Directory exposes the operations behind the HTTP API.
type Directory struct {
	store    Store
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	validate *validator.Validate
}

// Option configures a Directory.
type Option func(*Directory)

// WithNotifier sends a NotificationEvent for every write.
func WithNotifier(n Notifier) Option { return func(d *Directory) { d.notifier = n } }

// WithLogger sets the operator log.  Write failures are logged here with
// full error detail.
func WithLogger(l *slog.Logger) Option { return func(d *Directory) { d.log = l } }

// WithClock replaces time.Now as the source of "now" for show
// classification.
func WithClock(now func() time.Time) Option { return func(d *Directory) { d.now = now } }

// NewDirectory builds a Directory over store.
func NewDirectory(store Store, opts ...Option) *Directory {
	if store == nil {
		panic("nil store passed to NewDirectory")
	}
	d := &Directory{
		store:    store,
		log:      slog.Default(),
		now:      time.Now,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ---- Reads ----

// CityGroup is the set of venues located in one city.
type CityGroup struct {
	City   string               `json:"city"`
	State  string               `json:"state"`
	Venues []model.VenueSummary `json:"venues"`
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count   int         `json:"count"`
	Results []SearchHit `json:"data"`
}

// SearchHit is one matching venue or artist.
type SearchHit struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	UpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueDetail is a venue with its shows split into past and upcoming.
type VenueDetail struct {
	ID                 uint64           `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split into past and upcoming.
type ArtistDetail struct {
	ID                 uint64            `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ListVenuesGroupedByCity returns every venue grouped by (city, state).
// Groups are ordered by state then city; venues inside a group by id.
func (d *Directory) ListVenuesGroupedByCity(ctx context.Context) ([]CityGroup, error) {
	venues, err := d.store.VenueSummaries(ctx, d.now())
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	sort.SliceStable(venues, func(i, j int) bool {
		a, b := venues[i], venues[j]
		if a.State != b.State {
			return a.State < b.State
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.ID < b.ID
	})

	groups := []CityGroup{}
	for _, v := range venues {
		n := len(groups)
		if n == 0 || groups[n-1].City != v.City || groups[n-1].State != v.State {
			groups = append(groups, CityGroup{City: v.City, State: v.State})
			n++
		}
		groups[n-1].Venues = append(groups[n-1].Venues, v)
	}
	return groups, nil
}

// ListArtists returns every artist ordered by id.
func (d *Directory) ListArtists(ctx context.Context) ([]model.ArtistSummary, error) {
	artists, err := d.store.ArtistSummaries(ctx, d.now())
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

// SearchVenues returns the venues whose name contains term, ignoring
// case.  An empty term matches every venue.
func (d *Directory) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	venues, err := d.store.SearchVenues(ctx, trimTerm(term), d.now())
	if err != nil {
		return SearchResult{}, fmt.Errorf("search venues: %w", err)
	}
	hits := make([]SearchHit, 0, len(venues))
	for _, v := range venues {
		hits = append(hits, SearchHit{ID: v.ID, Name: v.Name, UpcomingShows: v.UpcomingShows})
	}
	return SearchResult{Count: len(hits), Results: hits}, nil
}

// SearchArtists returns the artists whose name contains term, ignoring
// case.  An empty term matches every artist.
func (d *Directory) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	artists, err := d.store.SearchArtists(ctx, trimTerm(term), d.now())
	if err != nil {
		return SearchResult{}, fmt.Errorf("search artists: %w", err)
	}
	hits := make([]SearchHit, 0, len(artists))
	for _, a := range artists {
		hits = append(hits, SearchHit{ID: a.ID, Name: a.Name, UpcomingShows: a.UpcomingShows})
	}
	return SearchResult{Count: len(hits), Results: hits}, nil
}

// GetVenueDetail returns the venue with its past and upcoming shows, or
// ErrNotFound.
func (d *Directory) GetVenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := d.store.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}
	shows, err := d.store.VenueShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venue %d shows: %w", id, err)
	}
	past, upcoming := Partition(shows, d.now(), func(s model.VenueShow) time.Time { return s.StartTime })

	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             append([]string{}, v.Genres...),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          venueShowEntries(past),
		UpcomingShows:      venueShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetArtistDetail returns the artist with its past and upcoming shows, or
// ErrNotFound.
func (d *Directory) GetArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := d.store.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}
	shows, err := d.store.ArtistShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("artist %d shows: %w", id, err)
	}
	past, upcoming := Partition(shows, d.now(), func(s model.ArtistShow) time.Time { return s.StartTime })

	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             append([]string{}, a.Genres...),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          artistShowEntries(past),
		UpcomingShows:      artistShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetVenueForm returns the stored venue as form values for editing.
func (d *Directory) GetVenueForm(ctx context.Context, id uint64) (VenueInput, error) {
	v, err := d.store.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return VenueInput{}, ErrNotFound
		}
		return VenueInput{}, fmt.Errorf("get venue %d: %w", id, err)
	}
	return VenueInputFrom(v), nil
}

// GetArtistForm returns the stored artist as form values for editing.
func (d *Directory) GetArtistForm(ctx context.Context, id uint64) (ArtistInput, error) {
	a, err := d.store.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return ArtistInput{}, ErrNotFound
		}
		return ArtistInput{}, fmt.Errorf("get artist %d: %w", id, err)
	}
	return ArtistInputFrom(a), nil
}

// ListShows returns every show joined to its venue and artist, latest
// start time first.
func (d *Directory) ListShows(ctx context.Context) ([]ShowFeedEntry, error) {
	shows, err := d.store.AllShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].StartTime.After(shows[j].StartTime)
	})
	out := make([]ShowFeedEntry, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowFeedEntry{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       model.FormatStartTime(s.StartTime),
		})
	}
	return out, nil
}
