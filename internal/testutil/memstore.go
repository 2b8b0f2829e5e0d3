// Package testutil provides an in-memory directory store for tests.  It
// follows the same rules as the MySQL repositories: venue deletes cascade
// to shows, artist deletes are refused while shows reference the artist,
// and shows must reference existing rows.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/showbook/internal/model"
	"github.com/iliyamo/showbook/internal/repository"
)

// MemStore is a goroutine-safe in-memory store.  Set FailWrites to make
// every write return that error without changing any data.
type MemStore struct {
	mu      sync.Mutex
	nextID  uint64
	venues  map[uint64]model.Venue
	artists map[uint64]model.Artist
	shows   map[uint64]model.Show

	FailWrites error
	FailReads  error
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		venues:  map[uint64]model.Venue{},
		artists: map[uint64]model.Artist{},
		shows:   map[uint64]model.Show{},
	}
}

func (m *MemStore) id() uint64 {
	m.nextID++
	return m.nextID
}

// ShowCount returns how many shows are stored.
func (m *MemStore) ShowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shows)
}

// AddVenue stores v directly, bypassing validation, and returns its id.
func (m *MemStore) AddVenue(v model.Venue) uint64 {
	_ = m.CreateVenue(context.Background(), &v)
	return v.ID
}

// AddArtist stores a directly, bypassing validation, and returns its id.
func (m *MemStore) AddArtist(a model.Artist) uint64 {
	_ = m.CreateArtist(context.Background(), &a)
	return a.ID
}

// AddShow books a show directly and returns its id.  It panics when the
// venue or artist is missing.
func (m *MemStore) AddShow(venueID, artistID uint64, start time.Time) uint64 {
	s := model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	if err := m.CreateShow(context.Background(), &s); err != nil {
		panic(err)
	}
	return s.ID
}

func (m *MemStore) sortedShows() []model.Show {
	out := make([]model.Show, 0, len(m.shows))
	for _, s := range m.shows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStore) upcoming(match func(model.Show) bool, now time.Time) int {
	n := 0
	for _, s := range m.shows {
		if match(s) && s.StartTime.After(now) {
			n++
		}
	}
	return n
}

func contains(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// ---- venues ----

func (m *MemStore) venueSummaries(term string, now time.Time) []model.VenueSummary {
	out := []model.VenueSummary{}
	for _, v := range m.venues {
		if !contains(v.Name, term) {
			continue
		}
		id := v.ID
		out = append(out, model.VenueSummary{
			ID: v.ID, Name: v.Name, City: v.City, State: v.State,
			UpcomingShows: m.upcoming(func(s model.Show) bool { return s.VenueID == id }, now),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStore) VenueSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.venueSummaries("", now), nil
}

func (m *MemStore) SearchVenues(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.venueSummaries(term, now), nil
}

func (m *MemStore) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	v, ok := m.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	v.Genres = append(model.Genres{}, v.Genres...)
	return &v, nil
}

func (m *MemStore) CreateVenue(ctx context.Context, v *model.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	v.ID = m.id()
	v.CreatedAt = time.Now().UTC()
	v.UpdatedAt = v.CreatedAt
	m.venues[v.ID] = *v
	return nil
}

func (m *MemStore) UpdateVenue(ctx context.Context, v *model.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	cur, ok := m.venues[v.ID]
	if !ok {
		return repository.ErrVenueNotFound
	}
	v.CreatedAt = cur.CreatedAt
	v.UpdatedAt = time.Now().UTC()
	m.venues[v.ID] = *v
	return nil
}

func (m *MemStore) DeleteVenue(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for sid, s := range m.shows {
		if s.VenueID == id {
			delete(m.shows, sid)
		}
	}
	delete(m.venues, id)
	return nil
}

// ---- artists ----

func (m *MemStore) artistSummaries(term string, now time.Time) []model.ArtistSummary {
	out := []model.ArtistSummary{}
	for _, a := range m.artists {
		if !contains(a.Name, term) {
			continue
		}
		id := a.ID
		out = append(out, model.ArtistSummary{
			ID: a.ID, Name: a.Name,
			UpcomingShows: m.upcoming(func(s model.Show) bool { return s.ArtistID == id }, now),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStore) ArtistSummaries(ctx context.Context, now time.Time) ([]model.ArtistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.artistSummaries("", now), nil
}

func (m *MemStore) SearchArtists(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	return m.artistSummaries(term, now), nil
}

func (m *MemStore) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	a, ok := m.artists[id]
	if !ok {
		return nil, repository.ErrArtistNotFound
	}
	a.Genres = append(model.Genres{}, a.Genres...)
	return &a, nil
}

func (m *MemStore) CreateArtist(ctx context.Context, a *model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	a.ID = m.id()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	m.artists[a.ID] = *a
	return nil
}

func (m *MemStore) UpdateArtist(ctx context.Context, a *model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	cur, ok := m.artists[a.ID]
	if !ok {
		return repository.ErrArtistNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	m.artists[a.ID] = *a
	return nil
}

func (m *MemStore) DeleteArtist(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for _, s := range m.shows {
		if s.ArtistID == id {
			return repository.ErrConflict
		}
	}
	delete(m.artists, id)
	return nil
}

// ---- shows ----

func (m *MemStore) CreateShow(ctx context.Context, s *model.Show) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if _, ok := m.venues[s.VenueID]; !ok {
		return fmt.Errorf("foreign key venue_id=%d: %w", s.VenueID, repository.ErrVenueNotFound)
	}
	if _, ok := m.artists[s.ArtistID]; !ok {
		return fmt.Errorf("foreign key artist_id=%d: %w", s.ArtistID, repository.ErrArtistNotFound)
	}
	s.ID = m.id()
	s.StartTime = s.StartTime.UTC()
	s.CreatedAt = time.Now().UTC()
	m.shows[s.ID] = *s
	return nil
}

func (m *MemStore) VenueShows(ctx context.Context, venueID uint64) ([]model.VenueShow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := []model.VenueShow{}
	for _, s := range m.sortedShows() {
		if s.VenueID != venueID {
			continue
		}
		a := m.artists[s.ArtistID]
		out = append(out, model.VenueShow{
			ShowID: s.ID, ArtistID: a.ID, ArtistName: a.Name,
			ArtistImageLink: a.ImageLink, StartTime: s.StartTime,
		})
	}
	return out, nil
}

func (m *MemStore) ArtistShows(ctx context.Context, artistID uint64) ([]model.ArtistShow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := []model.ArtistShow{}
	for _, s := range m.sortedShows() {
		if s.ArtistID != artistID {
			continue
		}
		v := m.venues[s.VenueID]
		out = append(out, model.ArtistShow{
			ShowID: s.ID, VenueID: v.ID, VenueName: v.Name,
			VenueImageLink: v.ImageLink, StartTime: s.StartTime,
		})
	}
	return out, nil
}

// AllShows returns shows in insertion order; ordering the feed is the
// directory's job.
func (m *MemStore) AllShows(ctx context.Context) ([]model.ShowListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return nil, m.FailReads
	}
	out := []model.ShowListing{}
	for _, s := range m.sortedShows() {
		v, a := m.venues[s.VenueID], m.artists[s.ArtistID]
		out = append(out, model.ShowListing{
			ShowID: s.ID, VenueID: v.ID, VenueName: v.Name,
			ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink,
			StartTime: s.StartTime,
		})
	}
	return out, nil
}

// FixedClock returns a clock function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
