package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/showbook/internal/model"
)

// ShowRepo encapsulates all database queries related to shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the provided DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create books a show.  The foreign keys make the insert fail when the
// venue or the artist does not exist.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = "INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)"
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime.UTC())
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = uint64(id)
		return nil
	})
}

// ListByVenue returns every show at a venue joined to its artist, in
// insertion order.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.VenueShow, error) {
	const q = `SELECT s.id, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = ?
		ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.VenueShow{}
	for rows.Next() {
		var vs model.VenueShow
		if err := rows.Scan(&vs.ShowID, &vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink, &vs.StartTime); err != nil {
			return nil, err
		}
		out = append(out, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByArtist returns every show of an artist joined to its venue, in
// insertion order.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ArtistShow, error) {
	const q = `SELECT s.id, v.id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = ?
		ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ArtistShow{}
	for rows.Next() {
		var as model.ArtistShow
		if err := rows.Scan(&as.ShowID, &as.VenueID, &as.VenueName, &as.VenueImageLink, &as.StartTime); err != nil {
			return nil, err
		}
		out = append(out, as)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns the global shows feed, most recent start time first.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	const q = `SELECT s.id, v.id, v.name, a.id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v  ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time DESC, s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ShowListing{}
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.ArtistID,
			&l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
