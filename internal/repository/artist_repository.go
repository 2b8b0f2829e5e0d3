package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/showbook/internal/model"
)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

const artistColumns = `id, name, city, state, phone, image_link, facebook_link, website,
	genres, seeking_venue, seeking_description, created_at, updated_at`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(row interface{ Scan(...any) error }, a *model.Artist) error {
	return row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.Genres, &a.SeekingVenue,
		&a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt)
}

// Create inserts a new artist.  On success a.ID holds the generated id.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists
		(name, city, state, phone, image_link, facebook_link, website,
		 genres, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = uint64(id)
		return nil
	})
}

// GetByID fetches an artist by its ID or returns ErrArtistNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := "SELECT " + artistColumns + " FROM artists WHERE id = ?"
	var a model.Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

const upcomingArtistShows = `(SELECT COUNT(*) FROM shows s WHERE s.artist_id = a.id AND s.start_time > ?)`

// ListSummaries returns every artist ordered by id with its upcoming
// show count.
func (r *ArtistRepo) ListSummaries(ctx context.Context, now time.Time) ([]model.ArtistSummary, error) {
	q := `SELECT a.id, a.name, ` + upcomingArtistShows + `
		FROM artists a
		ORDER BY a.id`
	return r.querySummaries(ctx, q, now.UTC())
}

// Search returns artists whose name contains term, ignoring case.  An
// empty term matches every artist.
func (r *ArtistRepo) Search(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error) {
	q := `SELECT a.id, a.name, ` + upcomingArtistShows + `
		FROM artists a
		WHERE LOWER(a.name) LIKE ? ESCAPE '\\'
		ORDER BY a.id`
	return r.querySummaries(ctx, q, now.UTC(), likePattern(term))
}

func (r *ArtistRepo) querySummaries(ctx context.Context, q string, args ...any) ([]model.ArtistSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ArtistSummary{}
	for rows.Next() {
		var s model.ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable column of the artist identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const qLock = "SELECT id FROM artists WHERE id = ? FOR UPDATE"
	const qUpdate = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
		    website = ?, genres = ?, seeking_venue = ?, seeking_description = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var id uint64
		if err := tx.QueryRowContext(ctx, qLock, a.ID).Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		_, err := tx.ExecContext(ctx, qUpdate, a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.Website, a.Genres, a.SeekingVenue, a.SeekingDescription, a.ID)
		return err
	})
}

// Delete removes an artist.  If any show still references the artist,
// nothing is deleted and ErrConflict is returned.  Deleting an id that
// does not exist is not an error.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM shows WHERE artist_id = ? FOR UPDATE`, id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
		return err
	})
}
