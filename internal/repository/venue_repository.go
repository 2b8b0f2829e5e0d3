// Package repository contains data access logic separated from HTTP handlers.
// This file holds the venue queries.  A venue owns its shows, so removing a
// venue removes its shows inside the same transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/showbook/internal/model"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	website, genres, seeking_talent, seeking_description, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

func scanVenue(row interface{ Scan(...any) error }, v *model.Venue) error {
	return row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.Genres, &v.SeekingTalent,
		&v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt)
}

// Create inserts a new venue.  On success v.ID holds the generated id.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues
		(name, city, state, address, phone, image_link, facebook_link, website,
		 genres, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone,
			v.ImageLink, v.FacebookLink, v.Website, v.Genres, v.SeekingTalent, v.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		v.ID = uint64(id)
		return nil
	})
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	var v model.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, q, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// upcomingVenueShows counts shows strictly after the bound time.
const upcomingVenueShows = `(SELECT COUNT(*) FROM shows s WHERE s.venue_id = v.id AND s.start_time > ?)`

// ListSummaries returns every venue with its upcoming show count, ordered
// by state, city and id so callers can group them by area.
func (r *VenueRepo) ListSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error) {
	q := `SELECT v.id, v.name, v.city, v.state, ` + upcomingVenueShows + `
		FROM venues v
		ORDER BY v.state, v.city, v.id`
	return r.querySummaries(ctx, q, now.UTC())
}

// Search returns venues whose name contains term, ignoring case.  An
// empty term matches every venue.
func (r *VenueRepo) Search(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error) {
	q := `SELECT v.id, v.name, v.city, v.state, ` + upcomingVenueShows + `
		FROM venues v
		WHERE LOWER(v.name) LIKE ? ESCAPE '\\'
		ORDER BY v.id`
	return r.querySummaries(ctx, q, now.UTC(), likePattern(term))
}

func (r *VenueRepo) querySummaries(ctx context.Context, q string, args ...any) ([]model.VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.VenueSummary{}
	for rows.Next() {
		var s model.VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.UpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable column of the venue identified by v.ID.
// The row is locked first so a missing venue is reported as
// ErrVenueNotFound instead of a silent zero-row update.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const qLock = "SELECT id FROM venues WHERE id = ? FOR UPDATE"
	const qUpdate = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		    facebook_link = ?, website = ?, genres = ?, seeking_talent = ?,
		    seeking_description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var id uint64
		if err := tx.QueryRowContext(ctx, qLock, v.ID).Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		_, err := tx.ExecContext(ctx, qUpdate, v.Name, v.City, v.State, v.Address, v.Phone,
			v.ImageLink, v.FacebookLink, v.Website, v.Genres, v.SeekingTalent,
			v.SeekingDescription, v.ID)
		return err
	})
}

// Delete removes a venue and all of its shows.  Deleting an id that does
// not exist is not an error.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
		return err
	})
}
