package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/showbook/internal/model"
	"github.com/iliyamo/showbook/internal/queue"
	"github.com/iliyamo/showbook/internal/repository"
)

const (
	entityVenue  = "venue"
	entityArtist = "artist"
	entityShow   = "show"

	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

func trimTerm(term string) string { return strings.TrimSpace(term) }

// finish emits the notification for a write and returns its outcome.
func (d *Directory) finish(ctx context.Context, entity, action string, o Outcome) Outcome {
	if d.notifier == nil {
		return o
	}
	ev := queue.NotificationEvent{
		Entity:   entity,
		Action:   action,
		Status:   o.Status.String(),
		EntityID: o.ID,
		Message:  o.Message,
		At:       d.now().UTC().Format(time.RFC3339),
	}
	if err := d.notifier.Notify(ctx, ev); err != nil {
		d.log.Warn("notification not delivered", "entity", entity, "action", action, "err", err)
	}
	return o
}

// writeFailed logs err for operators and returns the generic outcome.
func (d *Directory) writeFailed(ctx context.Context, entity, action string, id uint64, msg string, err error) Outcome {
	d.log.Error("write failed", "entity", entity, "action", action, "id", id, "err", err)
	return d.finish(ctx, entity, action, Outcome{Status: StatusWriteFailed, Message: msg, ID: id})
}

func (d *Directory) invalid(ctx context.Context, entity, action string, id uint64, label string, errs []FieldError) Outcome {
	return d.finish(ctx, entity, action, Outcome{
		Status:  StatusValidationFailed,
		Message: fmt.Sprintf("The %s data is not valid. Please try again!", label),
		Errors:  errs,
		ID:      id,
	})
}

// ---- Venues ----

// CreateVenue validates in and stores it as a new venue.
func (d *Directory) CreateVenue(ctx context.Context, in VenueInput) Outcome {
	in.normalize()
	if errs := validateStruct(d.validate, in); len(errs) > 0 {
		return d.invalid(ctx, entityVenue, actionCreate, 0, "Venue", errs)
	}
	v := &model.Venue{}
	in.apply(v)
	if err := d.store.CreateVenue(ctx, v); err != nil {
		return d.writeFailed(ctx, entityVenue, actionCreate, 0,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name), err)
	}
	return d.finish(ctx, entityVenue, actionCreate, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Venue %s was successfully listed!", v.Name),
		ID:      v.ID,
	})
}

// UpdateVenue replaces every field of venue id with in.  A missing venue
// is reported before validation runs.
func (d *Directory) UpdateVenue(ctx context.Context, id uint64, in VenueInput) Outcome {
	cur, err := d.store.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return d.finish(ctx, entityVenue, actionUpdate, venueNotFound(id))
		}
		return d.writeFailed(ctx, entityVenue, actionUpdate, id,
			fmt.Sprintf("An error occurred. Venue %d could not be updated.", id), err)
	}
	in.normalize()
	if errs := validateStruct(d.validate, in); len(errs) > 0 {
		return d.invalid(ctx, entityVenue, actionUpdate, id, "Venue", errs)
	}
	v := &model.Venue{ID: id}
	in.apply(v)
	if err := d.store.UpdateVenue(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return d.finish(ctx, entityVenue, actionUpdate, venueNotFound(id))
		}
		return d.writeFailed(ctx, entityVenue, actionUpdate, id,
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", cur.Name), err)
	}
	return d.finish(ctx, entityVenue, actionUpdate, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Venue %s was successfully updated!", v.Name),
		ID:      id,
	})
}

// DeleteVenue removes venue id and its shows.  A missing id succeeds.
func (d *Directory) DeleteVenue(ctx context.Context, id uint64) Outcome {
	if err := d.store.DeleteVenue(ctx, id); err != nil {
		return d.writeFailed(ctx, entityVenue, actionDelete, id,
			fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id), err)
	}
	return d.finish(ctx, entityVenue, actionDelete, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Venue %d was successfully deleted.", id),
		ID:      id,
	})
}

func venueNotFound(id uint64) Outcome {
	return Outcome{Status: StatusNotFound, Message: fmt.Sprintf("Venue %d was not found.", id), ID: id}
}

// ---- Artists ----

// CreateArtist validates in and stores it as a new artist.
func (d *Directory) CreateArtist(ctx context.Context, in ArtistInput) Outcome {
	in.normalize()
	if errs := validateStruct(d.validate, in); len(errs) > 0 {
		return d.invalid(ctx, entityArtist, actionCreate, 0, "Artist", errs)
	}
	a := &model.Artist{}
	in.apply(a)
	if err := d.store.CreateArtist(ctx, a); err != nil {
		return d.writeFailed(ctx, entityArtist, actionCreate, 0,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name), err)
	}
	return d.finish(ctx, entityArtist, actionCreate, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Artist %s was successfully listed!", a.Name),
		ID:      a.ID,
	})
}

// UpdateArtist replaces every field of artist id with in.
func (d *Directory) UpdateArtist(ctx context.Context, id uint64, in ArtistInput) Outcome {
	cur, err := d.store.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return d.finish(ctx, entityArtist, actionUpdate, artistNotFound(id))
		}
		return d.writeFailed(ctx, entityArtist, actionUpdate, id,
			fmt.Sprintf("An error occurred. Artist %d could not be updated.", id), err)
	}
	in.normalize()
	if errs := validateStruct(d.validate, in); len(errs) > 0 {
		return d.invalid(ctx, entityArtist, actionUpdate, id, "Artist", errs)
	}
	a := &model.Artist{ID: id}
	in.apply(a)
	if err := d.store.UpdateArtist(ctx, a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return d.finish(ctx, entityArtist, actionUpdate, artistNotFound(id))
		}
		return d.writeFailed(ctx, entityArtist, actionUpdate, id,
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", cur.Name), err)
	}
	return d.finish(ctx, entityArtist, actionUpdate, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Artist %s was successfully updated!", a.Name),
		ID:      id,
	})
}

// DeleteArtist removes artist id.  An artist that still has shows is
// kept and StatusConflict is returned.  A missing id succeeds.
func (d *Directory) DeleteArtist(ctx context.Context, id uint64) Outcome {
	if err := d.store.DeleteArtist(ctx, id); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return d.finish(ctx, entityArtist, actionDelete, Outcome{
				Status:  StatusConflict,
				Message: fmt.Sprintf("Artist %d has shows and cannot be deleted.", id),
				ID:      id,
			})
		}
		return d.writeFailed(ctx, entityArtist, actionDelete, id,
			fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id), err)
	}
	return d.finish(ctx, entityArtist, actionDelete, Outcome{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Artist %d was successfully deleted.", id),
		ID:      id,
	})
}

func artistNotFound(id uint64) Outcome {
	return Outcome{Status: StatusNotFound, Message: fmt.Sprintf("Artist %d was not found.", id), ID: id}
}

// ---- Shows ----

// CreateShow books an artist at a venue.  Both must exist; a missing one
// is reported as a field error on its id.
func (d *Directory) CreateShow(ctx context.Context, in ShowInput) Outcome {
	const failed = "An error occurred. Show could not be listed."
	if errs := validateStruct(d.validate, in); len(errs) > 0 {
		return d.invalid(ctx, entityShow, actionCreate, 0, "Show", errs)
	}

	var errs []FieldError
	if _, err := d.store.GetArtist(ctx, in.ArtistID); err != nil {
		if !errors.Is(err, repository.ErrArtistNotFound) {
			return d.writeFailed(ctx, entityShow, actionCreate, 0, failed, err)
		}
		errs = append(errs, FieldError{Field: "artist_id", Rules: []string{"Artist does not exist."}})
	}
	if _, err := d.store.GetVenue(ctx, in.VenueID); err != nil {
		if !errors.Is(err, repository.ErrVenueNotFound) {
			return d.writeFailed(ctx, entityShow, actionCreate, 0, failed, err)
		}
		errs = append(errs, FieldError{Field: "venue_id", Rules: []string{"Venue does not exist."}})
	}
	if len(errs) > 0 {
		return d.invalid(ctx, entityShow, actionCreate, 0, "Show", errs)
	}

	start, err := ParseStartTime(in.StartTime)
	if err != nil {
		return d.invalid(ctx, entityShow, actionCreate, 0, "Show",
			[]FieldError{{Field: "start_time", Rules: []string{"Not a valid datetime value."}}})
	}
	s := &model.Show{VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: start}
	if err := d.store.CreateShow(ctx, s); err != nil {
		return d.writeFailed(ctx, entityShow, actionCreate, 0, failed, err)
	}
	return d.finish(ctx, entityShow, actionCreate, Outcome{
		Status:  StatusSuccess,
		Message: "Show was successfully listed!",
		ID:      s.ID,
	})
}
