package service

import (
	"strings"

	"github.com/iliyamo/showbook/internal/model"
)

// VenueInput is a submitted venue form.  An update replaces every field
// of the stored venue with these values, including empty ones.
type VenueInput struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Address            string   `json:"address" form:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

func (in *VenueInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
}

// apply overwrites every mutable field of v.
func (in VenueInput) apply(v *model.Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.ImageLink = in.ImageLink
	v.FacebookLink = in.FacebookLink
	v.Website = in.Website
	v.Genres = append(model.Genres{}, in.Genres...)
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// VenueInputFrom turns a stored venue back into form values.
func VenueInputFrom(v *model.Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             append([]string{}, v.Genres...),
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistInput is a submitted artist form.  An update replaces every field
// of the stored artist with these values, including empty ones.
type ArtistInput struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url,max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

func (in *ArtistInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
}

func (in ArtistInput) apply(a *model.Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.ImageLink = in.ImageLink
	a.FacebookLink = in.FacebookLink
	a.Website = in.Website
	a.Genres = append(model.Genres{}, in.Genres...)
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ArtistInputFrom turns a stored artist back into form values.
func ArtistInputFrom(a *model.Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             append([]string{}, a.Genres...),
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowInput is a submitted show booking.
type ShowInput struct {
	ArtistID  uint64 `json:"artist_id" form:"artist_id" validate:"required"`
	VenueID   uint64 `json:"venue_id" form:"venue_id" validate:"required"`
	StartTime string `json:"start_time" form:"start_time" validate:"required,starttime"`
}
