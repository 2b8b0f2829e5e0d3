package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showbook/internal/service"
)

// ListVenues handles GET /v1/venues.  Venues are grouped by city.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
	groups, err := h.Dir.ListVenuesGroupedByCity(c.Request().Context())
	if err != nil {
		return readError(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": groups})
}

// SearchVenues handles GET and POST /v1/venues/search.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	term := searchTerm(c)
	res, err := h.Dir.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return readError(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"search_term": term, "results": res})
}

// GetVenue handles GET /v1/venues/:id.
func (h *DirectoryHandler) GetVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	venue, err := h.Dir.GetVenueDetail(c.Request().Context(), id)
	if err != nil {
		return readError(c, err, "venue not found")
	}
	return c.JSON(http.StatusOK, venue)
}

// EditVenueForm handles GET /v1/venues/:id/edit and returns the stored
// values for pre-filling the edit form.
func (h *DirectoryHandler) EditVenueForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	form, err := h.Dir.GetVenueForm(c.Request().Context(), id)
	if err != nil {
		return readError(c, err, "venue not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "form": form})
}

// CreateVenue handles POST /v1/venues.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	var in service.VenueInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	out := h.Dir.CreateVenue(c.Request().Context(), in)
	return writeOutcome(c, out, http.StatusCreated)
}

// UpdateVenue handles PUT /v1/venues/:id and POST /v1/venues/:id/edit.
// Every field is replaced, so omitted fields are cleared.
func (h *DirectoryHandler) UpdateVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in service.VenueInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	out := h.Dir.UpdateVenue(c.Request().Context(), id, in)
	return writeOutcome(c, out, http.StatusOK)
}

// DeleteVenue handles DELETE /v1/venues/:id.  The venue's shows go with it.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out := h.Dir.DeleteVenue(c.Request().Context(), id)
	return writeOutcome(c, out, http.StatusOK)
}
