package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showbook/internal/service"
)

// ListArtists handles GET /v1/artists.
func (h *DirectoryHandler) ListArtists(c echo.Context) error {
	artists, err := h.Dir.ListArtists(c.Request().Context())
	if err != nil {
		return readError(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": artists})
}

// SearchArtists handles GET and POST /v1/artists/search.
func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	term := searchTerm(c)
	res, err := h.Dir.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return readError(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"search_term": term, "results": res})
}

// GetArtist handles GET /v1/artists/:id.
func (h *DirectoryHandler) GetArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	artist, err := h.Dir.GetArtistDetail(c.Request().Context(), id)
	if err != nil {
		return readError(c, err, "artist not found")
	}
	return c.JSON(http.StatusOK, artist)
}

// EditArtistForm handles GET /v1/artists/:id/edit.
func (h *DirectoryHandler) EditArtistForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	form, err := h.Dir.GetArtistForm(c.Request().Context(), id)
	if err != nil {
		return readError(c, err, "artist not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "form": form})
}

// CreateArtist handles POST /v1/artists.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	var in service.ArtistInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	return writeOutcome(c, h.Dir.CreateArtist(c.Request().Context(), in), http.StatusCreated)
}

// UpdateArtist handles PUT /v1/artists/:id and POST /v1/artists/:id/edit.
func (h *DirectoryHandler) UpdateArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in service.ArtistInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	return writeOutcome(c, h.Dir.UpdateArtist(c.Request().Context(), id, in), http.StatusOK)
}

// DeleteArtist handles DELETE /v1/artists/:id.  An artist that still has
// shows answers 409.
func (h *DirectoryHandler) DeleteArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	return writeOutcome(c, h.Dir.DeleteArtist(c.Request().Context(), id), http.StatusOK)
}
