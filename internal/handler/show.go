package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showbook/internal/service"
)

// ListShows handles GET /v1/shows, latest first.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
	shows, err := h.Dir.ListShows(c.Request().Context())
	if err != nil {
		return readError(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": shows})
}

// CreateShow handles POST /v1/shows.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	var in service.ShowInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	return writeOutcome(c, h.Dir.CreateShow(c.Request().Context(), in), http.StatusCreated)
}
