// Package handler exposes the HTTP handlers of the venue and artist
// directory.  Handlers only translate between HTTP and service.Directory:
// they parse ids and forms, call one directory operation and map its
// result to a status code.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showbook/internal/service"
)

// DirectoryHandler serves venues, artists and shows.
type DirectoryHandler struct {
	Dir *service.Directory
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if dir is nil.
func NewDirectoryHandler(dir *service.Directory) *DirectoryHandler {
	if dir == nil {
		panic("nil directory passed to NewDirectoryHandler")
	}
	return &DirectoryHandler{Dir: dir}
}

func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
}

// searchTerm reads search_term from the query string or a posted form.
func searchTerm(c echo.Context) string {
	return c.FormValue("search_term")
}

// readError answers a failed read: 404 for a missing record, 500 otherwise.
func readError(c echo.Context, err error, notFound string) error {
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFound})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// statusFor maps a write outcome to its HTTP status.  ok is used for
// success so creates can answer 201.
func statusFor(s service.Status, ok int) int {
	switch s {
	case service.StatusSuccess:
		return ok
	case service.StatusValidationFailed:
		return http.StatusUnprocessableEntity
	case service.StatusNotFound:
		return http.StatusNotFound
	case service.StatusConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeOutcome renders a write result.  The body always carries the
// notification message; field errors are added for rejected forms.
func writeOutcome(c echo.Context, o service.Outcome, ok int) error {
	body := echo.Map{"message": o.Message, "status": o.Status.String()}
	if o.ID != 0 && o.Status != service.StatusNotFound {
		body["id"] = o.ID
	}
	if len(o.Errors) > 0 {
		body["errors"] = o.Errors
	}
	return c.JSON(statusFor(o.Status, ok), body)
}
