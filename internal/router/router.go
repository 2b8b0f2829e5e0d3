// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/showbook/internal/handler"
	"github.com/iliyamo/showbook/internal/middleware"
	"github.com/iliyamo/showbook/internal/utils"
)

// RegisterRoutes registers the routes that sit outside /v1.  Currently it
// exposes only the health check.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health(db))
}

// RegisterDirectory registers the venue, artist and show routes.  Reads
// are public.  When jwtSecret is set, writes require an EDITOR token.
// The extra middleware (the rate limiter in production) runs on every
// directory route; on writes it runs after authentication so the editor
// is known when the bucket key is built.  Middleware is attached per
// route so unknown /v1 paths still answer 404.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	v1.GET("/venues", h.ListVenues, mw...)
	v1.GET("/venues/search", h.SearchVenues, mw...)
	v1.POST("/venues/search", h.SearchVenues, mw...)
	v1.GET("/venues/:id", h.GetVenue, mw...)
	v1.GET("/venues/:id/edit", h.EditVenueForm, mw...)

	v1.GET("/artists", h.ListArtists, mw...)
	v1.GET("/artists/search", h.SearchArtists, mw...)
	v1.POST("/artists/search", h.SearchArtists, mw...)
	v1.GET("/artists/:id", h.GetArtist, mw...)
	v1.GET("/artists/:id/edit", h.EditArtistForm, mw...)

	v1.GET("/shows", h.ListShows, mw...)

	var writeMW []echo.MiddlewareFunc
	if jwtSecret != "" {
		writeMW = append(writeMW, middleware.JWTAuth(jwtSecret), middleware.RequireRole(utils.RoleEditor))
	}
	writeMW = append(writeMW, mw...)

	v1.POST("/venues", h.CreateVenue, writeMW...)
	v1.PUT("/venues/:id", h.UpdateVenue, writeMW...)
	v1.POST("/venues/:id", h.UpdateVenue, writeMW...)
	v1.POST("/venues/:id/edit", h.UpdateVenue, writeMW...)
	v1.DELETE("/venues/:id", h.DeleteVenue, writeMW...)

	v1.POST("/artists", h.CreateArtist, writeMW...)
	v1.PUT("/artists/:id", h.UpdateArtist, writeMW...)
	v1.POST("/artists/:id", h.UpdateArtist, writeMW...)
	v1.POST("/artists/:id/edit", h.UpdateArtist, writeMW...)
	v1.DELETE("/artists/:id", h.DeleteArtist, writeMW...)

	v1.POST("/shows", h.CreateShow, writeMW...)
}
