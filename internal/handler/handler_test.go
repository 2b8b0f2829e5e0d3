package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/showbook/internal/model"
	"github.com/iliyamo/showbook/internal/service"
	"github.com/iliyamo/showbook/internal/testutil"
)

var testNow = time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*DirectoryHandler, *testutil.MemStore) {
	t.Helper()
	store := testutil.NewMemStore()
	dir := service.NewDirectory(store, service.WithClock(testutil.FixedClock(testNow)))
	return NewDirectoryHandler(dir), store
}

// serve runs h against a request and decodes the JSON response body.
func serve(t *testing.T, h echo.HandlerFunc, req *http.Request, id string) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, h(c))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

const venueJSON = `{"name":"The Musical Hop","city":"San Francisco","state":"CA",
	"address":"1015 Folsom Street","phone":"123-123-1234","genres":["Jazz","Reggae"],
	"seeking_talent":true,"seeking_description":"We are on the lookout for a local artist"}`

func TestCreateVenueJSON(t *testing.T) {
	h, store := newTestHandler(t)

	code, body := serve(t, h.CreateVenue, jsonRequest(http.MethodPost, "/v1/venues", venueJSON), "")
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", body["message"])
	assert.Equal(t, "success", body["status"])
	id := uint64(body["id"].(float64))

	v, err := store.GetVenue(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, model.Genres{"Jazz", "Reggae"}, v.Genres)
}

func TestCreateArtistForm(t *testing.T) {
	h, store := newTestHandler(t)

	form := url.Values{}
	form.Set("name", "Guns N Petals")
	form.Set("city", "San Francisco")
	form.Set("state", "ca")
	form.Add("genres", "Rock n Roll")
	form.Add("genres", "Punk")
	form.Set("seeking_venue", "true")
	req := httptest.NewRequest(http.MethodPost, "/v1/artists", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	code, body := serve(t, h.CreateArtist, req, "")
	require.Equal(t, http.StatusCreated, code, body)
	a, err := store.GetArtist(context.Background(), uint64(body["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, "CA", a.State)
	assert.Equal(t, model.Genres{"Rock n Roll", "Punk"}, a.Genres)
	assert.True(t, a.SeekingVenue)
}

func TestCreateVenueValidationFailed(t *testing.T) {
	h, _ := newTestHandler(t)

	code, body := serve(t, h.CreateVenue, jsonRequest(http.MethodPost, "/v1/venues",
		`{"name":"The Musical Hop","city":"San Francisco","state":"CA","address":"x","genres":["Polka"]}`), "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "The Venue data is not valid. Please try again!", body["message"])
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "genres", errs[0].(map[string]any)["field"])
	assert.NotContains(t, body, "id")
}

func TestCreateVenueBadBody(t *testing.T) {
	h, _ := newTestHandler(t)
	code, body := serve(t, h.CreateVenue, jsonRequest(http.MethodPost, "/v1/venues", `{"name":`), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestCreateVenueWriteFailed(t *testing.T) {
	h, store := newTestHandler(t)
	store.FailWrites = errors.New("Error 1205: Lock wait timeout exceeded")

	code, body := serve(t, h.CreateVenue, jsonRequest(http.MethodPost, "/v1/venues", venueJSON), "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "An error occurred. Venue The Musical Hop could not be listed.", body["message"])
}

func TestGetVenue(t *testing.T) {
	h, store := newTestHandler(t)
	venueID := store.AddVenue(model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: model.Genres{"Jazz"}})
	artistID := store.AddArtist(model.Artist{Name: "Guns N Petals"})
	store.AddShow(venueID, artistID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	store.AddShow(venueID, artistID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))

	code, body := serve(t, h.GetVenue, httptest.NewRequest(http.MethodGet, "/v1/venues/1", nil), "1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "The Musical Hop", body["name"])
	assert.Equal(t, float64(1), body["past_shows_count"])
	assert.Equal(t, float64(1), body["upcoming_shows_count"])
	past := body["past_shows"].([]any)
	assert.Equal(t, "05/21/2019, 21:30", past[0].(map[string]any)["start_time"])
}

func TestGetVenueErrors(t *testing.T) {
	h, _ := newTestHandler(t)

	code, body := serve(t, h.GetVenue, httptest.NewRequest(http.MethodGet, "/v1/venues/9", nil), "9")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "venue not found", body["error"])

	code, _ = serve(t, h.GetVenue, httptest.NewRequest(http.MethodGet, "/v1/venues/abc", nil), "abc")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = serve(t, h.GetArtist, httptest.NewRequest(http.MethodGet, "/v1/artists/0", nil), "0")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSearchVenues(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddVenue(model.Venue{Name: "The Musical Hop"})
	store.AddVenue(model.Venue{Name: "The Dueling Pianos Bar"})
	store.AddVenue(model.Venue{Name: "Park Square Live Music & Coffee"})

	code, body := serve(t, h.SearchVenues, httptest.NewRequest(http.MethodGet, "/v1/venues/search?search_term=music", nil), "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "music", body["search_term"])
	results := body["results"].(map[string]any)
	assert.Equal(t, float64(2), results["count"])

	form := url.Values{"search_term": {"hop"}}
	req := httptest.NewRequest(http.MethodPost, "/v1/venues/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	_, body = serve(t, h.SearchVenues, req, "")
	results = body["results"].(map[string]any)
	assert.Equal(t, float64(1), results["count"])

	_, body = serve(t, h.SearchArtists, httptest.NewRequest(http.MethodGet, "/v1/artists/search", nil), "")
	results = body["results"].(map[string]any)
	assert.Equal(t, float64(0), results["count"])
	assert.Equal(t, []any{}, results["data"])
}

func TestUpdateArtistNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	code, body := serve(t, h.UpdateArtist, jsonRequest(http.MethodPut, "/v1/artists/5", `{}`), "5")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Artist 5 was not found.", body["message"])
}

func TestEditVenueForm(t *testing.T) {
	h, store := newTestHandler(t)
	id := store.AddVenue(model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: model.Genres{"Jazz"}})

	code, body := serve(t, h.EditVenueForm, httptest.NewRequest(http.MethodGet, "/v1/venues/1/edit", nil), "1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(id), body["id"])
	form := body["form"].(map[string]any)
	assert.Equal(t, "The Musical Hop", form["name"])
	assert.Equal(t, []any{"Jazz"}, form["genres"])
}

func TestDeleteArtistConflict(t *testing.T) {
	h, store := newTestHandler(t)
	venueID := store.AddVenue(model.Venue{Name: "The Musical Hop"})
	artistID := store.AddArtist(model.Artist{Name: "Guns N Petals"})
	store.AddShow(venueID, artistID, testNow.Add(time.Hour))

	code, body := serve(t, h.DeleteArtist, httptest.NewRequest(http.MethodDelete, "/v1/artists/2", nil), "2")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "conflict", body["status"])

	code, _ = serve(t, h.DeleteVenue, httptest.NewRequest(http.MethodDelete, "/v1/venues/1", nil), "1")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, store.ShowCount())
}

func TestShows(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddVenue(model.Venue{Name: "The Musical Hop"})
	store.AddArtist(model.Artist{Name: "Guns N Petals"})

	code, body := serve(t, h.CreateShow, jsonRequest(http.MethodPost, "/v1/shows",
		`{"artist_id":2,"venue_id":1,"start_time":"2019-05-21 21:30:00"}`), "")
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "Show was successfully listed!", body["message"])

	code, body = serve(t, h.CreateShow, jsonRequest(http.MethodPost, "/v1/shows",
		`{"artist_id":7,"venue_id":1,"start_time":"2019-05-21 21:30:00"}`), "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body = serve(t, h.ListShows, httptest.NewRequest(http.MethodGet, "/v1/shows", nil), "")
	require.Equal(t, http.StatusOK, code)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Guns N Petals", items[0].(map[string]any)["artist_name"])
	assert.Equal(t, "05/21/2019, 21:30", items[0].(map[string]any)["start_time"])
}

func TestListVenuesReadError(t *testing.T) {
	h, store := newTestHandler(t)
	store.FailReads = errors.New("connection reset")
	code, body := serve(t, h.ListVenues, httptest.NewRequest(http.MethodGet, "/v1/venues", nil), "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "database error", body["error"])
}

type pingFunc func(context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	e := echo.New()
	for name, tc := range map[string]struct {
		db   Pinger
		code int
	}{
		"no database": {nil, http.StatusOK},
		"healthy":     {pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		"down":        {pingFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable},
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)
			require.NoError(t, Health(tc.db)(c))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
