package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/deepakagg123/deepakagg123.github.io/database"
	"github.com/deepakagg123/deepakagg123.github.io/models"
)

// newTestAPI builds the full router over a throwaway SQLite-backed store.
func newTestAPI(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "portfolio.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d := database.New(db)
	return newRouter(d), d
}

func doRequest(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonData)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func TestGetProfileBeforeSeed(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/profile", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Contains(t, body, "message")
}

func TestUpdateProfileUpserts(t *testing.T) {
	router, _ := newTestAPI(t)

	payload := map[string]any{
		"name":        "Alex Researcher",
		"title":       "PhD Candidate",
		"institution": "University of Technology",
		"bio":         "Bio text",
		"email":       "alex@example.edu",
		"githubUrl":   "https://github.com/alex",
	}
	recorder := doRequest(t, router, http.MethodPost, "/api/profile", payload)
	require.Equal(t, http.StatusOK, recorder.Code)
	created := decodeBody[models.Profile](t, recorder)
	assert.NotZero(t, created.ID)

	payload["name"] = "Alex R. Researcher"
	recorder = doRequest(t, router, http.MethodPost, "/api/profile", payload)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[models.Profile](t, recorder)
	assert.Equal(t, created.ID, updated.ID, "profile updates must keep the row identity")

	recorder = doRequest(t, router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decodeBody[models.Profile](t, recorder)
	assert.Equal(t, "Alex R. Researcher", fetched.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	router, d := newTestAPI(t)

	payload := map[string]any{
		"title":       "PhD Candidate",
		"institution": "University of Technology",
		"bio":         "Bio text",
		"email":       "alex@example.edu",
	}
	recorder := doRequest(t, router, http.MethodPost, "/api/profile", payload)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Contains(t, body, "message")
	assert.Equal(t, "name", body["field"])

	profile, err := d.ProfileRepo().Get()
	require.NoError(t, err)
	assert.Nil(t, profile, "rejected upsert must not create a row")
}

func TestCreatePublication(t *testing.T) {
	router, _ := newTestAPI(t)

	payload := map[string]any{
		"title":      "T",
		"authors":    "A",
		"venue":      "V",
		"year":       2024,
		"isSelected": true,
	}
	recorder := doRequest(t, router, http.MethodPost, "/api/publications", payload)

	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[models.Publication](t, recorder)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "A", created.Authors)
	assert.Equal(t, "V", created.Venue)
	assert.Equal(t, 2024, created.Year)
	assert.True(t, created.IsSelected)

	recorder = doRequest(t, router, http.MethodGet, "/api/publications", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	listed := decodeBody[[]models.Publication](t, recorder)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, 2024, listed[0].Year)
}

func TestCreatePublicationMissingTitle(t *testing.T) {
	router, d := newTestAPI(t)

	payload := map[string]any{
		"authors": "A",
		"venue":   "V",
		"year":    2024,
	}
	recorder := doRequest(t, router, http.MethodPost, "/api/publications", payload)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Contains(t, body, "message")

	publications, err := d.PublicationRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, publications, "rejected create must not insert a row")
}

func TestListPublicationsOrder(t *testing.T) {
	router, _ := newTestAPI(t)

	for _, p := range []map[string]any{
		{"title": "Old", "authors": "A", "venue": "V", "year": 2020},
		{"title": "New", "authors": "A", "venue": "V", "year": 2025},
		{"title": "Mid", "authors": "A", "venue": "V", "year": 2023},
	} {
		recorder := doRequest(t, router, http.MethodPost, "/api/publications", p)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := doRequest(t, router, http.MethodGet, "/api/publications", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	listed := decodeBody[[]models.Publication](t, recorder)
	require.Len(t, listed, 3)
	assert.Equal(t, "New", listed[0].Title)
	assert.Equal(t, "Mid", listed[1].Title)
	assert.Equal(t, "Old", listed[2].Title)
}

func TestUpdatePublicationPartial(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/publications", map[string]any{
		"title": "Original", "authors": "A", "venue": "V", "year": 2024, "isSelected": true,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[models.Publication](t, recorder)

	recorder = doRequest(t, router, http.MethodPut, "/api/publications/"+itoa(created.ID), map[string]any{
		"title":      "Revised",
		"isSelected": false,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[models.Publication](t, recorder)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Revised", updated.Title)
	assert.False(t, updated.IsSelected)
	assert.Equal(t, "A", updated.Authors, "fields absent from the payload stay untouched")
	assert.Equal(t, 2024, updated.Year)
}

func TestUpdatePublicationNotFound(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPut, "/api/publications/999", map[string]any{
		"title": "X",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Contains(t, body, "message")
}

func TestDeletePublication(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/publications", map[string]any{
		"title": "T", "authors": "A", "venue": "V", "year": 2024,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[models.Publication](t, recorder)

	recorder = doRequest(t, router, http.MethodDelete, "/api/publications/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes(), "204 responses carry no body")

	recorder = doRequest(t, router, http.MethodGet, "/api/publications", nil)
	listed := decodeBody[[]models.Publication](t, recorder)
	for _, p := range listed {
		assert.NotEqual(t, created.ID, p.ID)
	}

	recorder = doRequest(t, router, http.MethodDelete, "/api/publications/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPublicationInvalidID(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodDelete, "/api/publications/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, http.MethodPut, "/api/publications/abc", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProjectLifecycle(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title":        "OpenGen",
		"description":  "An open-source library for generative art.",
		"technologies": "Python, PyTorch",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[models.Project](t, recorder)
	assert.NotZero(t, created.ID)

	recorder = doRequest(t, router, http.MethodPut, "/api/projects/"+itoa(created.ID), map[string]any{
		"description": "Updated description",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[models.Project](t, recorder)
	assert.Equal(t, "Updated description", updated.Description)
	assert.Equal(t, "OpenGen", updated.Title)

	recorder = doRequest(t, router, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	listed := decodeBody[[]models.Project](t, recorder)
	require.Len(t, listed, 1)

	recorder = doRequest(t, router, http.MethodDelete, "/api/projects/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/api/projects/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestProjectMissingDescription(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/projects", map[string]any{
		"title": "OpenGen",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Equal(t, "description", body["field"])
}

func TestNewsLifecycle(t *testing.T) {
	router, _ := newTestAPI(t)

	for _, n := range []map[string]any{
		{"date": "2023-06-01", "content": "older"},
		{"date": "2024-01-15", "content": "newest"},
	} {
		recorder := doRequest(t, router, http.MethodPost, "/api/news", n)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := doRequest(t, router, http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	listed := decodeBody[[]models.NewsItem](t, recorder)
	require.Len(t, listed, 2)
	assert.Equal(t, "newest", listed[0].Content)
	assert.Equal(t, "older", listed[1].Content)

	recorder = doRequest(t, router, http.MethodDelete, "/api/news/"+itoa(listed[0].ID), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestDeleteNewsNeverCreated(t *testing.T) {
	router, _ := newTestAPI(t)

	// Deleting an id that never existed is a 404, like the other collections.
	recorder := doRequest(t, router, http.MethodDelete, "/api/news/4242", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Contains(t, body, "message")
}

func TestCreateNewsInvalidDate(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/news", map[string]any{
		"date":    "January 15, 2024",
		"content": "Paper accepted!",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[map[string]any](t, recorder)
	assert.Equal(t, "date", body["field"])
}

func TestMalformedJSONBody(t *testing.T) {
	router, _ := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/publications", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
