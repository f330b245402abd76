package task

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrksrus/dual-focus/internal/model"
)

func newTaskAPIForTests() (*Handler, *MemoryRepo, *http.ServeMux) {
	repo := NewMemoryRepo()
	h := NewHandler(repo)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks", h.TasksRoot)
	mux.HandleFunc("/api/tasks/", h.TasksSub)
	return h, repo, mux
}

func TestHandler_CreateAndList(t *testing.T) {
	_, _, mux := newTaskAPIForTests()

	body := `{"title":"buy milk","date":"2024-06-01","time":"09:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "buy milk", created.Title)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks?date=2024-06-01", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestHandler_CreateValidation(t *testing.T) {
	_, _, mux := newTaskAPIForTests()

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"  ","date":"2024-06-01"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{nope`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetUnknownIs404(t *testing.T) {
	_, _, mux := newTaskAPIForTests()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Toggle(t *testing.T) {
	_, repo, mux := newTaskAPIForTests()

	created, _, err := repo.Create(context.Background(), model.TaskUpsert{Title: "run", Date: "2024-06-02"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+string(created.ID)+"/toggle", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var after model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.True(t, after.Completed)

	req = httptest.NewRequest(http.MethodPost, "/api/tasks/missing/toggle", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteIsIdempotent(t *testing.T) {
	_, repo, mux := newTaskAPIForTests()

	created, _, err := repo.Create(context.Background(), model.TaskUpsert{Title: "junk", Date: "2024-06-02"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+string(created.ID), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestHandler_CalendarExport(t *testing.T) {
	_, repo, mux := newTaskAPIForTests()

	created, _, err := repo.Create(context.Background(), model.TaskUpsert{Title: "dentist", Date: "2024-06-03", Time: strPtr("10:30")})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+string(created.ID)+"/calendar.ics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "SUMMARY:dentist")
	assert.Contains(t, rec.Body.String(), "DTSTART:20240603T103000")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	_, _, mux := newTaskAPIForTests()

	req := httptest.NewRequest(http.MethodPut, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
