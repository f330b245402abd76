package task

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mrksrus/dual-focus/internal/model"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		filter := ListFilter{
			Date:   strings.TrimSpace(q.Get("date")),
			Status: q.Get("status"),
		}
		ts, err := h.repo.List(r.Context(), filter)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, ts)
		return

	case http.MethodPost:
		var in model.TaskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}

		t, ok, err := h.repo.Create(r.Context(), in)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		if !ok {
			writeErr(w, 422, "title is required")
			return
		}
		writeJSON(w, 201, t)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/tasks/{id} and subresources
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	tail = strings.Trim(tail, "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}

	parts := strings.Split(tail, "/")
	id := model.TaskID(parts[0])

	// /api/tasks/{id}
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			t, ok, err := h.repo.Get(r.Context(), id)
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			if !ok {
				writeErr(w, 404, "not found")
				return
			}
			writeJSON(w, 200, t)
			return

		case http.MethodDelete:
			// Idempotent: deleting an unknown id still reports success.
			if _, err := h.repo.Delete(r.Context(), id); err != nil {
				writeErr(w, 500, err.Error())
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return

		default:
			writeErr(w, 405, "method not allowed")
			return
		}
	}

	// /api/tasks/{id}/toggle
	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, ok, err := h.repo.Toggle(r.Context(), id)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		writeJSON(w, 200, t)
		return
	}

	// /api/tasks/{id}/calendar.ics
	if len(parts) == 2 && parts[1] == "calendar.ics" {
		if r.Method != http.MethodGet {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, ok, err := h.repo.Get(r.Context(), id)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		ics, err := BuildTaskICS(t, time.Now())
		if err != nil {
			writeErr(w, 400, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="task.ics"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(ics))
		return
	}

	writeErr(w, 404, "not found")
}
