package serverapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mrksrus/dual-focus/internal/agenda"
	"github.com/mrksrus/dual-focus/internal/calendar"
	"github.com/mrksrus/dual-focus/internal/config"
	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/httpmw"
	"github.com/mrksrus/dual-focus/internal/model"
	"github.com/mrksrus/dual-focus/internal/stats"
	"github.com/mrksrus/dual-focus/internal/task"
	"github.com/mrksrus/dual-focus/internal/view"
	staticfiles "github.com/mrksrus/dual-focus/static"
)

type Options struct {
	Config        *config.Config
	DataDir       string
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Storage.DataDir
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	weekStart, ok := calendar.ParseWeekday(opts.Config.Calendar.WeekStart)
	if !ok {
		opts.Logger.Printf("unknown week_start %q, using sunday", opts.Config.Calendar.WeekStart)
	}
	defaultView := model.ParseViewMode(opts.Config.UI.DefaultView)

	repo, err := openRepo(opts.Config.Storage.Driver, opts.DataDir, opts.Logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	staticFS := staticfiles.EmbeddedFS()
	staticHandler := http.FileServer(http.FS(staticFS))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		serveIndex(w, staticFS)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "dual-focus",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := repo.List(r.Context(), task.ListFilter{}); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "task storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "dual-focus",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	taskHandler := task.NewHandler(repo)
	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)
	mux.HandleFunc("/api/tasks/", taskHandler.TasksSub)

	// /api/agenda?date=YYYY-MM-DD — grouped list + completed bucket.
	mux.HandleFunc("/api/agenda", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		tasks, err := repo.List(r.Context(), task.ListFilter{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		day := strings.TrimSpace(r.URL.Query().Get("date"))
		now := time.Now()
		writeJSON(w, http.StatusOK, map[string]any{
			"groups":    agenda.Groups(tasks, day, now),
			"completed": agenda.Completed(tasks, day),
		})
	})

	// /api/calendar?year=&month=&selected= — month grid.
	mux.HandleFunc("/api/calendar", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		tasks, err := repo.List(r.Context(), task.ListFilter{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		now := time.Now()
		year, month := monthParams(r, now)
		selected := strings.TrimSpace(r.URL.Query().Get("selected"))

		state := view.Compose(model.ViewCalendar, tasks, selected, year, month, weekStart, now)
		writeJSON(w, http.StatusOK, state.Month)
	})

	// /api/view?mode=&date=&year=&month= — full render snapshot.
	mux.HandleFunc("/api/view", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		tasks, err := repo.List(r.Context(), task.ListFilter{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		now := time.Now()
		q := r.URL.Query()

		mode := defaultView
		if m := strings.TrimSpace(q.Get("mode")); m != "" {
			mode = model.ParseViewMode(m)
		}
		selected := strings.TrimSpace(q.Get("date"))
		if selected == "" {
			// The UI opens on today, same as the original.
			selected = dates.Today(now)
		}
		year, month := monthParams(r, now)

		writeJSON(w, http.StatusOK, view.Compose(mode, tasks, selected, year, month, weekStart, now))
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}
		tasks, err := repo.List(r.Context(), task.ListFilter{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats.Compute(tasks, time.Now()))
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func openRepo(driver, dataDir string, logger *log.Logger) (task.Repo, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "file":
		return task.NewFileRepo(dataDir, logger)
	case "sqlite":
		// The db handle lives for the process lifetime.
		return task.NewSQLiteRepo(dataDir)
	case "memory":
		return task.NewMemoryRepo(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}

func monthParams(r *http.Request, now time.Time) (int, time.Month) {
	q := r.URL.Query()
	year := now.Year()
	month := now.Month()
	if y, err := strconv.Atoi(q.Get("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(q.Get("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}

func serveIndex(w http.ResponseWriter, fsys fs.FS) {
	b, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		http.Error(w, "index unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
