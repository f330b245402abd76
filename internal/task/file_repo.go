package task

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

// FileRepo persists the whole collection as a JSON array of tasks in
// <dataDir>/tasks.json. Every mutation rewrites the full file; a failed
// write is logged and the in-memory mutation stands.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	logger *log.Logger
	tasks  map[model.TaskID]model.Task
}

func NewFileRepo(dataDir string, logger *log.Logger) (*FileRepo, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:   filepath.Join(dataDir, "tasks.json"),
		logger: logger,
		tasks:  map[model.TaskID]model.Task{},
	}
	r.load()
	return r, nil
}

// load reads the persisted collection. A missing file is an empty
// collection; an unreadable or corrupt file is logged and treated the same
// way so startup never fails on bad state.
func (r *FileRepo) load() {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Printf("task store: read %s: %v; starting empty", r.path, err)
		}
		return
	}

	var loaded []model.Task
	if err := json.Unmarshal(b, &loaded); err != nil {
		r.logger.Printf("task store: parse %s: %v; starting empty", r.path, err)
		return
	}
	for _, t := range loaded {
		if t.ID == "" {
			continue
		}
		r.tasks[t.ID] = t
	}
}

func (r *FileRepo) saveLocked() {
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sortTasks(out)

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		r.logger.Printf("task store: marshal: %v", err)
		return
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		r.logger.Printf("task store: write %s: %v", r.path, err)
	}
}

func (r *FileRepo) Create(ctx context.Context, in model.TaskUpsert) (model.Task, bool, error) {
	_ = ctx

	t, ok := newTask(in, time.Now())
	if !ok {
		return model.Task{}, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t
	r.saveLocked()
	return t, true, nil
}

func (r *FileRepo) Get(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	_ = ctx

	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	return t, ok, nil
}

func (r *FileRepo) Toggle(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, false, nil
	}
	t.Completed = !t.Completed
	r.tasks[id] = t
	r.saveLocked()
	return t, true, nil
}

func (r *FileRepo) Delete(ctx context.Context, id model.TaskID) (bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	r.saveLocked()
	return true, nil
}

func (r *FileRepo) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	today := dates.Today(time.Now())
	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if matchesFilter(t, filter, today) {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out, nil
}
