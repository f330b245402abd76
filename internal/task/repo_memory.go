package task

import (
	"context"
	"sync"
	"time"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	tasks map[model.TaskID]model.Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tasks: map[model.TaskID]model.Task{}}
}

func (r *MemoryRepo) Create(ctx context.Context, in model.TaskUpsert) (model.Task, bool, error) {
	_ = ctx

	t, ok := newTask(in, time.Now())
	if !ok {
		return model.Task{}, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t
	return t, true, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	_ = ctx

	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	return t, ok, nil
}

func (r *MemoryRepo) Toggle(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, false, nil
	}
	t.Completed = !t.Completed
	r.tasks[id] = t
	return t, true, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id model.TaskID) (bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
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
