package task

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mrksrus/dual-focus/internal/dates"
	"github.com/mrksrus/dual-focus/internal/model"
)

// SQLiteRepo stores tasks in <dataDir>/tasks.db. Same contract as the file
// repo; useful once the collection outgrows a single JSON file.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(dataDir string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, "tasks.db")

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open task db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping task db: %w", err)
	}

	r := &SQLiteRepo{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate task db: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepo) migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT,
			date        TEXT NOT NULL,
			time        TEXT,
			completed   INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
	`)
	return err
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) Create(ctx context.Context, in model.TaskUpsert) (model.Task, bool, error) {
	t, ok := newTask(in, time.Now())
	if !ok {
		return model.Task{}, false, nil
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, date, time, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(t.ID), t.Title, nullable(t.Description), t.Date, nullable(t.Time),
		boolToInt(t.Completed), t.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return model.Task{}, false, err
	}
	return t, true, nil
}

func (r *SQLiteRepo) Get(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, date, time, completed, created_at
		 FROM tasks WHERE id = ?`, string(id))
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, err
	}
	return t, true, nil
}

func (r *SQLiteRepo) Toggle(ctx context.Context, id model.TaskID) (model.Task, bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1 - completed WHERE id = ?`, string(id))
	if err != nil {
		return model.Task{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, false, err
	}
	if n == 0 {
		return model.Task{}, false, nil
	}
	return r.Get(ctx, id)
}

func (r *SQLiteRepo) Delete(ctx context.Context, id model.TaskID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, string(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQLiteRepo) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	today := dates.Today(time.Now())

	q := `SELECT id, title, description, date, time, completed, created_at FROM tasks`
	where := ""
	args := []any{}

	and := func(cond string, a ...any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, a...)
	}

	if filter.Date != "" {
		and("date = ?", filter.Date)
	}
	switch filter.Status {
	case "pending":
		and("completed = 0")
	case "completed":
		and("completed = 1")
	case "due_today":
		and("completed = 0 AND date = ?", today)
	case "overdue":
		and("completed = 0 AND date < ?", today)
	case "upcoming":
		and("completed = 0 AND date > ?", today)
	}

	// time IS NOT NULL sorts timeless tasks first, matching sortTasks.
	q += where + ` ORDER BY date, time IS NOT NULL, time, created_at`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		id          string
		description sql.NullString
		clock       sql.NullString
		completed   int
		createdAt   string
	)
	if err := row.Scan(&id, &t.Title, &description, &t.Date, &clock, &completed, &createdAt); err != nil {
		return model.Task{}, err
	}
	t.ID = model.TaskID(id)
	if description.Valid {
		v := description.String
		t.Description = &v
	}
	if clock.Valid {
		v := clock.String
		t.Time = &v
	}
	t.Completed = completed != 0
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		t.CreatedAt = ts
	}
	return t, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
