package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrksrus/dual-focus/internal/model"
)

func newSQLiteRepoForTests(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := NewSQLiteRepo(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepo_RoundTrip(t *testing.T) {
	repo := newSQLiteRepoForTests(t)
	ctx := context.Background()

	created, ok, err := repo.Create(ctx, model.TaskUpsert{
		Title:       "book flights",
		Description: strPtr("aisle seat"),
		Date:        "2024-07-20",
		Time:        strPtr("14:00"),
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "book flights", got.Title)
	if assert.NotNil(t, got.Description) {
		assert.Equal(t, "aisle seat", *got.Description)
	}
	if assert.NotNil(t, got.Time) {
		assert.Equal(t, "14:00", *got.Time)
	}
	assert.False(t, got.Completed)
}

func TestSQLiteRepo_CreateRejectsBlankTitle(t *testing.T) {
	repo := newSQLiteRepoForTests(t)

	_, ok, err := repo.Create(context.Background(), model.TaskUpsert{Title: " ", Date: "2024-07-20"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRepo_ToggleAndDelete(t *testing.T) {
	repo := newSQLiteRepoForTests(t)
	ctx := context.Background()

	created, _, err := repo.Create(ctx, model.TaskUpsert{Title: "gym", Date: "2024-07-21"})
	require.NoError(t, err)

	after, ok, err := repo.Toggle(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, after.Completed)

	_, ok, err = repo.Toggle(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSQLiteRepo_ListOrdersTimelessFirst(t *testing.T) {
	repo := newSQLiteRepoForTests(t)
	ctx := context.Background()

	timed, _, err := repo.Create(ctx, model.TaskUpsert{Title: "timed", Date: "2024-07-22", Time: strPtr("10:00")})
	require.NoError(t, err)
	earlier, _, err := repo.Create(ctx, model.TaskUpsert{Title: "earlier", Date: "2024-07-22", Time: strPtr("09:00")})
	require.NoError(t, err)
	allDay, _, err := repo.Create(ctx, model.TaskUpsert{Title: "all day", Date: "2024-07-22"})
	require.NoError(t, err)

	list, err := repo.List(ctx, ListFilter{Date: "2024-07-22"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, allDay.ID, list[0].ID)
	assert.Equal(t, earlier.ID, list[1].ID)
	assert.Equal(t, timed.ID, list[2].ID)
}
