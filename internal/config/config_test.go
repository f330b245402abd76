package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":8484", c.Server.Addr)
	assert.Equal(t, "file", c.Storage.Driver)
	assert.Equal(t, "data", c.Storage.DataDir)
	assert.Equal(t, "sunday", c.Calendar.WeekStart)
	assert.Equal(t, "split", c.UI.DefaultView)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dualfocus.yml")
	body := "server:\n  addr: \":9000\"\nstorage:\n  driver: sqlite\ncalendar:\n  week_start: monday\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, "sqlite", c.Storage.Driver)
	assert.Equal(t, "monday", c.Calendar.WeekStart)
	assert.Equal(t, "data", c.Storage.DataDir, "unset keys still default")
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dualfocus.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("DUALFOCUS_ADDR", ":7777")
	t.Setenv("DUALFOCUS_STORAGE", "Memory")
	t.Setenv("DUALFOCUS_WEEK_START", "MONDAY")

	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":7777", c.Server.Addr)
	assert.Equal(t, "memory", c.Storage.Driver)
	assert.Equal(t, "monday", c.Calendar.WeekStart)
}
