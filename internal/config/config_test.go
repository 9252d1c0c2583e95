package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Planner.Priority)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.Equal(t, "studyplan.db", filepath.Base(cfg.Database.Path))
	assert.NotEmpty(t, cfg.User)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
user: alice
db:
  path: /tmp/plan.db
log:
  level: debug
planner:
  priority:
    quiz: 0
  blocks:
    project: 8
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("STUDYPLAN_LOG_LEVEL", "error")
	t.Setenv("STUDYPLAN_UI_COLOR", "never")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "/tmp/plan.db", cfg.Database.Path)
	assert.Equal(t, "error", cfg.Log.Level, "environment wins over the file")
	assert.Equal(t, "never", cfg.UI.Color)
	assert.Equal(t, map[string]int{"quiz": 0}, cfg.Planner.Priority)
	assert.Equal(t, map[string]int{"project": 8}, cfg.Planner.Blocks)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(Log{Level: "info", Format: "json"}, &buf)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.WithField("item", "Essay").Warn("skipped")
	assert.Contains(t, buf.String(), `"item":"Essay"`)

	fallback := NewLogger(Log{Level: "loud"}, &buf)
	assert.Equal(t, log.WarnLevel, fallback.GetLevel())
}
