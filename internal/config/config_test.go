package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCSPACE_DB", "")

	cfg := Load()

	assert.Equal(t, "docspace.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, ".docspace", filepath.Base(filepath.Dir(cfg.DBPath)))
	assert.Equal(t, 2*time.Second, cfg.SubmitDelay)
	assert.True(t, cfg.LogEnabled)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.LLM.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DOCSPACE_DB", "/tmp/ws.db")
	t.Setenv("DOCSPACE_SUBMIT_DELAY_MS", "0")
	t.Setenv("DOCSPACE_LOG", "off")
	t.Setenv("DOCSPACE_LOG_FILE", "/tmp/ws.log")
	t.Setenv("DOCSPACE_NO_SEED", "true")
	t.Setenv("DOCSPACE_LLM_ENABLED", "1")

	cfg := Load()

	assert.Equal(t, "/tmp/ws.db", cfg.DBPath)
	assert.Equal(t, time.Duration(0), cfg.SubmitDelay)
	assert.False(t, cfg.LogEnabled)
	assert.Equal(t, "/tmp/ws.log", cfg.LogFile)
	assert.False(t, cfg.Seed)
	assert.True(t, cfg.LLM.Enabled)
}

func TestLoad_MalformedDelayIgnored(t *testing.T) {
	t.Setenv("DOCSPACE_SUBMIT_DELAY_MS", "soon")
	assert.Equal(t, 2*time.Second, Load().SubmitDelay)

	t.Setenv("DOCSPACE_SUBMIT_DELAY_MS", "-5")
	assert.Equal(t, 2*time.Second, Load().SubmitDelay)
}
