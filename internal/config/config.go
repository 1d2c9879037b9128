// Package config reads docspace settings from DOCSPACE_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/docspace/internal/llm"
)

const defaultSubmitDelay = 2 * time.Second

// Config is the resolved process configuration.
type Config struct {
	DBPath      string
	SubmitDelay time.Duration
	LogEnabled  bool
	LogFile     string
	Seed        bool
	LLM         llm.LLMConfig
}

// Load resolves the configuration. Unset or malformed values keep their
// defaults.
func Load() Config {
	home := dataDir()
	cfg := Config{
		DBPath:      filepath.Join(home, "docspace.db"),
		SubmitDelay: defaultSubmitDelay,
		LogEnabled:  true,
		LogFile:     filepath.Join(home, "docspace.log"),
		Seed:        true,
		LLM:         llm.LoadConfig(),
	}

	if v := os.Getenv("DOCSPACE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DOCSPACE_SUBMIT_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SubmitDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("DOCSPACE_LOG"); v != "" {
		switch strings.ToLower(v) {
		case "off", "false", "0", "none":
			cfg.LogEnabled = false
		}
	}
	if v := os.Getenv("DOCSPACE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("DOCSPACE_NO_SEED"); v != "" {
		if noSeed, err := strconv.ParseBool(v); err == nil {
			cfg.Seed = !noSeed
		}
	}
	return cfg
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docspace"
	}
	return filepath.Join(home, ".docspace")
}
