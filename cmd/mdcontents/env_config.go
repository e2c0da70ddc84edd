package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mdcontents/internal/config"
)

// envPrefix marks the environment variables owned by mdcontents.
const envPrefix = "MDCONTENTS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDCONTENTS_CONFIG: config file name or path
	Title      string // MDCONTENTS_TITLE: contents block heading
	InputDir   string // MDCONTENTS_INPUT_DIR: default input directory
	Workers    int    // MDCONTENTS_WORKERS: parallel workers
}

// knownEnvVars lists valid MDCONTENTS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDCONTENTS_CONFIG":    true,
	"MDCONTENTS_TITLE":     true,
	"MDCONTENTS_INPUT_DIR": true,
	"MDCONTENTS_WORKERS":   true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable or non-positive worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDCONTENTS_CONFIG"),
		Title:      os.Getenv("MDCONTENTS_TITLE"),
		InputDir:   os.Getenv("MDCONTENTS_INPUT_DIR"),
	}

	if workers := os.Getenv("MDCONTENTS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MDCONTENTS_* variable.
func warnUnknownEnvVars(log *logrus.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			log.WithField("variable", name).Warn("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overlays environment values on the loaded config.
// Set variables win over the file; CLI flags are applied afterwards by
// mergeContentsFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" {
		cfg.Contents.Title = env.Title
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
