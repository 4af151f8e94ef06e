package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adventure705/shortstobenz3/internal/config"
)

const envPrefix = "LECTURE2HTML_"

// envConfig holds settings read from LECTURE2HTML_* variables, for CI runs
// without a config file.
type envConfig struct {
	ConfigPath string // LECTURE2HTML_CONFIG
	DataDir    string // LECTURE2HTML_DATA
	OutputDir  string // LECTURE2HTML_OUT
	Style      string // LECTURE2HTML_STYLE
	Workers    int    // LECTURE2HTML_WORKERS
}

// knownEnvVars lists the recognized variables, to catch typos.
var knownEnvVars = map[string]bool{
	envPrefix + "CONFIG":  true,
	envPrefix + "DATA":    true,
	envPrefix + "OUT":     true,
	envPrefix + "STYLE":   true,
	envPrefix + "WORKERS": true,
}

// loadEnvConfig reads the recognized variables. Invalid worker counts are
// ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv(envPrefix + "CONFIG"),
		DataDir:    getenv(envPrefix + "DATA"),
		OutputDir:  getenv(envPrefix + "OUT"),
		Style:      getenv(envPrefix + "STYLE"),
	}
	if w, err := strconv.Atoi(getenv(envPrefix + "WORKERS")); err == nil && w > 0 {
		cfg.Workers = w
	}
	return cfg
}

// warnUnknownEnvVars logs LECTURE2HTML_* variables that are not recognized.
func warnUnknownEnvVars(environ []string, logger zerolog.Logger) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides cfg with the variables that are set. Flags are
// merged afterwards and win.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DataDir != "" {
		cfg.Input.Dir = env.DataDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Assets.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
