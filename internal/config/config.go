package config

import (
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"colprofile/internal"
	"colprofile/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Scan ScanConfig
	Log  LogConfig
}

// ScanConfig holds the profiling run settings
type ScanConfig struct {
	Dir       string `env:"COLPROFILE_DIR" env-default:"." env-description:"directory to scan"`
	Output    string `env:"COLPROFILE_OUTPUT" env-default:"analysis_results.csv" env-description:"report path; extension selects the format"`
	ChunkSize int    `env:"COLPROFILE_CHUNK_SIZE" env-default:"100000" env-description:"rows per chunk"`
	Workers   int    `env:"COLPROFILE_WORKERS" env-default:"1" env-description:"files profiled concurrently"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"INFO"`
	Format string `env:"LOG_FORMAT" env-default:"console"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Scan.Dir) == "" {
		return errors.ConfigInvalid("directory to scan is required")
	}
	if strings.TrimSpace(c.Scan.Output) == "" {
		return errors.ConfigInvalid("output report path is required")
	}
	if c.Scan.ChunkSize <= 0 {
		return errors.ConfigInvalid("chunk size must be positive")
	}
	if c.Scan.Workers <= 0 {
		return errors.ConfigInvalid("workers must be positive")
	}
	switch internal.LogFormat(strings.ToLower(c.Log.Format)) {
	case internal.LogFormatConsole, internal.LogFormatJSON:
	default:
		return errors.ConfigInvalid("LOG_FORMAT must be console or json")
	}
	return nil
}

// Logger builds the logger described by the log settings
func (c *Config) Logger() *internal.Logger {
	return internal.NewLoggerWithWriter(
		internal.ParseLogLevel(c.Log.Level),
		internal.LogFormat(strings.ToLower(c.Log.Format)),
		os.Stderr,
	)
}

// Usage describes the environment variables understood by Load
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
