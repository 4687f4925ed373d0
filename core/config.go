// Package core holds the tool-level plumbing around the decoder: configuration
// loading, input file loading, job IDs and exit codes.
package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	// DefaultMaxFileSize caps the input PNG at 256 MiB. Anything larger is
	// almost certainly not a file this tool should slurp into memory.
	DefaultMaxFileSize = 256 << 20

	// DefaultLogFile is the log file written next to the working directory.
	DefaultLogFile = "png2ppm.log"

	// DefaultConfigFile is the YAML config file looked up when
	// PNG2PPM_CONFIG is not set.
	DefaultConfigFile = "png2ppm.yaml"
)

// Config holds all configuration values.
//
// Values come from three layers, later layers winning: built-in defaults, the
// optional YAML config file, then environment variables (typically via .env).
type Config struct {
	// OutputPath overrides the output file. Empty means "input path with
	// the extension replaced by .ppm".
	OutputPath string `yaml:"output"`

	// LogFile is the path of the rotating log file.
	LogFile string `yaml:"log_file"`

	// LogLevel is the minimum log level (debug, info, warn, error, fatal).
	LogLevel string `yaml:"log_level"`

	// DevMode switches the console log output to the human-readable
	// colored format and lowers the default level to debug.
	DevMode bool `yaml:"dev_mode"`

	// MaxFileSize is the largest input file accepted, in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// LoadConfig builds the effective configuration from defaults, the optional
// YAML config file and environment variables.
//
// A missing config file is not an error; a present but malformed one is.
func LoadConfig() (Config, error) {
	cfg := Config{
		LogFile:     DefaultLogFile,
		MaxFileSize: DefaultMaxFileSize,
	}

	path := GetEnvOrDefault("PNG2PPM_CONFIG", DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file; defaults and env only.
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.OutputPath = GetEnvOrDefault("PNG2PPM_OUTPUT", cfg.OutputPath)
	cfg.LogFile = GetEnvOrDefault("PNG2PPM_LOG_FILE", cfg.LogFile)
	cfg.LogLevel = GetEnvOrDefault("PNG2PPM_LOG_LEVEL", cfg.LogLevel)
	cfg.DevMode = ParseBoolEnv("DEV_MODE", cfg.DevMode)
	cfg.MaxFileSize = ParseInt64Env("PNG2PPM_MAX_FILE_SIZE", cfg.MaxFileSize)

	if cfg.MaxFileSize <= 0 {
		return Config{}, fmt.Errorf("max_file_size must be positive, got %d", cfg.MaxFileSize)
	}
	return cfg, nil
}
