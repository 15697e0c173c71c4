package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	apperrors "crimedata/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths      PathsConfig      `yaml:"paths" toml:"paths" envconfig:"PATHS"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging" envconfig:"LOGGING"`
	Processing ProcessingConfig `yaml:"processing" toml:"processing" envconfig:"PROCESSING"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" toml:"telemetry" envconfig:"TELEMETRY"`
}

// PathsConfig contains file system locations. Relative paths are resolved
// against BaseDir, which defaults to the executable directory.
type PathsConfig struct {
	BaseDir     string `yaml:"base_dir" toml:"base_dir" envconfig:"BASE_DIR"`
	InputDir    string `yaml:"input_dir" toml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	ReportsDir  string `yaml:"reports_dir" toml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir     string `yaml:"logs_dir" toml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
	ResultsFile string `yaml:"results_file" toml:"results_file" envconfig:"RESULTS_FILE" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" toml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" toml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output      string `yaml:"output" toml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" toml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" toml:"development" envconfig:"DEVELOPMENT"`
}

// ProcessingConfig controls the per-file workers
type ProcessingConfig struct {
	// Workers caps the number of concurrently scheduled files; 0 means one
	// goroutine per file. Extraction itself is always serialised.
	Workers int `yaml:"workers" toml:"workers" envconfig:"WORKERS" validate:"gte=0"`
}

// TelemetryConfig contains OpenTelemetry configuration
type TelemetryConfig struct {
	Environment   string `yaml:"environment" toml:"environment" envconfig:"ENVIRONMENT"`
	TraceExporter string `yaml:"trace_exporter" toml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	MetricsFile   string `yaml:"metrics_file" toml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load loads configuration from defaults, the first config file found,
// a .env file and environment variables, in increasing precedence.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom is Load with an explicit config file; an empty path skips the file.
func LoadFrom(configFile string) (*Config, error) {
	// A missing .env is the normal case
	_ = godotenv.Load()

	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("file", configFile)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays a YAML or TOML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file format: %s", filePath)
	}
}

// normalize lower-cases enumerated values so validation is case-insensitive
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
	c.Telemetry.TraceExporter = strings.ToLower(strings.TrimSpace(c.Telemetry.TraceExporter))
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s=%v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return apperrors.NewConfigError("config validation failed", err).
				WithContext("fields", strings.Join(fields, ", "))
		}
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// ResolvePaths resolves the configured paths against the executable directory
func (c *Config) ResolvePaths() (*Paths, error) {
	baseDir := c.Paths.BaseDir
	if baseDir == "" {
		exeDir, err := executableDir()
		if err != nil {
			return nil, apperrors.NewConfigError("failed to resolve paths", err)
		}
		baseDir = exeDir
	}
	return NewPaths(baseDir, c.Paths, c.Logging), nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	for _, location := range configFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:    DefaultInputDir,
			ReportsDir:  DefaultReportsDir,
			LogsDir:     DefaultLogsDir,
			ResultsFile: DefaultResultsFile,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Processing: ProcessingConfig{
			Workers: 0,
		},
		Telemetry: TelemetryConfig{
			Environment:   "production",
			TraceExporter: TraceExporterNone,
		},
	}
}
