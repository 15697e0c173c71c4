package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	BaseDir    string
	InputDir   string
	ReportsDir string
	LogsDir    string

	// Well-known files
	ResultsCSV string
	LogFile    string
}

// GetPaths returns the default application paths relative to the executable location
func GetPaths() (*Paths, error) {
	exeDir, err := executableDir()
	if err != nil {
		return nil, err
	}
	return NewPaths(exeDir, Default().Paths, Default().Logging), nil
}

// NewPaths resolves the configured locations against baseDir.
// Absolute configured paths are used as-is.
func NewPaths(baseDir string, cfg PathsConfig, logging LoggingConfig) *Paths {
	if cfg.BaseDir != "" {
		baseDir = cfg.BaseDir
	}

	p := &Paths{BaseDir: baseDir}
	p.InputDir = p.Resolve(cfg.InputDir)
	p.ReportsDir = p.Resolve(cfg.ReportsDir)
	p.LogsDir = p.Resolve(cfg.LogsDir)

	p.ResultsCSV = cfg.ResultsFile
	if !filepath.IsAbs(p.ResultsCSV) {
		p.ResultsCSV = p.GetReportPath(p.ResultsCSV)
	}

	p.LogFile = logging.FilePath
	if p.LogFile != "" && !filepath.IsAbs(p.LogFile) {
		p.LogFile = p.GetLogPath(p.LogFile)
	}

	return p
}

// executableDir returns the directory containing the running binary
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return filepath.Dir(exe), nil
}

// Resolve returns path joined to the base directory unless it is absolute
func (p *Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.BaseDir, path)
}

// EnsureDirectories creates the output directories if they don't exist.
// The input directory is never created: a missing input is reported instead.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.ReportsDir,
		p.LogsDir,
		filepath.Dir(p.ResultsCSV),
	}

	for _, dir := range directories {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetInputPath returns the path of a file in the input directory
func (p *Paths) GetInputPath(filename string) string {
	return filepath.Join(p.InputDir, filename)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("input", p.InputDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("files",
			slog.String("results_csv", p.ResultsCSV),
			slog.String("log_file", p.LogFile),
		))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
