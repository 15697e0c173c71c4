package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "crimedata/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// resolve joins relative directories onto the base path
func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

// ListFiles returns every entry of dir that is not a directory, ordered by
// name. No filtering by extension is done: callers decide which files they
// understand.
func (d *Discovery) ListFiles(dir string) ([]FileInfo, error) {
	return d.list(dir, func(string) bool { return true })
}

// FindExcelFiles finds all .xlsx workbooks in the specified directory
func (d *Discovery) FindExcelFiles(dir string) ([]FileInfo, error) {
	return d.list(dir, func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".xlsx")
	})
}

func (d *Discovery) list(dir string, keep func(name string) bool) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, apperrors.NewFileSystemError("read directory", err).WithContext("path", fullPath)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !keep(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
