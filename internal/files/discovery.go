package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// FileInfo represents information about a discovered extract file
type FileInfo struct {
	Path       string
	Name       string
	Size       int64
	ModTime    time.Time
	Descriptor *Descriptor
}

// Discovery provides extract file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindCategoryFiles returns every extract file in dir belonging to the given
// category, optionally restricted to one file family. Results are sorted in
// ascending lexicographic name order; consumers rely on this for keep-last
// deduplication.
func (d *Discovery) FindCategoryFiles(dir string, category domain.Category, family domain.FileFamily) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		desc, err := ParseName(name)
		if err != nil {
			// Directories hold extracts of every category plus stray
			// downloads; non-matching names are simply not candidates.
			continue
		}
		if !desc.Matches(category, family) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Warn("skipping unstatable file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}

		files = append(files, FileInfo{
			Path:       filepath.Join(fullPath, name),
			Name:       name,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			Descriptor: desc,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
