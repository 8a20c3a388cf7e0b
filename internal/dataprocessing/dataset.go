package dataprocessing

import (
	"log/slog"

	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/files"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/infrastructure"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// OriginFileColumn is the derived column naming the extract file a row came
// from. It is attached during consolidation and feeds calculation provenance.
const OriginFileColumn = "SourceFile"

// Dataset is the consolidated in-memory table for one category: the union of
// every matching extract file, deduplicated by primary identifier keep-last
// in lexicographic filename order. It is built per run, read-only once built,
// and discarded when the category's batch completes.
type Dataset struct {
	Category domain.Category
	Files    []string
	Rows     []domain.Record
}

// Empty reports whether no rows were consolidated.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// DatasetBuilder loads every extract file of one category into a Dataset.
type DatasetBuilder struct {
	discovery *files.Discovery
	dir       string
}

// NewDatasetBuilder creates a builder scanning the given source directory.
func NewDatasetBuilder(dir string) *DatasetBuilder {
	return &DatasetBuilder{
		discovery: files.NewDiscovery(dir),
		dir:       dir,
	}
}

// Build consolidates every file of the category, optionally restricted to one
// file family. A single unreadable or corrupt file is logged and skipped;
// only a failure to enumerate the directory itself aborts the build. Each
// matching file is read exactly once per call.
func (b *DatasetBuilder) Build(category domain.Category, family domain.FileFamily) (*Dataset, error) {
	found, err := b.discovery.FindCategoryFiles(b.dir, category, family)
	if err != nil {
		return nil, apperrors.NewFileAccessError("failed to enumerate source directory", err).
			WithContext("dir", b.dir).
			WithContext("category", string(category))
	}

	metrics := infrastructure.Metrics()
	dataset := &Dataset{Category: category}

	// Position of each identifier already consolidated, for keep-last
	// deduplication. Discovery returns ascending name order, so a later
	// occurrence replaces an earlier one in place.
	byIdentifier := make(map[string]int)

	for _, file := range found {
		rows, err := ParseCSVFile(file.Path)
		if err != nil {
			metrics.FilesSkipped.WithLabelValues(string(category)).Inc()
			slog.Warn("skipping unreadable source file",
				slog.String("file", file.Name),
				slog.String("category", string(category)),
				slog.String("error", err.Error()))
			continue
		}

		metrics.FilesScanned.WithLabelValues(string(category)).Inc()
		dataset.Files = append(dataset.Files, file.Name)

		for _, row := range rows {
			row[OriginFileColumn] = file.Name

			id, ok := rowIdentifier(row)
			if !ok {
				dataset.Rows = append(dataset.Rows, row)
				continue
			}
			if pos, dup := byIdentifier[id]; dup {
				dataset.Rows[pos] = row
				continue
			}
			byIdentifier[id] = len(dataset.Rows)
			dataset.Rows = append(dataset.Rows, row)
		}
	}

	slog.Info("consolidated category dataset",
		slog.String("category", string(category)),
		slog.Int("files", len(dataset.Files)),
		slog.Int("rows", len(dataset.Rows)))

	return dataset, nil
}

// rowIdentifier returns the primary identifier of a row, probing both field
// names the file families use for the same concept.
func rowIdentifier(r domain.Record) (string, bool) {
	if id, ok := r.Value(domain.FieldID); ok {
		return id, true
	}
	if id, ok := r.Value(domain.FieldISIN); ok {
		return id, true
	}
	return "", false
}
