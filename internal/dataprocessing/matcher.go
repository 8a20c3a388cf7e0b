package dataprocessing

import (
	"log/slog"

	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/infrastructure"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// MatchAll extracts every row matching the identifier set in one
// set-membership pass over the dataset. Some file families expose the
// identifier under an alternate field name, so both fields are probed and
// results merged per identifier without duplicates. Cost is O(rows) overall,
// not O(identifiers × rows).
func MatchAll(dataset *Dataset, identifiers []string) (map[string][]domain.Record, error) {
	if dataset == nil {
		return nil, apperrors.NewBatchError("nil dataset", nil)
	}

	targets := make(map[string]struct{}, len(identifiers))
	matches := make(map[string][]domain.Record, len(identifiers))
	for _, id := range identifiers {
		targets[id] = struct{}{}
		matches[id] = nil
	}

	matched := 0
	for _, row := range dataset.Rows {
		for _, id := range candidateIdentifiers(row) {
			if _, want := targets[id]; !want {
				continue
			}
			matches[id] = append(matches[id], row)
			matched++
		}
	}

	infrastructure.Metrics().RowsMatched.
		WithLabelValues(string(dataset.Category)).Add(float64(matched))
	slog.Debug("batch match complete",
		slog.String("category", string(dataset.Category)),
		slog.Int("identifiers", len(identifiers)),
		slog.Int("rows_matched", matched))

	return matches, nil
}

// Match extracts the rows for a single identifier with a linear scan. It is
// the slower per-identifier path used when whole-category batch extraction
// fails, and must yield exactly what MatchAll yields for that identifier.
func Match(dataset *Dataset, identifier string) []domain.Record {
	if dataset == nil {
		return nil
	}

	var rows []domain.Record
	for _, row := range dataset.Rows {
		for _, id := range candidateIdentifiers(row) {
			if id == identifier {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows
}

// candidateIdentifiers returns the identifier values a row can be matched
// under, deduplicated so a row carrying the same value in both fields is
// matched once.
func candidateIdentifiers(r domain.Record) []string {
	ids := make([]string, 0, 2)
	if id, ok := r.Value(domain.FieldID); ok {
		ids = append(ids, id)
	}
	if id, ok := r.Value(domain.FieldISIN); ok && (len(ids) == 0 || ids[0] != id) {
		ids = append(ids, id)
	}
	return ids
}
