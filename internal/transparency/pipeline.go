package transparency

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/classification"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/dataprocessing"
	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/infrastructure"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/store"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// RunResult holds the partial-result counts of one batch run. A run never
// aborts wholesale; it always accounts for every matched row.
type RunResult struct {
	Identifiers int `json:"identifiers"`
	Matched     int `json:"matched"`
	Succeeded   int `json:"succeeded"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// Pipeline runs a worklist end to end: group by category, consolidate each
// category's files once, batch-match, build and persist. Execution is
// deliberately sequential; per-category grouping is the performance lever
// that turns redundant scans into exactly one scan per category.
type Pipeline struct {
	datasets *dataprocessing.DatasetBuilder
	records  *RecordBuilder
	store    store.TransparencyStore

	// match is the whole-category extraction step, swappable in tests.
	match func(*dataprocessing.Dataset, []string) (map[string][]domain.Record, error)
}

// NewPipeline creates a pipeline scanning sourceDir and persisting to st.
func NewPipeline(sourceDir string, cfg LiquidityConfig, st store.TransparencyStore) *Pipeline {
	return &Pipeline{
		datasets: dataprocessing.NewDatasetBuilder(sourceDir),
		records:  NewRecordBuilder(cfg),
		store:    st,
		match:    dataprocessing.MatchAll,
	}
}

// Run processes the worklist and returns partial-result counts. Failures are
// contained per category: a failed consolidation or batch extraction never
// touches the other categories. Cancellation is honored between categories
// only.
func (p *Pipeline) Run(ctx context.Context, items []domain.WorkItem) (*RunResult, error) {
	result := &RunResult{Identifiers: len(items)}
	groups := classification.GroupByCategory(items)

	categories := make([]domain.Category, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		p.runCategory(ctx, category, groups[category], result)
	}

	slog.Info("batch run complete",
		slog.Int("identifiers", result.Identifiers),
		slog.Int("matched", result.Matched),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))

	return result, nil
}

func (p *Pipeline) runCategory(ctx context.Context, category domain.Category, items []domain.WorkItem, result *RunResult) {
	identifiers := classification.Identifiers(items)

	dataset, err := p.datasets.Build(category, category.Family())
	if err != nil {
		slog.Error("category consolidation failed, skipping category",
			slog.String("category", string(category)),
			slog.String("error", err.Error()))
		result.Failed += len(identifiers)
		return
	}
	if dataset.Empty() {
		slog.Info("no source data for category",
			slog.String("category", string(category)),
			slog.Int("identifiers", len(identifiers)))
		return
	}

	matches, err := p.batchMatch(dataset, identifiers)
	if err != nil {
		// Contained fallback: the slower one-identifier-at-a-time path,
		// scoped to this category only.
		infrastructure.Metrics().BatchFallbacks.WithLabelValues(string(category)).Inc()
		slog.Warn("batch extraction failed, falling back to per-identifier matching",
			slog.String("category", string(category)),
			slog.String("error", err.Error()))

		matches = make(map[string][]domain.Record, len(identifiers))
		for _, id := range identifiers {
			matches[id] = dataprocessing.Match(dataset, id)
		}
	}

	for _, id := range identifiers {
		for _, row := range matches[id] {
			result.Matched++
			p.processRow(ctx, row, category, result)
		}
	}
}

// batchMatch runs the optimized whole-category extraction, converting an
// unexpected panic into a batch error so the caller can fall back.
func (p *Pipeline) batchMatch(dataset *dataprocessing.Dataset, identifiers []string) (matches map[string][]domain.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = apperrors.NewBatchError(fmt.Sprintf("batch extraction panicked: %v", r), nil)
		}
	}()
	return p.match(dataset, identifiers)
}

func (p *Pipeline) processRow(ctx context.Context, row domain.Record, category domain.Category, result *RunResult) {
	metrics := infrastructure.Metrics()

	fileName, _ := row.Value(dataprocessing.OriginFileColumn)
	calc, thresholds, err := p.records.Build(row, Provenance{
		Category: category,
		FileName: fileName,
	})
	if err != nil {
		result.Skipped++
		metrics.RecordsSkipped.Inc()
		slog.Warn("skipping invalid row",
			slog.String("category", string(category)),
			slog.String("file", fileName),
			slog.String("error", err.Error()))
		return
	}

	if err := p.store.Create(ctx, calc, thresholds); err != nil {
		result.Failed++
		metrics.CalculationsFailed.Inc()
		slog.Error("failed to persist calculation",
			slog.String("identifier", calc.ISIN),
			slog.String("error", err.Error()))
		return
	}

	result.Succeeded++
	metrics.CalculationsBuilt.Inc()
}
