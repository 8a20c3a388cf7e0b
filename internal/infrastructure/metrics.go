package infrastructure

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics holds the Prometheus counters of the batch pipeline.
type PipelineMetrics struct {
	// Source file scanning
	FilesScanned *prometheus.CounterVec
	FilesSkipped *prometheus.CounterVec

	// Batch matching
	RowsMatched *prometheus.CounterVec

	// Record building and persistence
	CalculationsBuilt  prometheus.Counter
	CalculationsFailed prometheus.Counter
	RecordsSkipped     prometheus.Counter
	BatchFallbacks     *prometheus.CounterVec
}

var (
	pipelineMetrics     *PipelineMetrics
	pipelineMetricsOnce sync.Once
)

// Metrics returns the process-wide pipeline metrics, registering them on the
// default Prometheus registry on first use.
func Metrics() *PipelineMetrics {
	pipelineMetricsOnce.Do(func() {
		pipelineMetrics = newPipelineMetrics()
		prometheus.MustRegister(
			pipelineMetrics.FilesScanned,
			pipelineMetrics.FilesSkipped,
			pipelineMetrics.RowsMatched,
			pipelineMetrics.CalculationsBuilt,
			pipelineMetrics.CalculationsFailed,
			pipelineMetrics.RecordsSkipped,
			pipelineMetrics.BatchFallbacks,
		)
	})
	return pipelineMetrics
}

func newPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{
		FilesScanned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transparency_files_scanned_total",
				Help: "Source extract files read and parsed per category",
			},
			[]string{"category"},
		),
		FilesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transparency_files_skipped_total",
				Help: "Unreadable or corrupt source files skipped per category",
			},
			[]string{"category"},
		),
		RowsMatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transparency_rows_matched_total",
				Help: "Raw rows matched to worklist identifiers per category",
			},
			[]string{"category"},
		),
		CalculationsBuilt: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transparency_calculations_built_total",
				Help: "Transparency calculations built and persisted",
			},
		),
		CalculationsFailed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transparency_calculations_failed_total",
				Help: "Calculations that failed to persist",
			},
		),
		RecordsSkipped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transparency_records_skipped_total",
				Help: "Matched rows skipped for failing row validation",
			},
		),
		BatchFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transparency_batch_fallbacks_total",
				Help: "Whole-category batch extractions that fell back to per-identifier matching",
			},
			[]string{"category"},
		),
	}
}
