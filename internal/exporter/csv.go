package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	outputDir string
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// calculationHeaders are the exported calculation columns, in order.
var calculationHeaders = []string{
	"id", "isin", "tech_record_id", "category", "from_date", "to_date",
	"liquidity", "total_transactions", "total_volume", "source_file",
}

// WriteCalculations exports calculations to a CSV file under the output
// directory and returns the written path.
func (w *CSVWriter) WriteCalculations(fileName string, calcs []domain.TransparencyCalculation) (string, error) {
	records := make([][]string, 0, len(calcs))
	for _, calc := range calcs {
		records = append(records, calculationRow(calc))
	}

	path, err := w.WriteCSV(fileName, WriteOptions{
		Headers:   calculationHeaders,
		Records:   records,
		BOMPrefix: true,
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteCSV writes data to a CSV file with the given options and returns the
// full path written.
func (w *CSVWriter) WriteCSV(fileName string, options WriteOptions) (string, error) {
	fullPath := filepath.Join(w.outputDir, fileName)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(fullPath, flags, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix && !options.Append {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	if len(options.Headers) > 0 && !options.Append {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return fullPath, nil
}

func calculationRow(calc domain.TransparencyCalculation) []string {
	return []string{
		calc.ID,
		calc.ISIN,
		calc.TechRecordID,
		string(calc.Category),
		formatDate(calc.FromDate),
		formatDate(calc.ToDate),
		formatBoolPtr(calc.Liquidity),
		formatIntPtr(calc.TotalTransactions),
		formatFloatPtr(calc.TotalVolume),
		calc.SourceFile,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
