package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/transparency"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// ExcelWriter exports a batch run to an Excel workbook with a summary sheet
// and a calculations sheet.
type ExcelWriter struct {
	outputDir string
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(outputDir string) *ExcelWriter {
	return &ExcelWriter{outputDir: outputDir}
}

// WriteRunReport writes the workbook and returns the written path.
func (w *ExcelWriter) WriteRunReport(fileName string, result *transparency.RunResult, calcs []domain.TransparencyCalculation) (string, error) {
	fullPath := filepath.Join(w.outputDir, fileName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Worklist identifiers", result.Identifiers},
		{"Rows matched", result.Matched},
		{"Calculations persisted", result.Succeeded},
		{"Rows skipped", result.Skipped},
		{"Failures", result.Failed},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	const calcSheet = "Calculations"
	if _, err := f.NewSheet(calcSheet); err != nil {
		return "", fmt.Errorf("failed to create calculations sheet: %w", err)
	}

	header := make([]interface{}, len(calculationHeaders))
	for i, h := range calculationHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(calcSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write calculations header: %w", err)
	}

	for i, calc := range calcs {
		values := calculationRow(calc)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(calcSheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write calculation row: %w", err)
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("wrote run report workbook",
		slog.String("path", fullPath),
		slog.Int("calculations", len(calcs)))
	return fullPath, nil
}
