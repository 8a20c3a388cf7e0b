package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/transparency"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func TestExcelWriter_WriteRunReport(t *testing.T) {
	dir := t.TempDir()
	writer := NewExcelWriter(dir)

	result := &transparency.RunResult{
		Identifiers: 3,
		Matched:     2,
		Succeeded:   2,
		Skipped:     1,
		Failed:      0,
	}

	path, err := writer.WriteRunReport("report.xlsx", result, []domain.TransparencyCalculation{sampleCalculation()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Calculations"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"Worklist identifiers", "3"}, rows[1])
	assert.Equal(t, []string{"Calculations persisted", "2"}, rows[3])

	calcRows, err := f.GetRows("Calculations")
	require.NoError(t, err)
	require.Len(t, calcRows, 2)
	assert.Equal(t, calculationHeaders, calcRows[0])
	assert.Equal(t, "SE0000108656", calcRows[1][1])
	assert.Equal(t, "E", calcRows[1][3])
}

func TestExcelWriter_WriteRunReport_NoCalculations(t *testing.T) {
	writer := NewExcelWriter(t.TempDir())

	path, err := writer.WriteRunReport("empty.xlsx", &transparency.RunResult{}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	calcRows, err := f.GetRows("Calculations")
	require.NoError(t, err)
	require.Len(t, calcRows, 1, "header only")
}
