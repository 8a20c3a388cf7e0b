package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func sampleCalculation() domain.TransparencyCalculation {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	liquid := true
	txs := int64(420)
	vol := 1234567.5

	return domain.TransparencyCalculation{
		ID:                "calc-1",
		ISIN:              "SE0000108656",
		TechRecordID:      "1001",
		FromDate:          &from,
		ToDate:            &to,
		Liquidity:         &liquid,
		TotalTransactions: &txs,
		TotalVolume:       &vol,
		Category:          domain.CategoryEquity,
		SourceFile:        "FULECR_20250101_E_1of1_test.csv",
	}
}

func TestCSVWriter_WriteCalculations(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir)

	path, err := writer.WriteCalculations("calculations.csv", []domain.TransparencyCalculation{sampleCalculation()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calculations.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "expected UTF-8 BOM prefix")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(calculationHeaders, ","), lines[0])
	assert.Equal(t, "calc-1,SE0000108656,1001,E,2025-01-01,2025-12-31,true,420,1234567.50,FULECR_20250101_E_1of1_test.csv", lines[1])
}

func TestCSVWriter_WriteCalculations_NilOptionalsStayEmpty(t *testing.T) {
	calc := sampleCalculation()
	calc.Liquidity = nil
	calc.TotalTransactions = nil
	calc.TotalVolume = nil
	calc.FromDate = nil
	calc.ToDate = nil

	writer := NewCSVWriter(t.TempDir())
	path, err := writer.WriteCalculations("calculations.csv", []domain.TransparencyCalculation{calc})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "calc-1,SE0000108656,1001,E,,,,,,FULECR_20250101_E_1of1_test.csv", lines[1])
}

func TestCSVWriter_Append(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir)

	_, err := writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
	})
	require.NoError(t, err)

	_, err = writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"3", "4"}},
		Append:  true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Appending must not repeat the header row.
	assert.Equal(t, []string{"a,b", "1,2", "3,4"}, lines)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "", formatFloatPtr(nil))
	assert.Equal(t, "", formatIntPtr(nil))
	assert.Equal(t, "", formatBoolPtr(nil))

	f := 13.4
	assert.Equal(t, "13.40", formatFloatPtr(&f))

	n := int64(7)
	assert.Equal(t, "7", formatIntPtr(&n))

	b := false
	assert.Equal(t, "false", formatBoolPtr(&b))
}
