package files

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func TestParseName_Valid(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		family   domain.FileFamily
		category domain.Category
		date     time.Time
		part     int
		total    int
		suffix   string
	}{
		{
			name:     "non-equity debt extract",
			fileName: "FULNCR_20250301_D_1of3_fitrs.csv",
			family:   domain.FamilyNonEquity,
			category: domain.CategoryDebt,
			date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			part:     1,
			total:    3,
			suffix:   "fitrs",
		},
		{
			name:     "equity extract",
			fileName: "FULECR_20250215_E_2of2_fitrs.csv",
			family:   domain.FamilyEquity,
			category: domain.CategoryEquity,
			date:     time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			part:     2,
			total:    2,
			suffix:   "fitrs",
		},
		{
			name:     "swaps extract with numeric suffix",
			fileName: "FULNCR_20241231_S_10of12_batch-01.csv",
			family:   domain.FamilyNonEquity,
			category: domain.CategorySwaps,
			date:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			part:     10,
			total:    12,
			suffix:   "batch-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseName(tt.fileName)
			require.NoError(t, err)
			assert.Equal(t, tt.family, desc.Family)
			assert.Equal(t, tt.category, desc.Category)
			assert.Equal(t, tt.date, desc.Date)
			assert.Equal(t, tt.part, desc.Part)
			assert.Equal(t, tt.total, desc.Total)
			assert.Equal(t, tt.suffix, desc.Suffix)
			assert.Equal(t, tt.fileName, desc.Name)
		})
	}
}

func TestParseName_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
	}{
		{name: "unknown family", fileName: "FULXXX_20250301_D_1of3_fitrs.csv"},
		{name: "unknown category letter", fileName: "FULNCR_20250301_Z_1of3_fitrs.csv"},
		{name: "short date", fileName: "FULNCR_2025031_D_1of3_fitrs.csv"},
		{name: "part after total", fileName: "FULNCR_20250301_D_4of3_fitrs.csv"},
		{name: "zero part", fileName: "FULNCR_20250301_D_0of3_fitrs.csv"},
		{name: "missing suffix", fileName: "FULNCR_20250301_D_1of3.csv"},
		{name: "wrong extension", fileName: "FULNCR_20250301_D_1of3_fitrs.zip"},
		{name: "unrelated file", fileName: "readme.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseName(tt.fileName)
			assert.Error(t, err)
		})
	}
}

func TestDescriptor_Matches(t *testing.T) {
	desc, err := ParseName("FULNCR_20250301_D_1of1_fitrs.csv")
	require.NoError(t, err)

	assert.True(t, desc.Matches(domain.CategoryDebt, ""))
	assert.True(t, desc.Matches(domain.CategoryDebt, domain.FamilyNonEquity))
	assert.False(t, desc.Matches(domain.CategoryDebt, domain.FamilyEquity))
	assert.False(t, desc.Matches(domain.CategoryEquity, ""))
}
