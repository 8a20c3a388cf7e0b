package transparency

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/shared/testutil"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func TestLiquidityEngine_WarnsOnUnparseableFlag(t *testing.T) {
	logs := testutil.CaptureDefaultLogs(t)

	engine := NewLiquidityEngine(testLiquidityConfig())
	record := domain.Record{domain.FieldLiquidity: "maybe"}

	assert.Nil(t, engine.Infer(record, domain.CategoryDebt))
	assert.True(t, logs.ContainsMessage("unparseable liquidity flag"))
	assert.NotEmpty(t, logs.RecordsAt(slog.LevelWarn))
}

func TestRecordBuilder_WarnsOnUnparseableDate(t *testing.T) {
	logs := testutil.CaptureDefaultLogs(t)

	builder := NewRecordBuilder(testLiquidityConfig())
	row := domain.Record{
		domain.FieldTechRecordID: "42",
		domain.FieldISIN:         "SE0000108656",
		domain.FieldFromDate:     "not-a-date",
	}

	calc, _, err := builder.Build(row, Provenance{Category: domain.CategoryEquity})
	require.NoError(t, err)
	assert.Nil(t, calc.FromDate)
	assert.True(t, logs.ContainsMessage("coercion failure"))
}
