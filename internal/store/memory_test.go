package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func testCalculation(isin string) *domain.TransparencyCalculation {
	now := time.Now().UTC()
	return &domain.TransparencyCalculation{
		ID:           uuid.NewString(),
		ISIN:         isin,
		TechRecordID: "tech-1",
		Category:     domain.CategoryDebt,
		SourceFile:   "FULNCR_20250301_D_1of1_fitrs.csv",
		RawPayload:   domain.Record{"TechRcrdId": "tech-1", "ISIN": isin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testThreshold(calculationID string) domain.Threshold {
	amount := 650000.0
	return domain.Threshold{
		ID:            uuid.NewString(),
		CalculationID: calculationID,
		Kind:          domain.ThresholdPreTradeLIS,
		AmountValue:   &amount,
		Metadata:      map[string]string{"source_field": "PreTradLrgInScaleThrshld_Amt"},
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	calc := testCalculation("XS001")
	threshold := testThreshold(calc.ID)
	require.NoError(t, s.Create(ctx, calc, []domain.Threshold{threshold}))

	calcs, err := s.GetByIdentifier(ctx, "XS001")
	require.NoError(t, err)
	require.Len(t, calcs, 1)
	assert.Equal(t, calc.ID, calcs[0].ID)
	assert.Len(t, s.Thresholds(calc.ID), 1)

	calcs, err = s.GetByIdentifier(ctx, "XS999")
	require.NoError(t, err)
	assert.Empty(t, calcs)
}

func TestMemoryStore_MultipleCalculationsPerIdentifier(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := testCalculation("XS001")
	second := testCalculation("XS001")
	require.NoError(t, s.Create(ctx, first, nil))
	require.NoError(t, s.Create(ctx, second, nil))

	calcs, err := s.GetByIdentifier(ctx, "XS001")
	require.NoError(t, err)
	require.Len(t, calcs, 2)
	assert.Equal(t, first.ID, calcs[0].ID)
	assert.Equal(t, second.ID, calcs[1].ID)
}

func TestMemoryStore_CreateRejectsInvalid(t *testing.T) {
	s := NewMemoryStore()

	calc := testCalculation("XS001")
	calc.RawPayload = nil
	err := s.Create(context.Background(), calc, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	assert.Zero(t, s.Len())
}

// All-or-nothing: a foreign threshold rejects the whole create.
func TestMemoryStore_CreateAtomic(t *testing.T) {
	s := NewMemoryStore()

	calc := testCalculation("XS001")
	foreign := testThreshold("some-other-calculation")
	err := s.Create(context.Background(), calc, []domain.Threshold{foreign})
	require.Error(t, err)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Thresholds(calc.ID))
}

func TestMemoryStore_DeleteCascades(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	calc := testCalculation("XS001")
	require.NoError(t, s.Create(ctx, calc, []domain.Threshold{testThreshold(calc.ID)}))

	require.NoError(t, s.Delete(ctx, calc.ID))
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Thresholds(calc.ID))

	err := s.Delete(ctx, calc.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

// The stored payload is a copy; mutating the caller's record afterwards must
// not leak into the store.
func TestMemoryStore_PayloadIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	calc := testCalculation("XS001")
	require.NoError(t, s.Create(ctx, calc, nil))
	calc.RawPayload["ISIN"] = "mutated"

	calcs, err := s.GetByIdentifier(ctx, "XS001")
	require.NoError(t, err)
	assert.Equal(t, "XS001", calcs[0].RawPayload["ISIN"])
}

// Isolation holds on the way out too: mutating a returned payload must not
// corrupt the stored copy.
func TestMemoryStore_ReturnedPayloadIsACopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	calc := testCalculation("XS001")
	require.NoError(t, s.Create(ctx, calc, nil))

	calcs, err := s.GetByIdentifier(ctx, "XS001")
	require.NoError(t, err)
	calcs[0].RawPayload["ISIN"] = "mutated"

	all := s.Calculations()
	require.Len(t, all, 1)
	assert.Equal(t, "XS001", all[0].RawPayload["ISIN"])

	all[0].RawPayload["ISIN"] = "mutated again"
	calcs, err = s.GetByIdentifier(ctx, "XS001")
	require.NoError(t, err)
	assert.Equal(t, "XS001", calcs[0].RawPayload["ISIN"])
}
