package transparency

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/classification"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/dataprocessing"
	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// Provenance carries where a matched row came from. Category, when valid, is
// an explicit override that beats filename and heuristic classification.
type Provenance struct {
	Family   domain.FileFamily
	Category domain.Category
	FileName string
}

// RecordBuilder validates and transforms one matched raw row into a
// TransparencyCalculation plus its owned thresholds. Construction only; it
// never persists.
type RecordBuilder struct {
	liquidity *LiquidityEngine
}

// NewRecordBuilder creates a builder using the given liquidity thresholds.
func NewRecordBuilder(cfg LiquidityConfig) *RecordBuilder {
	return &RecordBuilder{liquidity: NewLiquidityEngine(cfg)}
}

// Build constructs the calculation for one raw row. It returns a validation
// error when the row lacks the minimum identifying fields; callers skip the
// row and continue the batch. Scalar coercion failures degrade to null with a
// warning, never an error, and the complete original row is retained verbatim
// as the opaque payload.
func (b *RecordBuilder) Build(row domain.Record, prov Provenance) (*domain.TransparencyCalculation, []domain.Threshold, error) {
	techID, ok := row.Value(domain.FieldTechRecordID)
	if !ok {
		return nil, nil, apperrors.NewValidationError("row missing technical record id").
			WithContext("file", prov.FileName)
	}

	identifier, ok := row.Value(domain.FieldID)
	if !ok {
		identifier, ok = row.Value(domain.FieldISIN)
	}
	if !ok {
		return nil, nil, apperrors.NewValidationError("row missing instrument identifier").
			WithContext("file", prov.FileName).
			WithContext("tech_record_id", techID)
	}

	category := prov.Category
	if !category.Valid() {
		category = classification.Classify(prov.FileName, row)
	}

	fromDate := b.coerceDate(row, domain.FieldFromDate, identifier)
	toDate := b.coerceDate(row, domain.FieldToDate, identifier)
	if fromDate != nil && toDate != nil && fromDate.After(*toDate) {
		return nil, nil, apperrors.NewValidationError("from date after to date").
			WithContext("identifier", identifier).
			WithContext("from_date", fromDate.Format("2006-01-02")).
			WithContext("to_date", toDate.Format("2006-01-02"))
	}

	sourceFile := prov.FileName
	if sourceFile == "" {
		sourceFile, _ = row.Value(dataprocessing.OriginFileColumn)
	}

	now := time.Now().UTC()
	calc := &domain.TransparencyCalculation{
		ID:                uuid.NewString(),
		ISIN:              identifier,
		TechRecordID:      techID,
		FromDate:          fromDate,
		ToDate:            toDate,
		Liquidity:         b.liquidity.Infer(row, category),
		TotalTransactions: b.coerceInt(row, domain.FieldTotalTransactions, identifier),
		TotalVolume:       b.coerceFloat(row, domain.FieldTotalVolume, identifier),
		Category:          category,
		SourceFile:        sourceFile,
		RawPayload:        row.Clone(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return calc, ExtractThresholds(row, calc.ID), nil
}

func (b *RecordBuilder) coerceDate(row domain.Record, field, identifier string) *time.Time {
	v, err := row.Date(field)
	if err != nil {
		slog.Warn("coercion failure, degrading to null",
			slog.String("identifier", identifier),
			slog.String("error", err.Error()))
		return nil
	}
	return v
}

func (b *RecordBuilder) coerceInt(row domain.Record, field, identifier string) *int64 {
	v, err := row.Int(field)
	if err != nil {
		slog.Warn("coercion failure, degrading to null",
			slog.String("identifier", identifier),
			slog.String("error", err.Error()))
		return nil
	}
	return v
}

func (b *RecordBuilder) coerceFloat(row domain.Record, field, identifier string) *float64 {
	v, err := row.Float(field)
	if err != nil {
		slog.Warn("coercion failure, degrading to null",
			slog.String("identifier", identifier),
			slog.String("error", err.Error()))
		return nil
	}
	return v
}
