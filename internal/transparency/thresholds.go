package transparency

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// thresholdField binds one recognized raw field to its logical threshold kind
// and value slot.
type thresholdField struct {
	field  string
	kind   domain.ThresholdKind
	amount bool
}

// thresholdFields are the eight recognized threshold source fields: four
// logical kinds, each published as an amount and a number variant.
var thresholdFields = []thresholdField{
	{field: "PreTradLrgInScaleThrshld_Amt", kind: domain.ThresholdPreTradeLIS, amount: true},
	{field: "PreTradLrgInScaleThrshld_Nb", kind: domain.ThresholdPreTradeLIS},
	{field: "PstTradLrgInScaleThrshld_Amt", kind: domain.ThresholdPostTradeLIS, amount: true},
	{field: "PstTradLrgInScaleThrshld_Nb", kind: domain.ThresholdPostTradeLIS},
	{field: "PreTradInstrmSzSpcfcThrshld_Amt", kind: domain.ThresholdPreTradeSSTI, amount: true},
	{field: "PreTradInstrmSzSpcfcThrshld_Nb", kind: domain.ThresholdPreTradeSSTI},
	{field: "PstTradInstrmSzSpcfcThrshld_Amt", kind: domain.ThresholdPostTradeSSTI, amount: true},
	{field: "PstTradInstrmSzSpcfcThrshld_Nb", kind: domain.ThresholdPostTradeSSTI},
}

// ExtractThresholds returns one Threshold per recognized field carrying a
// present value. Empty strings and null/NaN markers count uniformly as
// absent, so a NaN is never silently stored as zero.
func ExtractThresholds(r domain.Record, calculationID string) []domain.Threshold {
	var thresholds []domain.Threshold
	for _, tf := range thresholdFields {
		raw, ok := r.Value(tf.field)
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Warn("unparseable threshold value, treating as absent",
				slog.String("field", tf.field),
				slog.String("value", raw))
			continue
		}

		threshold := domain.Threshold{
			ID:            uuid.NewString(),
			CalculationID: calculationID,
			Kind:          tf.kind,
			Metadata:      map[string]string{"source_field": tf.field},
		}
		if tf.amount {
			threshold.AmountValue = &value
		} else {
			threshold.NumberValue = &value
		}
		thresholds = append(thresholds, threshold)
	}
	return thresholds
}
