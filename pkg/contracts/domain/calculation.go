package domain

import (
	"fmt"
	"time"
)

// TransparencyCalculation is one per-instrument transparency calculation
// derived from a single matched raw row. It is created once and never mutated
// except for its timestamps; deleting it cascades to its thresholds.
type TransparencyCalculation struct {
	ID                string     `json:"id" db:"id" validate:"required,uuid"`
	InstrumentRefID   *string    `json:"instrument_ref_id,omitempty" db:"instrument_ref_id"`
	ISIN              string     `json:"isin" db:"isin" validate:"required,min=1"`
	TechRecordID      string     `json:"tech_record_id" db:"tech_record_id" validate:"required"`
	FromDate          *time.Time `json:"from_date,omitempty" db:"from_date"`
	ToDate            *time.Time `json:"to_date,omitempty" db:"to_date"`
	Liquidity         *bool      `json:"liquidity,omitempty" db:"liquidity"`
	TotalTransactions *int64     `json:"total_transactions,omitempty" db:"total_transactions"`
	TotalVolume       *float64   `json:"total_volume,omitempty" db:"total_volume"`
	Category          Category   `json:"category" db:"category" validate:"required"`
	SourceFile        string     `json:"source_file" db:"source_file"`
	RawPayload        Record     `json:"raw_payload" db:"raw_payload" validate:"required"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// Validate checks the structural invariants of the calculation.
func (c *TransparencyCalculation) Validate() error {
	if c.ISIN == "" {
		return fmt.Errorf("calculation %s: missing identifier", c.ID)
	}
	if c.TechRecordID == "" {
		return fmt.Errorf("calculation %s: missing technical record id", c.ID)
	}
	if c.RawPayload == nil {
		return fmt.Errorf("calculation %s: missing raw payload", c.ID)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("calculation %s: invalid category %q", c.ID, c.Category)
	}
	if c.FromDate != nil && c.ToDate != nil && c.FromDate.After(*c.ToDate) {
		return fmt.Errorf("calculation %s: from_date %s after to_date %s",
			c.ID, c.FromDate.Format("2006-01-02"), c.ToDate.Format("2006-01-02"))
	}
	return nil
}

// ThresholdKind is one of the four logical pre/post-trade threshold kinds.
// Each kind may carry an amount value, a number value, or both.
type ThresholdKind string

const (
	ThresholdPreTradeLIS   ThresholdKind = "pre_trade_lis"
	ThresholdPostTradeLIS  ThresholdKind = "post_trade_lis"
	ThresholdPreTradeSSTI  ThresholdKind = "pre_trade_ssti"
	ThresholdPostTradeSSTI ThresholdKind = "post_trade_ssti"
)

// Threshold is a regulatory trade-size threshold owned by exactly one
// TransparencyCalculation.
type Threshold struct {
	ID            string            `json:"id" db:"id" validate:"required,uuid"`
	CalculationID string            `json:"calculation_id" db:"calculation_id" validate:"required,uuid"`
	Kind          ThresholdKind     `json:"kind" db:"kind" validate:"required"`
	AmountValue   *float64          `json:"amount_value,omitempty" db:"amount_value"`
	NumberValue   *float64          `json:"number_value,omitempty" db:"number_value"`
	Metadata      map[string]string `json:"metadata,omitempty" db:"metadata"`
}

// WorkItem is one entry of a batch worklist: an instrument identifier plus an
// optional classification code whose first character hints the category.
type WorkItem struct {
	Identifier         string `json:"identifier" validate:"required"`
	ClassificationCode string `json:"classification_code,omitempty"`
}
