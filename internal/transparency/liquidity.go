package transparency

import (
	"log/slog"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// LiquidityConfig carries the trading-activity evidence thresholds used for
// equity liquidity inference. The values are configuration, not constants, so
// the engine stays pure and unit-testable.
type LiquidityConfig struct {
	// MinVolume is the executed volume above which an equity share with no
	// explicit flag is inferred liquid.
	MinVolume float64
	// MinCount is the executed transaction count above which an equity share
	// with no explicit flag is inferred liquid.
	MinCount int64
}

// DefaultLiquidityConfig mirrors the liquid-market criteria for shares:
// one million in daily turnover or 250 transactions.
func DefaultLiquidityConfig() LiquidityConfig {
	return LiquidityConfig{
		MinVolume: 1_000_000,
		MinCount:  250,
	}
}

// LiquidityEngine decides a nullable liquidity flag for one raw row.
type LiquidityEngine struct {
	cfg LiquidityConfig
}

// NewLiquidityEngine creates an engine with the given evidence thresholds.
func NewLiquidityEngine(cfg LiquidityConfig) *LiquidityEngine {
	return &LiquidityEngine{cfg: cfg}
}

// Infer returns the liquidity flag for a row of the given category.
//
// An explicit, parseable Lqdty value always wins. Without one, inference runs
// only for equity shares: the equity extracts are the only family carrying
// trading-activity fields, so for every other category the answer stays nil.
// Absence of evidence is never evidence of illiquidity: the inferred value
// is true or nil, never false.
func (e *LiquidityEngine) Infer(r domain.Record, category domain.Category) *bool {
	if explicit, err := r.Bool(domain.FieldLiquidity); err != nil {
		slog.Warn("unparseable liquidity flag, falling back to inference",
			slog.String("error", err.Error()))
	} else if explicit != nil {
		return explicit
	}

	if category != domain.CategoryEquity {
		return nil
	}

	volume, err := r.Float(domain.FieldTotalVolume)
	if err != nil {
		slog.Warn("unparseable executed volume", slog.String("error", err.Error()))
	}
	if volume != nil && *volume > e.cfg.MinVolume {
		liquid := true
		return &liquid
	}

	count, err := r.Int(domain.FieldTotalTransactions)
	if err != nil {
		slog.Warn("unparseable transaction count", slog.String("error", err.Error()))
	}
	if count != nil && *count > e.cfg.MinCount {
		liquid := true
		return &liquid
	}

	return nil
}
