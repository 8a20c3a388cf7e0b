package store

import (
	"context"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// TransparencyStore is the atomic persistence contract for transparency
// calculations and their owned thresholds.
type TransparencyStore interface {
	// Create persists the calculation and its thresholds in one
	// transaction, all or nothing.
	Create(ctx context.Context, calc *domain.TransparencyCalculation, thresholds []domain.Threshold) error

	// GetByIdentifier returns every calculation stored for the instrument
	// identifier, zero or more.
	GetByIdentifier(ctx context.Context, identifier string) ([]domain.TransparencyCalculation, error)

	// Delete removes a calculation by id, cascading to its thresholds.
	Delete(ctx context.Context, id string) error
}
