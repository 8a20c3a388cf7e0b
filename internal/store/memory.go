package store

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// MemoryStore is an in-memory TransparencyStore used by tests and
// database-less runs. It honors the same atomicity and cascade semantics as
// the Postgres store.
type MemoryStore struct {
	mu           sync.RWMutex
	calculations map[string]domain.TransparencyCalculation
	thresholds   map[string][]domain.Threshold // keyed by calculation id
	order        []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		calculations: make(map[string]domain.TransparencyCalculation),
		thresholds:   make(map[string][]domain.Threshold),
	}
}

// Create stores the calculation and its thresholds, all or nothing.
func (s *MemoryStore) Create(_ context.Context, calc *domain.TransparencyCalculation, thresholds []domain.Threshold) error {
	if err := calc.Validate(); err != nil {
		return apperrors.NewStorageError("invalid calculation", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.calculations[calc.ID]; exists {
		return apperrors.NewStorageError(fmt.Sprintf("duplicate calculation %s", calc.ID), nil)
	}
	for _, threshold := range thresholds {
		if threshold.CalculationID != calc.ID {
			return apperrors.NewStorageError(
				fmt.Sprintf("threshold %s does not belong to calculation %s", threshold.ID, calc.ID), nil)
		}
	}

	stored := *calc
	stored.RawPayload = calc.RawPayload.Clone()
	s.calculations[calc.ID] = stored
	s.thresholds[calc.ID] = append([]domain.Threshold(nil), thresholds...)
	s.order = append(s.order, calc.ID)
	return nil
}

// GetByIdentifier returns every stored calculation for the identifier in
// insertion order.
func (s *MemoryStore) GetByIdentifier(_ context.Context, identifier string) ([]domain.TransparencyCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var calcs []domain.TransparencyCalculation
	for _, id := range s.order {
		if calc, ok := s.calculations[id]; ok && calc.ISIN == identifier {
			calc.RawPayload = calc.RawPayload.Clone()
			calcs = append(calcs, calc)
		}
	}
	return calcs, nil
}

// Delete removes a calculation and cascades to its thresholds.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calculations[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("calculation %s", id))
	}
	delete(s.calculations, id)
	delete(s.thresholds, id)
	return nil
}

// Thresholds returns the stored thresholds of a calculation, for assertions.
func (s *MemoryStore) Thresholds(calculationID string) []domain.Threshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Threshold(nil), s.thresholds[calculationID]...)
}

// Calculations returns every stored calculation in insertion order.
func (s *MemoryStore) Calculations() []domain.TransparencyCalculation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	calcs := make([]domain.TransparencyCalculation, 0, len(s.order))
	for _, id := range s.order {
		if calc, ok := s.calculations[id]; ok {
			calc.RawPayload = calc.RawPayload.Clone()
			calcs = append(calcs, calc)
		}
	}
	return calcs
}

// Len returns the number of stored calculations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.calculations)
}
