package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	apperrors "github.com/RobiinJonsson/MarketDataAPI-sub002/internal/errors"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// schema creates the two tables. The thresholds foreign key cascades so a
// calculation delete always removes its owned thresholds.
const schema = `
CREATE TABLE IF NOT EXISTS transparency_calculations (
	id                 UUID PRIMARY KEY,
	instrument_ref_id  TEXT,
	isin               TEXT NOT NULL,
	tech_record_id     TEXT NOT NULL,
	from_date          DATE,
	to_date            DATE,
	liquidity          BOOLEAN,
	total_transactions BIGINT,
	total_volume       DOUBLE PRECISION,
	category           CHAR(1) NOT NULL,
	source_file        TEXT NOT NULL DEFAULT '',
	raw_payload        JSONB NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transparency_calculations_isin
	ON transparency_calculations (isin);

CREATE TABLE IF NOT EXISTS thresholds (
	id             UUID PRIMARY KEY,
	calculation_id UUID NOT NULL REFERENCES transparency_calculations (id) ON DELETE CASCADE,
	kind           TEXT NOT NULL,
	amount_value   DOUBLE PRECISION,
	number_value   DOUBLE PRECISION,
	metadata       JSONB
);

CREATE INDEX IF NOT EXISTS idx_thresholds_calculation_id
	ON thresholds (calculation_id);
`

// PostgresStore implements TransparencyStore on PostgreSQL.
type PostgresStore struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgresStore creates a store over an open connection pool.
func NewPostgresStore(db *sqlx.DB, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, timeout: timeout}
}

// EnsureSchema creates the tables and indexes when they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return apperrors.NewStorageError("failed to create schema", err)
	}
	return nil
}

// Create persists the calculation and its thresholds in one transaction.
func (s *PostgresStore) Create(ctx context.Context, calc *domain.TransparencyCalculation, thresholds []domain.Threshold) error {
	if err := calc.Validate(); err != nil {
		return apperrors.NewStorageError("invalid calculation", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payloadJSON, err := json.Marshal(calc.RawPayload)
	if err != nil {
		return apperrors.NewStorageError("failed to marshal raw payload", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transparency_calculations (
			id, instrument_ref_id, isin, tech_record_id, from_date, to_date,
			liquidity, total_transactions, total_volume, category,
			source_file, raw_payload, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		calc.ID, calc.InstrumentRefID, calc.ISIN, calc.TechRecordID,
		calc.FromDate, calc.ToDate, calc.Liquidity, calc.TotalTransactions,
		calc.TotalVolume, string(calc.Category), calc.SourceFile, payloadJSON,
		calc.CreatedAt, calc.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.NewStorageError(fmt.Sprintf("duplicate calculation %s", calc.ID), err)
		}
		return apperrors.NewStorageError("failed to insert calculation", err)
	}

	for _, threshold := range thresholds {
		metadataJSON, err := json.Marshal(threshold.Metadata)
		if err != nil {
			return apperrors.NewStorageError("failed to marshal threshold metadata", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO thresholds (id, calculation_id, kind, amount_value, number_value, metadata)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			threshold.ID, threshold.CalculationID, string(threshold.Kind),
			threshold.AmountValue, threshold.NumberValue, metadataJSON)
		if err != nil {
			return apperrors.NewStorageError("failed to insert threshold", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

// calcRow is the scan target for calculation selects.
type calcRow struct {
	ID                string          `db:"id"`
	InstrumentRefID   sql.NullString  `db:"instrument_ref_id"`
	ISIN              string          `db:"isin"`
	TechRecordID      string          `db:"tech_record_id"`
	FromDate          sql.NullTime    `db:"from_date"`
	ToDate            sql.NullTime    `db:"to_date"`
	Liquidity         sql.NullBool    `db:"liquidity"`
	TotalTransactions sql.NullInt64   `db:"total_transactions"`
	TotalVolume       sql.NullFloat64 `db:"total_volume"`
	Category          string          `db:"category"`
	SourceFile        string          `db:"source_file"`
	RawPayload        []byte          `db:"raw_payload"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// GetByIdentifier returns every calculation stored for the identifier.
func (s *PostgresStore) GetByIdentifier(ctx context.Context, identifier string) ([]domain.TransparencyCalculation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows []calcRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, instrument_ref_id, isin, tech_record_id, from_date, to_date,
		       liquidity, total_transactions, total_volume, category,
		       source_file, raw_payload, created_at, updated_at
		FROM transparency_calculations
		WHERE isin = $1
		ORDER BY created_at, id`, identifier)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query calculations", err)
	}

	calcs := make([]domain.TransparencyCalculation, 0, len(rows))
	for _, row := range rows {
		calc, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, *calc)
	}
	return calcs, nil
}

// Delete removes a calculation; the schema cascades to its thresholds.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM transparency_calculations WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorageError("failed to delete calculation", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewStorageError("failed to read delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("calculation %s", id))
	}
	return nil
}

func (r calcRow) toDomain() (*domain.TransparencyCalculation, error) {
	var payload domain.Record
	if err := json.Unmarshal(r.RawPayload, &payload); err != nil {
		return nil, apperrors.NewStorageError("failed to unmarshal raw payload", err)
	}

	calc := &domain.TransparencyCalculation{
		ID:           r.ID,
		ISIN:         r.ISIN,
		TechRecordID: r.TechRecordID,
		Category:     domain.Category(r.Category),
		SourceFile:   r.SourceFile,
		RawPayload:   payload,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.InstrumentRefID.Valid {
		calc.InstrumentRefID = &r.InstrumentRefID.String
	}
	if r.FromDate.Valid {
		t := r.FromDate.Time
		calc.FromDate = &t
	}
	if r.ToDate.Valid {
		t := r.ToDate.Time
		calc.ToDate = &t
	}
	if r.Liquidity.Valid {
		b := r.Liquidity.Bool
		calc.Liquidity = &b
	}
	if r.TotalTransactions.Valid {
		n := r.TotalTransactions.Int64
		calc.TotalTransactions = &n
	}
	if r.TotalVolume.Valid {
		f := r.TotalVolume.Float64
		calc.TotalVolume = &f
	}
	return calc, nil
}
