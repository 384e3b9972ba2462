package devis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/pkg/dbmetrics"
	"github.com/foyer-bassa/FB-ReservationService/pkg/psqlbuilder"
)

var (
	// ErrDevisNotFound is returned when no quote matches.
	ErrDevisNotFound = errors.New("devis.repository: devis not found")

	// ErrBuildQuery is returned when building the SQL fails.
	ErrBuildQuery = errors.New("devis.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails.
	ErrExecQuery = errors.New("devis.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("devis.repository: failed to scan row")
)

// Repository persists quotes. Quotes are write-once: there is no update.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository wires the repository over the (possibly metric-wrapped) DB.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a quote with its JSON fee breakdown.
func (r *Repository) Create(ctx context.Context, d *domain.Devis) (*domain.Devis, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := json.Marshal(d.Details)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal details: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Insert("devis").
		Columns("reservation_id", "total_amount", "details").
		Values(d.ReservationID, d.TotalAmount, details).
		Suffix("RETURNING id, generated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var generatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &generatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.GeneratedAt = generatedAt.Time
	return d, nil
}

// GetByReservationID fetches the quote linked to a reservation.
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Devis, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "reservation_id", "total_amount", "details", "generated_at").
		From("devis").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Devis
	var details []byte
	var generatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.ReservationID,
		&d.TotalAmount,
		&details,
		&generatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDevisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan devis: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(details, &d.Details); err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - unmarshal details: %v", ErrScanRow, err)
	}

	d.GeneratedAt = generatedAt.Time
	return &d, nil
}
