package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/pkg/dbmetrics"
	"github.com/foyer-bassa/FB-ReservationService/pkg/psqlbuilder"
)

var (
	// ErrPaymentNotFound is returned when no payment matches.
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrBuildQuery is returned when building the SQL fails.
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails.
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)

var paymentColumns = []string{
	"id",
	"reservation_id",
	"amount",
	"paid_at",
	"method",
	"justificatif_url",
	"created_at",
}

// Repository persists payment records.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository wires the repository over the (possibly metric-wrapped) DB.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a payment record.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("reservation_id", "amount", "paid_at", "method", "justificatif_url").
		Values(p.ReservationID, p.Amount, p.PaidAt, p.Method, p.JustificatifURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	return p, nil
}

// GetByID fetches one payment.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}
	return p, nil
}

// GetByReservationID lists payments recorded against a reservation.
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("paid_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByReservationID - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - rows error: %v", ErrScanRow, err)
	}
	return payments, nil
}

// SetJustificatif attaches the uploaded proof-of-payment document URL.
func (r *Repository) SetJustificatif(ctx context.Context, id int64, url string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("justificatif_url", url).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetJustificatif - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetJustificatif - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetJustificatif - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// SumInPeriod totals payments whose payment date falls inside [from, to].
// Feeds the dashboard revenue figure.
func (r *Repository) SumInPeriod(ctx context.Context, from, to time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.GtOrEq{"paid_at": from}).
		Where(squirrel.LtOrEq{"paid_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumInPeriod - scan sum: %v", ErrScanRow, err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var paidAt, createdAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.ReservationID,
		&p.Amount,
		&paidAt,
		&p.Method,
		&p.JustificatifURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.PaidAt = paidAt.Time
	p.CreatedAt = createdAt.Time
	return &p, nil
}
