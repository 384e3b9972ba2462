package sponsorship

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/pkg/dbmetrics"
	"github.com/foyer-bassa/FB-ReservationService/pkg/psqlbuilder"
)

var (
	// ErrSponsorshipNotFound is returned when no sponsorship matches.
	ErrSponsorshipNotFound = errors.New("sponsorship.repository: sponsorship not found")

	// ErrBuildQuery is returned when building the SQL fails.
	ErrBuildQuery = errors.New("sponsorship.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails.
	ErrExecQuery = errors.New("sponsorship.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("sponsorship.repository: failed to scan row")
)

var sponsorshipColumns = []string{
	"id",
	"sponsor_id",
	"guest_name",
	"guest_contact",
	"status",
	"validated_at",
	"created_at",
}

// Repository persists guest sponsorship requests.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository wires the repository over the (possibly metric-wrapped) DB.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a sponsorship request in pending state.
func (r *Repository) Create(ctx context.Context, s *domain.Sponsorship) (*domain.Sponsorship, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sponsorships").
		Columns("sponsor_id", "guest_name", "guest_contact", "status").
		Values(s.SponsorID, s.GuestName, s.GuestContact, s.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	return s, nil
}

// GetByID fetches one sponsorship.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sponsorshipColumns...).
		From("sponsorships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSponsorship(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSponsorshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sponsorship: %v", ErrScanRow, err)
	}
	return s, nil
}

// List returns sponsorships, optionally scoped to one sponsor.
func (r *Repository) List(ctx context.Context, sponsorID *int64) ([]*domain.Sponsorship, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sponsorshipColumns...).
		From("sponsorships").
		OrderBy("created_at DESC")

	if sponsorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sponsor_id": *sponsorID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sponsorships := make([]*domain.Sponsorship, 0)
	for rows.Next() {
		s, err := scanSponsorship(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		sponsorships = append(sponsorships, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return sponsorships, nil
}

// UpdateStatus records the manager decision and stamps validated_at.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SponsorshipStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sponsorships").
		Set("status", status).
		Set("validated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSponsorshipNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSponsorship(row rowScanner) (*domain.Sponsorship, error) {
	var s domain.Sponsorship
	var validatedAt, createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SponsorID,
		&s.GuestName,
		&s.GuestContact,
		&s.Status,
		&validatedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if validatedAt.Valid {
		s.ValidatedAt = &validatedAt.Time
	}
	s.CreatedAt = createdAt.Time
	return &s, nil
}
