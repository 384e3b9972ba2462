package equipment

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
	// ErrEquipmentNotFound is returned when no equipment matches.
	ErrEquipmentNotFound = errors.New("equipment.repository: equipment not found")

	// ErrBuildQuery is returned when building the SQL fails.
	ErrBuildQuery = errors.New("equipment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL fails.
	ErrExecQuery = errors.New("equipment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("equipment.repository: failed to scan row")
)

// Repository reads the equipment catalog and persists per-reservation
// equipment selections.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository wires the repository over the (possibly metric-wrapped) DB.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns the full equipment catalog.
func (r *Repository) List(ctx context.Context) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "total_quantity", "description").
		From("equipment").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		var item domain.Equipment
		if err := rows.Scan(&item.ID, &item.Name, &item.TotalQuantity, &item.Description); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return items, nil
}

// Exists reports whether an equipment ID is part of the catalog.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// SaveSelections stores the equipment attached to a reservation request.
// Selections only feed the quote; there is no inventory locking.
func (r *Repository) SaveSelections(ctx context.Context, reservationID int64, selections []domain.EquipmentSelection) error {
	if len(selections) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_equipment").
		Columns("reservation_id", "equipment_id", "quantity")
	for _, sel := range selections {
		insertBuilder = insertBuilder.Values(reservationID, sel.EquipmentID, sel.Quantity)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveSelections - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveSelections - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetSelections returns the equipment attached to a reservation.
func (r *Repository) GetSelections(ctx context.Context, reservationID int64) ([]domain.EquipmentSelection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("equipment_id", "quantity").
		From("reservation_equipment").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("equipment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSelections - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSelections - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	selections := make([]domain.EquipmentSelection, 0)
	for rows.Next() {
		var sel domain.EquipmentSelection
		if err := rows.Scan(&sel.EquipmentID, &sel.Quantity); err != nil {
			return nil, fmt.Errorf("%w: GetSelections - scan row: %v", ErrScanRow, err)
		}
		selections = append(selections, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSelections - rows error: %v", ErrScanRow, err)
	}
	return selections, nil
}
