package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/punch"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

const punchColumns = `id, company_id, employee_id, date, slots, created_at, updated_at`

func scanDaySlots(row pgx.Row) (punch.DaySlots, error) {
	var d punch.DaySlots
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.EmployeeID, &d.Date, &d.Slots,
		&d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, day punch.DaySlots) (punch.DaySlots, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_days (id, company_id, employee_id, date, slots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.ID, day.CompanyID, day.EmployeeID, day.Date, day.Slots,
	).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return punch.DaySlots{}, fmt.Errorf("failed to create punch day: %w", err)
	}

	return day, nil
}

// GetByEmployeeAndDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (punch.DaySlots, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + `
		FROM punch_days
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	d, err := scanDaySlots(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.DaySlots{}, punch.ErrDayNotFound
		}
		return punch.DaySlots{}, fmt.Errorf("failed to get punch day: %w", err)
	}

	return d, nil
}

// UpdateSlots implements punch.PunchRepository.
func (r *punchRepositoryImpl) UpdateSlots(ctx context.Context, id string, slots []string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_days SET slots = $1, updated_at = $2
		WHERE id = $3 AND company_id = $4
	`

	commandTag, err := q.Exec(ctx, query, slots, time.Now(), id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update punch day: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrDayNotFound
	}

	return nil
}

// ListByPeriod implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]punch.DaySlots, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + `
		FROM punch_days
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch days: %w", err)
	}
	defer rows.Close()

	return collectDaySlots(rows)
}

// ListByEmployee implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.DaySlots, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + `
		FROM punch_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND company_id = $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch days: %w", err)
	}
	defer rows.Close()

	return collectDaySlots(rows)
}

func collectDaySlots(rows pgx.Rows) ([]punch.DaySlots, error) {
	var days []punch.DaySlots
	for rows.Next() {
		d, err := scanDaySlots(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch day: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}
