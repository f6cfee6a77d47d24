package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

const shiftColumns = `id, company_id, name, start_clock, end_clock, break_minutes, break_clock, created_at, updated_at, deleted_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.StartClock, &s.EndClock,
		&s.BreakMinutes, &s.BreakClock, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, company_id, name, start_clock, end_clock, break_minutes, break_clock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.Name, s.StartClock, s.EndClock, s.BreakMinutes, s.BreakClock,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	s, err := scanShift(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, companyID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// MapByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) MapByID(ctx context.Context, companyID string) (map[string]shift.Shift, error) {
	shifts, err := r.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]shift.Shift, len(shifts))
	for _, s := range shifts {
		byID[s.ID] = s
	}
	return byID, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			name = $1, start_clock = $2, end_clock = $3,
			break_minutes = $4, break_clock = $5, updated_at = $6
		WHERE id = $7 AND company_id = $8 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.Name, s.StartClock, s.EndClock, s.BreakMinutes, s.BreakClock, time.Now(),
		s.ID, s.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET deleted_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM employees
				WHERE shift_id = shifts.id AND deleted_at IS NULL
			)
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		// Either the shift does not exist or employees still reference it.
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM shifts WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL)`,
			id, companyID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check shift existence: %w", err)
		}
		if exists {
			return shift.ErrShiftInUse
		}
		return shift.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}
