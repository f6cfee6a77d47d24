package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/employee"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

const employeeColumns = `
	e.id, e.company_id, e.registration_code, e.full_name, e.hire_date,
	e.shift_id, e.cost_center_id, e.photo_url, e.base_salary,
	e.created_at, e.updated_at, e.deleted_at,
	s.name AS shift_name, cc.name AS cost_center_name, c.name AS company_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN shifts s ON e.shift_id = s.id AND s.deleted_at IS NULL
	LEFT JOIN cost_centers cc ON e.cost_center_id = cc.id
	JOIN companies c ON e.company_id = c.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.RegistrationCode, &emp.FullName, &emp.HireDate,
		&emp.ShiftID, &emp.CostCenterID, &emp.PhotoURL, &emp.BaseSalary,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.ShiftName, &emp.CostCenterName, &emp.CompanyName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, company_id, registration_code, full_name, hire_date,
			shift_id, cost_center_id, photo_url, base_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.CompanyID, newEmployee.RegistrationCode,
		newEmployee.FullName, newEmployee.HireDate, newEmployee.ShiftID,
		newEmployee.CostCenterID, newEmployee.PhotoURL, newEmployee.BaseSalary,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrRegistrationCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		ORDER BY e.full_name, e.id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			registration_code = $1, full_name = $2, hire_date = $3,
			shift_id = $4, cost_center_id = $5, photo_url = $6,
			base_salary = $7, updated_at = $8
		WHERE id = $9 AND company_id = $10 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.RegistrationCode, emp.FullName, emp.HireDate,
		emp.ShiftID, emp.CostCenterID, emp.PhotoURL,
		emp.BaseSalary, time.Now(),
		emp.ID, emp.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.ErrRegistrationCodeExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET deleted_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM punch_days WHERE employee_id = employees.id
			)
	`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		// Distinguish a missing employee from one blocked by punch history.
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL)`,
			id, companyID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check employee existence: %w", err)
		}
		if exists {
			return employee.ErrEmployeeHasOpenPunchDay
		}
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}
