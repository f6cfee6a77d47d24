package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/employee"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	shift.ShiftRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, shiftRepo shift.ShiftRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *EmployeeServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	baseSalary, err := parseBaseSalary(req.BaseSalary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:               uuid.NewString(),
		CompanyID:        companyID,
		RegistrationCode: req.RegistrationCode,
		FullName:         req.FullName,
		HireDate:         hireDate,
		ShiftID:          req.ShiftID,
		CostCenterID:     req.CostCenterID,
		PhotoURL:         req.PhotoURL,
		BaseSalary:       baseSalary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Re-read through the joined query so the response carries display names.
	return s.GetByID(ctx, created.ID)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.RegistrationCode != nil {
		emp.RegistrationCode = *req.RegistrationCode
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.HireDate != nil {
		emp.HireDate, _ = validator.IsValidDate(*req.HireDate)
	}
	if req.ShiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.ShiftID = req.ShiftID
	}
	if req.CostCenterID != nil {
		emp.CostCenterID = req.CostCenterID
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = req.PhotoURL
	}
	if req.BaseSalary != nil {
		emp.BaseSalary, err = parseBaseSalary(req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, emp.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.EmployeeRepository.Delete(ctx, id, companyID)
}

func parseBaseSalary(raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	salary, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, validator.ValidationErrors{{
			Field:   "base_salary",
			Message: "base_salary must be a decimal number",
		}}
	}
	return &salary, nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	var baseSalary *string
	if emp.BaseSalary != nil {
		v := emp.BaseSalary.String()
		baseSalary = &v
	}

	return employee.EmployeeResponse{
		ID:               emp.ID,
		RegistrationCode: emp.RegistrationCode,
		FullName:         emp.FullName,
		HireDate:         emp.HireDate.Format(dateLayout),
		ShiftID:          emp.ShiftID,
		ShiftName:        emp.ShiftName,
		CostCenterID:     emp.CostCenterID,
		CostCenterName:   emp.CostCenterName,
		PhotoURL:         emp.PhotoURL,
		BaseSalary:       baseSalary,
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
}
