package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/employee"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/punch"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/validator"
	"github.com/chronoshq/timeclock-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type PunchServiceImpl struct {
	db *database.DB
	punch.PunchRepository
	employee.EmployeeRepository
}

func NewPunchService(db *database.DB, punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) punch.PunchService {
	return &PunchServiceImpl{
		db:                 db,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *PunchServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// Record implements punch.PunchService. The raw value is stored exactly as
// received; a later reconciliation decides what it means.
func (s *PunchServiceImpl) Record(ctx context.Context, req punch.RecordPunchRequest) (punch.DaySlotsResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.DaySlotsResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return punch.DaySlotsResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return punch.DaySlotsResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	// Read-modify-write on the slot list runs inside one transaction so two
	// terminals punching the same day cannot drop each other's value.
	var day punch.DaySlots
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.PunchRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date, companyID)
		if errors.Is(err, punch.ErrDayNotFound) {
			day, err = s.PunchRepository.Create(txCtx, punch.DaySlots{
				ID:         uuid.NewString(),
				CompanyID:  companyID,
				EmployeeID: req.EmployeeID,
				Date:       date,
				Slots:      []string{req.Value},
			})
			return err
		}
		if err != nil {
			return err
		}

		if len(existing.Slots) >= punch.MaxSlots {
			return punch.ErrDayComplete
		}

		existing.Slots = append(existing.Slots, req.Value)
		if err := s.PunchRepository.UpdateSlots(txCtx, existing.ID, existing.Slots, companyID); err != nil {
			return err
		}

		day = existing
		return nil
	})
	if err != nil {
		return punch.DaySlotsResponse{}, err
	}

	return toDaySlotsResponse(day), nil
}

// List implements punch.PunchService.
func (s *PunchServiceImpl) List(ctx context.Context, req punch.ListPunchesRequest) ([]punch.DaySlotsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	days, err := s.PunchRepository.ListByEmployee(ctx, req.EmployeeID, start, end, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]punch.DaySlotsResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, toDaySlotsResponse(d))
	}

	return responses, nil
}

func toDaySlotsResponse(d punch.DaySlots) punch.DaySlotsResponse {
	return punch.DaySlotsResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       d.Date.Format(dateLayout),
		Slots:      d.Slots,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
}
