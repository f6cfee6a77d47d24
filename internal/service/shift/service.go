package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/shift"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: shiftRepo}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ShiftServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		StartClock:   req.StartClock,
		EndClock:     req.EndClock,
		BreakMinutes: req.BreakMinutes,
		BreakClock:   req.BreakClock,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// GetByID implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByID(ctx context.Context, id string) (shift.ShiftResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.ShiftRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return responses, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartClock != nil {
		sh.StartClock = *req.StartClock
	}
	if req.EndClock != nil {
		sh.EndClock = *req.EndClock
	}
	if req.BreakMinutes != nil {
		sh.BreakMinutes = req.BreakMinutes
	}
	if req.BreakClock != nil {
		sh.BreakClock = req.BreakClock
	}

	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.GetByID(ctx, sh.ID)
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.ShiftRepository.Delete(ctx, id, companyID)
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:           sh.ID,
		Name:         sh.Name,
		StartClock:   sh.StartClock,
		EndClock:     sh.EndClock,
		BreakMinutes: sh.BreakMinutes,
		BreakClock:   sh.BreakClock,
		CreatedAt:    sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    sh.UpdatedAt.Format(time.RFC3339),
	}
}
