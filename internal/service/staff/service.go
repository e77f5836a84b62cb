package staff

import (
	"context"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.Service {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member := staff.StaffMember{
		FullName:        req.FullName,
		Position:        req.Position,
		Category:        staff.CategoryFromPosition(req.Position),
		HourlyRate:      req.HourlyRate,
		CommissionRates: req.CommissionRates,
		IsActive:        true,
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToStaffResponse(created), nil
}

func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapToStaffResponse(member), nil
}

func (s *StaffServiceImpl) ListActive(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		result = append(result, mapToStaffResponse(member))
	}
	return result, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, req.ID); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.Update(ctx, req); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapToStaffResponse(member), nil
}

func (s *StaffServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.staffRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Deactivate(ctx, id)
}

func mapToStaffResponse(m staff.StaffMember) staff.StaffResponse {
	return staff.StaffResponse{
		ID:              m.ID,
		FullName:        m.FullName,
		Position:        m.Position,
		Category:        string(m.Category),
		HourlyRate:      m.HourlyRate,
		CommissionRates: m.CommissionRates,
		IsActive:        m.IsActive,
	}
}
