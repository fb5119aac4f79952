package staff

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

type StaffServicer interface {
	AddStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error)
	GetStaff(ctx context.Context, id int) (*model.Staff, error)
	ListStaff(ctx context.Context) []model.Staff
	AddQualification(ctx context.Context, staffID int, qualification string) error
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

func (s *Service) AddStaff(ctx context.Context, req *model.CreateStaffRequest) (*model.Staff, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid staff data: %w", err)
	}

	member := model.Staff{
		ID:             model.NextID(s.app.Staff),
		LastName:       req.LastName,
		FirstName:      req.FirstName,
		Specialty:      req.Specialty,
		Status:         model.StaffStatusOnDuty,
		Qualifications: []string{},
	}
	s.app.Staff = append(s.app.Staff, member)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save staff member: %w", err)
	}
	return &s.app.Staff[len(s.app.Staff)-1], nil
}

func (s *Service) GetStaff(ctx context.Context, id int) (*model.Staff, error) {
	member := s.app.FindStaff(id)
	if member == nil {
		return nil, apperrors.NotFound("staff member", nil)
	}
	return member, nil
}

func (s *Service) ListStaff(ctx context.Context) []model.Staff {
	return s.app.Staff
}

func (s *Service) AddQualification(ctx context.Context, staffID int, qualification string) error {
	if qualification == "" {
		return apperrors.BadRequest("qualification must not be empty", nil)
	}

	member := s.app.FindStaff(staffID)
	if member == nil {
		return apperrors.NotFound("staff member", nil)
	}

	member.Qualifications = append(member.Qualifications, qualification)

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save qualification: %w", err)
	}
	return nil
}
