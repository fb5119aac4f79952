// Package department manages the hospital's services: named departments with
// a chief, a capacity, assigned staff and equipment.
package department

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

// View joins a service with its resolved chief for display. Chief is nil when
// the stored id matches no staff member.
type View struct {
	Service model.Service
	Chief   *model.Staff
}

type DepartmentServicer interface {
	AddService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error)
	ListServices(ctx context.Context) []View
	AssignStaff(ctx context.Context, serviceID, staffID int) error
	AddEquipment(ctx context.Context, serviceID int, req *model.CreateEquipmentRequest) error
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

// AddService stores the chief id as given, without an existence check.
func (s *Service) AddService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid service data: %w", err)
	}

	svc := model.Service{
		ID:            model.NextID(s.app.Services),
		Name:          req.Name,
		ChiefStaffID:  req.ChiefStaffID,
		Capacity:      req.Capacity,
		AssignedStaff: []int{},
		Equipment:     []model.Equipment{},
	}
	s.app.Services = append(s.app.Services, svc)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}
	return &s.app.Services[len(s.app.Services)-1], nil
}

func (s *Service) ListServices(ctx context.Context) []View {
	views := make([]View, 0, len(s.app.Services))
	for _, svc := range s.app.Services {
		views = append(views, View{
			Service: svc,
			Chief:   s.app.FindStaff(svc.ChiefStaffID),
		})
	}
	return views
}

func (s *Service) AssignStaff(ctx context.Context, serviceID, staffID int) error {
	svc := s.app.FindService(serviceID)
	if svc == nil {
		return apperrors.NotFound("service", nil)
	}

	// The staff id is a cross-reference like any other: stored unchecked.
	svc.AssignedStaff = append(svc.AssignedStaff, staffID)

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save staff assignment: %w", err)
	}
	return nil
}

func (s *Service) AddEquipment(ctx context.Context, serviceID int, req *model.CreateEquipmentRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid equipment data: %w", err)
	}

	svc := s.app.FindService(serviceID)
	if svc == nil {
		return apperrors.NotFound("service", nil)
	}

	svc.Equipment = append(svc.Equipment, model.Equipment{
		ID:              model.NextID(svc.Equipment),
		Name:            req.Name,
		Status:          model.EquipmentStatusFunctional,
		LastMaintenance: req.LastMaintenance,
		NextMaintenance: req.NextMaintenance,
	})

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}
	return nil
}
