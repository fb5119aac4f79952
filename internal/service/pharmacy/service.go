package pharmacy

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

type PharmacyServicer interface {
	AddMedication(ctx context.Context, req *model.CreateMedicationRequest) (*model.Medication, error)
	ListMedications(ctx context.Context) []model.Medication
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

func (s *Service) AddMedication(ctx context.Context, req *model.CreateMedicationRequest) (*model.Medication, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid medication data: %w", err)
	}

	med := model.Medication{
		ID:             model.NextID(s.app.Pharmacy.Medications),
		Name:           req.Name,
		Description:    req.Description,
		Stock:          req.Stock,
		AlertThreshold: req.AlertThreshold,
		ExpiryDate:     req.ExpiryDate,
	}
	s.app.Pharmacy.Medications = append(s.app.Pharmacy.Medications, med)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save medication: %w", err)
	}
	return &s.app.Pharmacy.Medications[len(s.app.Pharmacy.Medications)-1], nil
}

func (s *Service) ListMedications(ctx context.Context) []model.Medication {
	return s.app.Pharmacy.Medications
}
