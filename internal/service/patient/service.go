package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

type PatientServicer interface {
	AddPatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id int) (*model.Patient, error)
	ListPatients(ctx context.Context) []model.Patient
	AddNote(ctx context.Context, patientID int, req *model.AddNoteRequest) error
	AddTreatment(ctx context.Context, patientID int, req *model.AddTreatmentRequest) error
	AddAllergy(ctx context.Context, patientID int, allergy string) error
	AddHistory(ctx context.Context, patientID int, entry string) error
	SetUrgency(ctx context.Context, patientID int, level model.UrgencyLevel) error
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

func (s *Service) AddPatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	patient := model.Patient{
		ID:           model.NextID(s.app.Patients),
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		BirthDate:    req.BirthDate,
		HealthNumber: req.HealthNumber,
		MedicalFile:  model.NewMedicalFile(),
	}
	s.app.Patients = append(s.app.Patients, patient)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}
	return &s.app.Patients[len(s.app.Patients)-1], nil
}

func (s *Service) GetPatient(ctx context.Context, id int) (*model.Patient, error) {
	patient := s.app.FindPatient(id)
	if patient == nil {
		return nil, apperrors.NotFound("patient", nil)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) []model.Patient {
	return s.app.Patients
}

func (s *Service) AddNote(ctx context.Context, patientID int, req *model.AddNoteRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid medical note: %w", err)
	}

	patient := s.app.FindPatient(patientID)
	if patient == nil {
		return apperrors.NotFound("patient", nil)
	}

	patient.MedicalFile.Notes = append(patient.MedicalFile.Notes, model.MedicalNote{
		Date:    time.Now().Format(model.DateLayout),
		Content: req.Content,
		Author:  req.Author,
	})

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save medical note: %w", err)
	}
	return nil
}

func (s *Service) AddTreatment(ctx context.Context, patientID int, req *model.AddTreatmentRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid treatment: %w", err)
	}

	patient := s.app.FindPatient(patientID)
	if patient == nil {
		return apperrors.NotFound("patient", nil)
	}

	patient.MedicalFile.Treatments = append(patient.MedicalFile.Treatments, model.Treatment{
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		PrescribedBy: req.PrescribedBy,
	})

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save treatment: %w", err)
	}
	return nil
}

func (s *Service) AddAllergy(ctx context.Context, patientID int, allergy string) error {
	if allergy == "" {
		return apperrors.BadRequest("allergy must not be empty", nil)
	}

	patient := s.app.FindPatient(patientID)
	if patient == nil {
		return apperrors.NotFound("patient", nil)
	}

	patient.MedicalFile.Allergies = append(patient.MedicalFile.Allergies, allergy)

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save allergy: %w", err)
	}
	return nil
}

func (s *Service) AddHistory(ctx context.Context, patientID int, entry string) error {
	if entry == "" {
		return apperrors.BadRequest("history entry must not be empty", nil)
	}

	patient := s.app.FindPatient(patientID)
	if patient == nil {
		return apperrors.NotFound("patient", nil)
	}

	patient.MedicalFile.History = append(patient.MedicalFile.History, entry)

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (s *Service) SetUrgency(ctx context.Context, patientID int, level model.UrgencyLevel) error {
	switch level {
	case model.UrgencyLow, model.UrgencyMedium, model.UrgencyHigh, model.UrgencyCritical:
	default:
		return apperrors.BadRequest("unknown urgency level", nil)
	}

	patient := s.app.FindPatient(patientID)
	if patient == nil {
		return apperrors.NotFound("patient", nil)
	}

	patient.Urgency = &level

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save urgency level: %w", err)
	}
	return nil
}
