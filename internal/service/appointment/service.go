package appointment

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

// View is an appointment joined with its referenced records for display.
// Patient or Staff is nil when the stored id matches nothing; callers render
// that as a not-found marker, they never reject it.
type View struct {
	Appointment model.Appointment
	Patient     *model.Patient
	Staff       *model.Staff
}

type AppointmentServicer interface {
	AddAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	ListAppointments(ctx context.Context) []View
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

// AddAppointment records the appointment as given. The patient and staff ids
// are not checked against their collections: a dangling reference is a valid
// state, resolved only at display time.
func (s *Service) AddAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid appointment data: %w", err)
	}

	appt := model.Appointment{
		ID:        model.NextID(s.app.Appointments),
		Date:      req.Date,
		Time:      req.Time,
		PatientID: req.PatientID,
		StaffID:   req.StaffID,
	}
	s.app.Appointments = append(s.app.Appointments, appt)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	return &s.app.Appointments[len(s.app.Appointments)-1], nil
}

func (s *Service) ListAppointments(ctx context.Context) []View {
	views := make([]View, 0, len(s.app.Appointments))
	for _, appt := range s.app.Appointments {
		views = append(views, View{
			Appointment: appt,
			Patient:     s.app.FindPatient(appt.PatientID),
			Staff:       s.app.FindStaff(appt.StaffID),
		})
	}
	return views
}
