package patient

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository/jsonstore"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

func newTestService(t *testing.T) (*Service, *model.Application) {
	t.Helper()
	app := model.NewApplication()
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "data.json"))
	return NewService(app, store, validator.New()), app
}

func createRequest(n int) *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		LastName:     fmt.Sprintf("Dupont%d", n),
		FirstName:    "Jean",
		BirthDate:    "01/01/1980",
		HealthNumber: "180018001800",
	}
}

func TestAddPatientAssignsSequentialIDs(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		p, err := svc.AddPatient(ctx, createRequest(i))
		require.NoError(t, err)
		assert.Equal(t, i, p.ID)
	}

	for i, p := range app.Patients {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestAddPatientStartsWithEmptyMedicalFile(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.AddPatient(context.Background(), createRequest(1))
	require.NoError(t, err)

	assert.Empty(t, p.MedicalFile.History)
	assert.Empty(t, p.MedicalFile.Allergies)
	assert.Empty(t, p.MedicalFile.Treatments)
	assert.Empty(t, p.MedicalFile.Notes)
	assert.Nil(t, p.Urgency)
}

func TestAddPatientRejectsMissingFields(t *testing.T) {
	svc, app := newTestService(t)

	_, err := svc.AddPatient(context.Background(), &model.CreatePatientRequest{FirstName: "Jean"})
	require.Error(t, err)
	assert.Empty(t, app.Patients)
}

func TestGetPatientNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetPatient(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestAddNoteStampsTodayAndAppends(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPatient(ctx, createRequest(1))
	require.NoError(t, err)

	// Author id 9 references no staff member; the dangling reference is kept.
	err = svc.AddNote(ctx, 1, &model.AddNoteRequest{Content: "stable", Author: 9})
	require.NoError(t, err)

	notes := app.Patients[0].MedicalFile.Notes
	require.Len(t, notes, 1)
	assert.Equal(t, "stable", notes[0].Content)
	assert.Equal(t, 9, notes[0].Author)
	assert.Equal(t, time.Now().Format(model.DateLayout), notes[0].Date)
}

func TestAddNoteUnknownPatient(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.AddNote(context.Background(), 7, &model.AddNoteRequest{Content: "x", Author: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestAddTreatment(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPatient(ctx, createRequest(1))
	require.NoError(t, err)

	end := "01/06/2024"
	err = svc.AddTreatment(ctx, 1, &model.AddTreatmentRequest{
		Medication:   "Amoxicillin",
		Dosage:       "500mg twice daily",
		StartDate:    "01/05/2024",
		EndDate:      &end,
		PrescribedBy: 3,
	})
	require.NoError(t, err)

	treatments := app.Patients[0].MedicalFile.Treatments
	require.Len(t, treatments, 1)
	assert.Equal(t, "Amoxicillin", treatments[0].Medication)
	require.NotNil(t, treatments[0].EndDate)
	assert.Equal(t, end, *treatments[0].EndDate)
	assert.Equal(t, 3, treatments[0].PrescribedBy)
}

func TestAddAllergyAndHistory(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPatient(ctx, createRequest(1))
	require.NoError(t, err)

	require.NoError(t, svc.AddAllergy(ctx, 1, "penicillin"))
	require.NoError(t, svc.AddHistory(ctx, 1, "appendectomy 2015"))

	file := app.Patients[0].MedicalFile
	assert.Equal(t, []string{"penicillin"}, file.Allergies)
	assert.Equal(t, []string{"appendectomy 2015"}, file.History)
}

func TestSetUrgency(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddPatient(ctx, createRequest(1))
	require.NoError(t, err)

	require.NoError(t, svc.SetUrgency(ctx, 1, model.UrgencyHigh))
	require.NotNil(t, app.Patients[0].Urgency)
	assert.Equal(t, model.UrgencyHigh, *app.Patients[0].Urgency)

	err = svc.SetUrgency(ctx, 1, model.UrgencyLevel("extreme"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))
}
