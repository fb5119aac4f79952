package staff

import (
	"context"
	"path/filepath"
	"testing"

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

func TestAddStaffAssignsSequentialIDsAndDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		m, err := svc.AddStaff(ctx, &model.CreateStaffRequest{
			LastName: "Martin", FirstName: "Claude", Specialty: "Cardiology",
		})
		require.NoError(t, err)
		assert.Equal(t, i, m.ID)
		assert.Equal(t, model.StaffStatusOnDuty, m.Status)
		assert.Empty(t, m.Qualifications)
	}
}

func TestAddQualification(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddStaff(ctx, &model.CreateStaffRequest{
		LastName: "Martin", FirstName: "Claude", Specialty: "Cardiology",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddQualification(ctx, 1, "Board certified"))
	assert.Equal(t, []string{"Board certified"}, app.Staff[0].Qualifications)
}

func TestGetStaffNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetStaff(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
