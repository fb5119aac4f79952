package department

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

func TestAddServiceAcceptsDanglingChief(t *testing.T) {
	svc, _ := newTestService(t)

	// Chief id 9 references no staff member; creation still succeeds and the
	// missing chief only surfaces in the display view.
	created, err := svc.AddService(context.Background(), &model.CreateServiceRequest{
		Name: "Cardiology", ChiefStaffID: 9, Capacity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Empty(t, created.AssignedStaff)
	assert.Empty(t, created.Equipment)

	views := svc.ListServices(context.Background())
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Chief)
}

func TestListServicesResolvesChief(t *testing.T) {
	svc, app := newTestService(t)

	app.Staff = append(app.Staff, model.Staff{ID: 1, LastName: "Martin", FirstName: "Claude"})
	_, err := svc.AddService(context.Background(), &model.CreateServiceRequest{
		Name: "Cardiology", ChiefStaffID: 1, Capacity: 20,
	})
	require.NoError(t, err)

	views := svc.ListServices(context.Background())
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Chief)
	assert.Equal(t, "Martin", views[0].Chief.LastName)
}

func TestAssignStaff(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddService(ctx, &model.CreateServiceRequest{
		Name: "Cardiology", ChiefStaffID: 1, Capacity: 20,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignStaff(ctx, 1, 7))
	assert.Equal(t, []int{7}, app.Services[0].AssignedStaff)

	err = svc.AssignStaff(ctx, 42, 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestAddEquipmentNumbersWithinService(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddService(ctx, &model.CreateServiceRequest{
		Name: "Cardiology", ChiefStaffID: 1, Capacity: 20,
	})
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		err := svc.AddEquipment(ctx, 1, &model.CreateEquipmentRequest{
			Name:            "ECG",
			LastMaintenance: "01/01/2024",
			NextMaintenance: "01/07/2024",
		})
		require.NoError(t, err)
	}

	equipment := app.Services[0].Equipment
	require.Len(t, equipment, 2)
	assert.Equal(t, 1, equipment[0].ID)
	assert.Equal(t, 2, equipment[1].ID)
	assert.Equal(t, model.EquipmentStatusFunctional, equipment[0].Status)
}
