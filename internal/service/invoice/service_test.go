package invoice

import (
	"context"
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

func TestCreateInvoiceTotalsLineItemsInOrder(t *testing.T) {
	svc, _ := newTestService(t)

	amounts := []float64{25.5, 0.1, 199.99}
	items := make([]model.LineItemRequest, 0, len(amounts))
	for _, a := range amounts {
		items = append(items, model.LineItemRequest{Description: "act", Amount: a, ProcedureCode: "C001"})
	}

	inv, err := svc.CreateInvoice(context.Background(), 1, items)
	require.NoError(t, err)

	var want float64
	for _, a := range amounts {
		want += a
	}
	assert.Equal(t, want, inv.Total)
	assert.Equal(t, model.InvoiceStatusPending, inv.Status)
	assert.Equal(t, time.Now().Format(model.DateLayout), inv.IssueDate)
	require.Len(t, inv.LineItems, 3)
	assert.Equal(t, amounts[0], inv.LineItems[0].Amount)
}

func TestCreateInvoiceWithNoItems(t *testing.T) {
	svc, _ := newTestService(t)

	inv, err := svc.CreateInvoice(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, inv.Total)
	assert.Empty(t, inv.LineItems)
}

func TestCreateInvoiceAcceptsDanglingPatient(t *testing.T) {
	svc, _ := newTestService(t)

	// Patient 99 does not exist; the invoice is still recorded and the
	// resolution failure only shows up in the display view.
	inv, err := svc.CreateInvoice(context.Background(), 99, nil)
	require.NoError(t, err)
	assert.Equal(t, 99, inv.PatientID)

	views := svc.ListInvoices(context.Background())
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Patient)
}

func TestCreateInvoiceAssignsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 1; i <= 4; i++ {
		inv, err := svc.CreateInvoice(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, i, inv.ID)
	}
}

func TestUpdateStatusMutatesOnlyStatus(t *testing.T) {
	svc, app := newTestService(t)
	ctx := context.Background()

	inv, err := svc.CreateInvoice(ctx, 1, []model.LineItemRequest{
		{Description: "consultation", Amount: 30, ProcedureCode: "C001"},
	})
	require.NoError(t, err)
	total := inv.Total

	require.NoError(t, svc.UpdateStatus(ctx, inv.ID, model.InvoiceStatusPaid))

	updated := app.FindInvoice(inv.ID)
	require.NotNil(t, updated)
	assert.Equal(t, model.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, total, updated.Total)
	assert.Len(t, updated.LineItems, 1)
}

func TestUpdateStatusUnknownInvoice(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateStatus(context.Background(), 42, model.InvoiceStatusPaid)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateInvoice(ctx, 1, nil)
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, 1, model.InvoiceStatus("refunded"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))
}
