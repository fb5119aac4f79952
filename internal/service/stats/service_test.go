package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func TestOverviewOnEmptyApplication(t *testing.T) {
	o := NewService(model.NewApplication()).Overview(context.Background())

	assert.Zero(t, o.Patients)
	assert.Zero(t, o.Staff)
	assert.Zero(t, o.Services)
	assert.Zero(t, o.AppointmentsToday)
	assert.Zero(t, o.PaidInvoiceTotal)
	assert.Zero(t, o.LowStockMedications)
}

func TestOverviewCountsAndSums(t *testing.T) {
	app := model.NewApplication()
	today := time.Now().Format(model.DateLayout)

	app.Patients = append(app.Patients, model.Patient{ID: 1}, model.Patient{ID: 2})
	app.Staff = append(app.Staff, model.Staff{ID: 1})
	app.Services = append(app.Services, model.Service{ID: 1})

	// Today is matched by exact date string, other dates are ignored.
	app.Appointments = append(app.Appointments,
		model.Appointment{ID: 1, Date: today},
		model.Appointment{ID: 2, Date: today},
		model.Appointment{ID: 3, Date: "01/01/2020"},
	)

	// Only paid invoices contribute to the financial total.
	app.Invoices = append(app.Invoices,
		model.Invoice{ID: 1, Total: 100.5, Status: model.InvoiceStatusPaid},
		model.Invoice{ID: 2, Total: 49.5, Status: model.InvoiceStatusPaid},
		model.Invoice{ID: 3, Total: 999, Status: model.InvoiceStatusPending},
		model.Invoice{ID: 4, Total: 999, Status: model.InvoiceStatusCancelled},
	)

	// Stock at the threshold counts as low, stock above it does not.
	app.Pharmacy.Medications = append(app.Pharmacy.Medications,
		model.Medication{ID: 1, Stock: 10, AlertThreshold: 10},
		model.Medication{ID: 2, Stock: 11, AlertThreshold: 10},
		model.Medication{ID: 3, Stock: 0, AlertThreshold: 5},
	)

	o := NewService(app).Overview(context.Background())

	assert.Equal(t, 2, o.Patients)
	assert.Equal(t, 1, o.Staff)
	assert.Equal(t, 1, o.Services)
	assert.Equal(t, 2, o.AppointmentsToday)
	assert.Equal(t, 150.0, o.PaidInvoiceTotal)
	assert.Equal(t, 2, o.LowStockMedications)
}
