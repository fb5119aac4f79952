// Package stats computes the operator dashboard by scanning the collections
// on demand. Nothing is cached or incrementally maintained.
package stats

import (
	"context"
	"time"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

// Overview is the statistics snapshot rendered by the console.
type Overview struct {
	Patients            int
	Staff               int
	Services            int
	AppointmentsToday   int
	PaidInvoiceTotal    float64
	LowStockMedications int
}

type Service struct {
	app *model.Application
}

func NewService(app *model.Application) *Service {
	return &Service{app: app}
}

// Overview scans every relevant collection. Today's appointments are counted
// by exact date-string match against the display layout.
func (s *Service) Overview(ctx context.Context) *Overview {
	today := time.Now().Format(model.DateLayout)

	o := &Overview{
		Patients: len(s.app.Patients),
		Staff:    len(s.app.Staff),
		Services: len(s.app.Services),
	}

	for _, appt := range s.app.Appointments {
		if appt.Date == today {
			o.AppointmentsToday++
		}
	}

	for _, inv := range s.app.Invoices {
		if inv.Status == model.InvoiceStatusPaid {
			o.PaidInvoiceTotal += inv.Total
		}
	}

	for i := range s.app.Pharmacy.Medications {
		if s.app.Pharmacy.Medications[i].LowStock() {
			o.LowStockMedications++
		}
	}

	return o
}
