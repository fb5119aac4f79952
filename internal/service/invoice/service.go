package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

// View joins an invoice with its resolved patient for display. Patient is nil
// when the stored id matches nothing.
type View struct {
	Invoice model.Invoice
	Patient *model.Patient
}

type InvoiceServicer interface {
	CreateInvoice(ctx context.Context, patientID int, items []model.LineItemRequest) (*model.Invoice, error)
	ListInvoices(ctx context.Context) []View
	UpdateStatus(ctx context.Context, invoiceID int, status model.InvoiceStatus) error
}

type Service struct {
	app      *model.Application
	store    repository.Store
	validate *validator.Validator
}

func NewService(app *model.Application, store repository.Store, validate *validator.Validator) *Service {
	return &Service{app: app, store: store, validate: validate}
}

// CreateInvoice totals the line items once, in insertion order. The total is
// never re-derived afterwards; only the status field mutates.
func (s *Service) CreateInvoice(ctx context.Context, patientID int, items []model.LineItemRequest) (*model.Invoice, error) {
	if patientID <= 0 {
		return nil, apperrors.BadRequest("patient id must be positive", nil)
	}

	lineItems := make([]model.LineItem, 0, len(items))
	var total float64
	for _, item := range items {
		if err := s.validate.Struct(&item); err != nil {
			return nil, fmt.Errorf("invalid line item: %w", err)
		}
		lineItems = append(lineItems, model.LineItem{
			Description:   item.Description,
			Amount:        item.Amount,
			ProcedureCode: item.ProcedureCode,
		})
		total += item.Amount
	}

	inv := model.Invoice{
		ID:        model.NextID(s.app.Invoices),
		PatientID: patientID,
		LineItems: lineItems,
		Total:     total,
		IssueDate: time.Now().Format(model.DateLayout),
		Status:    model.InvoiceStatusPending,
	}
	s.app.Invoices = append(s.app.Invoices, inv)

	if err := s.store.Save(ctx, s.app); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}
	return &s.app.Invoices[len(s.app.Invoices)-1], nil
}

func (s *Service) ListInvoices(ctx context.Context) []View {
	views := make([]View, 0, len(s.app.Invoices))
	for _, inv := range s.app.Invoices {
		views = append(views, View{
			Invoice: inv,
			Patient: s.app.FindPatient(inv.PatientID),
		})
	}
	return views
}

func (s *Service) UpdateStatus(ctx context.Context, invoiceID int, status model.InvoiceStatus) error {
	switch status {
	case model.InvoiceStatusPending, model.InvoiceStatusPaid, model.InvoiceStatusCancelled:
	default:
		return apperrors.BadRequest("unknown invoice status", nil)
	}

	inv := s.app.FindInvoice(invoiceID)
	if inv == nil {
		return apperrors.NotFound("invoice", nil)
	}

	inv.Status = status

	if err := s.store.Save(ctx, s.app); err != nil {
		return fmt.Errorf("failed to save invoice status: %w", err)
	}
	return nil
}
