package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) invoiceMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== INVOICES ==="))
		fmt.Fprintln(h.out, "1. Create an invoice")
		fmt.Fprintln(h.out, "2. List invoices")
		fmt.Fprintln(h.out, "3. Update invoice status")
		fmt.Fprintln(h.out, "4. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.createInvoice(ctx)
		case 2:
			h.listInvoices(ctx)
		case 3:
			h.updateInvoiceStatus(ctx)
		case 4:
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) createInvoice(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW INVOICE ==="))
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")

	var items []model.LineItemRequest
	for {
		if !h.prompt.Confirm("\nAdd a line item? (y/N): ") {
			break
		}
		items = append(items, model.LineItemRequest{
			Description:   h.prompt.ReadString("Description: "),
			Amount:        h.prompt.ReadFloat("Amount: "),
			ProcedureCode: h.prompt.ReadString("Procedure code: "),
		})
	}

	if _, err := h.svc.Invoices.CreateInvoice(ctx, patientID, items); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nInvoice created."))
}

func (h *Handler) listInvoices(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== INVOICES ==="))
	for _, v := range h.svc.Invoices.ListInvoices(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "Invoice #%d\n", v.Invoice.ID)
		if v.Patient != nil {
			fmt.Fprintf(h.out, "Patient: %s %s\n", v.Patient.LastName, v.Patient.FirstName)
		} else {
			fmt.Fprintln(h.out, failure(fmt.Sprintf("Patient: not found (id %d)", v.Invoice.PatientID)))
		}
		fmt.Fprintf(h.out, "Issued: %s\n", v.Invoice.IssueDate)
		fmt.Fprintf(h.out, "Total: %.2f\n", v.Invoice.Total)
		fmt.Fprintf(h.out, "Status: %s\n", v.Invoice.Status)
	}
}

func (h *Handler) updateInvoiceStatus(ctx context.Context) {
	h.listInvoices(ctx)
	invoiceID := h.prompt.ReadInt("Invoice ID: ")

	fmt.Fprintln(h.out, "New status:")
	fmt.Fprintln(h.out, "1. Pending")
	fmt.Fprintln(h.out, "2. Paid")
	fmt.Fprintln(h.out, "3. Cancelled")

	var status model.InvoiceStatus
	switch h.prompt.ReadInt("Choice: ") {
	case 1:
		status = model.InvoiceStatusPending
	case 2:
		status = model.InvoiceStatusPaid
	case 3:
		status = model.InvoiceStatusCancelled
	default:
		fmt.Fprintln(h.out, failure("Invalid choice."))
		return
	}

	if err := h.svc.Invoices.UpdateStatus(ctx, invoiceID, status); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nInvoice status updated."))
}
