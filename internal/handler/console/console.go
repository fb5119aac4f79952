// Package console is the interactive menu layer. It collects and validates
// primitive input, calls into the entity services and renders their results;
// all data semantics live below it.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pemochamdev/gestion-hospitaliere/internal/service/account"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/appointment"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/department"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/invoice"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/patient"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/pharmacy"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/staff"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/stats"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/logger"
)

var (
	header  = color.New(color.FgBlue, color.Bold).SprintFunc()
	section = color.New(color.FgGreen).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
)

// Services groups the entity services the menu dispatches to.
type Services struct {
	Patients     *patient.Service
	Staff        *staff.Service
	Appointments *appointment.Service
	Departments  *department.Service
	Pharmacy     *pharmacy.Service
	Invoices     *invoice.Service
	Accounts     *account.Service
	Stats        *stats.Service
}

type Handler struct {
	prompt *Prompter
	out    io.Writer
	log    *logger.Logger
	svc    Services
}

func NewHandler(prompt *Prompter, out io.Writer, log *logger.Logger, svc Services) *Handler {
	return &Handler{prompt: prompt, out: out, log: log, svc: svc}
}

// Run drives the main menu until the operator quits or input closes.
func (h *Handler) Run(ctx context.Context) {
	fmt.Fprintln(h.out, success("Welcome to the hospital administration console."))
	for {
		fmt.Fprintln(h.out, "\n"+header("=== HOSPITAL ADMINISTRATION ==="))
		fmt.Fprintln(h.out, "1. Patients")
		fmt.Fprintln(h.out, "2. Staff")
		fmt.Fprintln(h.out, "3. Appointments")
		fmt.Fprintln(h.out, "4. Services")
		fmt.Fprintln(h.out, "5. Pharmacy")
		fmt.Fprintln(h.out, "6. Invoices")
		fmt.Fprintln(h.out, "7. Administration")
		fmt.Fprintln(h.out, "8. Statistics")
		fmt.Fprintln(h.out, "9. Quit")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.patientMenu(ctx)
		case 2:
			h.staffMenu(ctx)
		case 3:
			h.appointmentMenu(ctx)
		case 4:
			h.departmentMenu(ctx)
		case 5:
			h.pharmacyMenu(ctx)
		case 6:
			h.invoiceMenu(ctx)
		case 7:
			h.adminMenu(ctx)
		case 8:
			h.showStatistics(ctx)
		case 9:
			fmt.Fprintln(h.out, success("Goodbye!"))
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) showStatistics(ctx context.Context) {
	o := h.svc.Stats.Overview(ctx)

	fmt.Fprintln(h.out, "\n"+section("=== HOSPITAL STATISTICS ==="))
	fmt.Fprintf(h.out, "Patients: %d\n", o.Patients)
	fmt.Fprintf(h.out, "Staff members: %d\n", o.Staff)
	fmt.Fprintf(h.out, "Services: %d\n", o.Services)
	fmt.Fprintf(h.out, "Appointments today: %d\n", o.AppointmentsToday)
	fmt.Fprintf(h.out, "Paid invoices total: %.2f\n", o.PaidInvoiceTotal)
	fmt.Fprintf(h.out, "Medications below stock threshold: %d\n", o.LowStockMedications)
	fmt.Fprintln(h.out, divider())
}

// printErr renders a failed operation. A write failure gets the explicit
// "may not have been saved" warning required by the persistence contract.
func (h *Handler) printErr(err error) {
	if apperrors.IsCode(err, apperrors.ErrWriteFailed) {
		h.log.Error(err, "persistence write failed")
		fmt.Fprintln(h.out, failure("The change may not have been saved: "+err.Error()))
		return
	}
	fmt.Fprintln(h.out, failure(err.Error()))
}

func divider() string {
	return strings.Repeat("-", 40)
}

// ConfirmDiscard is the startup gate for a corrupt data file: the operator
// must explicitly accept losing the prior records before the application
// continues on an empty dataset.
func ConfirmDiscard(prompt *Prompter, out io.Writer, path string) bool {
	fmt.Fprintln(out, failure(fmt.Sprintf("The data file %s exists but could not be read.", path)))
	fmt.Fprintln(out, failure("Continuing will start from an empty dataset; the next save overwrites the file."))
	return prompt.Confirm("Discard the unreadable data and continue? (y/N): ")
}
