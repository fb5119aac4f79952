package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) appointmentMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== APPOINTMENTS ==="))
		fmt.Fprintln(h.out, "1. New appointment")
		fmt.Fprintln(h.out, "2. List appointments")
		fmt.Fprintln(h.out, "3. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.addAppointment(ctx)
		case 2:
			h.listAppointments(ctx)
		case 3:
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) addAppointment(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW APPOINTMENT ==="))
	req := &model.CreateAppointmentRequest{
		Date: h.prompt.ReadString("Date (DD/MM/YYYY): "),
		Time: h.prompt.ReadString("Time (HH:MM): "),
	}

	h.listPatients(ctx)
	req.PatientID = h.prompt.ReadInt("Patient ID: ")

	h.listStaff(ctx)
	req.StaffID = h.prompt.ReadInt("Staff ID: ")

	if _, err := h.svc.Appointments.AddAppointment(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nAppointment added."))
}

func (h *Handler) listAppointments(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== APPOINTMENTS ==="))
	for _, v := range h.svc.Appointments.ListAppointments(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "ID: %d\n", v.Appointment.ID)
		fmt.Fprintf(h.out, "Date: %s at %s\n", v.Appointment.Date, v.Appointment.Time)
		if v.Patient != nil {
			fmt.Fprintf(h.out, "Patient: %s %s\n", v.Patient.LastName, v.Patient.FirstName)
		} else {
			fmt.Fprintln(h.out, failure(fmt.Sprintf("Patient: not found (id %d)", v.Appointment.PatientID)))
		}
		if v.Staff != nil {
			fmt.Fprintf(h.out, "Staff: Dr. %s %s\n", v.Staff.LastName, v.Staff.FirstName)
		} else {
			fmt.Fprintln(h.out, failure(fmt.Sprintf("Staff: not found (id %d)", v.Appointment.StaffID)))
		}
	}
}
