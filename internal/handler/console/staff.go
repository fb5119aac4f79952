package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) staffMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== STAFF ==="))
		fmt.Fprintln(h.out, "1. Add a staff member")
		fmt.Fprintln(h.out, "2. List staff")
		fmt.Fprintln(h.out, "3. Add a qualification")
		fmt.Fprintln(h.out, "4. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.addStaff(ctx)
		case 2:
			h.listStaff(ctx)
		case 3:
			h.addQualification(ctx)
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

func (h *Handler) addStaff(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW STAFF MEMBER ==="))
	req := &model.CreateStaffRequest{
		LastName:  h.prompt.ReadString("Last name: "),
		FirstName: h.prompt.ReadString("First name: "),
		Specialty: h.prompt.ReadString("Specialty: "),
	}

	if _, err := h.svc.Staff.AddStaff(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nStaff member added."))
}

func (h *Handler) listStaff(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== STAFF ==="))
	for _, m := range h.svc.Staff.ListStaff(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "ID: %d\n", m.ID)
		fmt.Fprintf(h.out, "Dr. %s %s\n", m.LastName, m.FirstName)
		fmt.Fprintf(h.out, "Specialty: %s\n", m.Specialty)
		fmt.Fprintf(h.out, "Status: %s\n", m.Status)
		if len(m.Qualifications) > 0 {
			fmt.Fprintf(h.out, "Qualifications: %v\n", m.Qualifications)
		}
	}
}

func (h *Handler) addQualification(ctx context.Context) {
	h.listStaff(ctx)
	staffID := h.prompt.ReadInt("Staff ID: ")
	qualification := h.prompt.ReadString("Qualification: ")

	if err := h.svc.Staff.AddQualification(ctx, staffID, qualification); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nQualification recorded."))
}
