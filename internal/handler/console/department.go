package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) departmentMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== SERVICES ==="))
		fmt.Fprintln(h.out, "1. Add a service")
		fmt.Fprintln(h.out, "2. List services")
		fmt.Fprintln(h.out, "3. Assign a staff member")
		fmt.Fprintln(h.out, "4. Add equipment")
		fmt.Fprintln(h.out, "5. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.addService(ctx)
		case 2:
			h.listServices(ctx)
		case 3:
			h.assignStaff(ctx)
		case 4:
			h.addEquipment(ctx)
		case 5:
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) addService(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW SERVICE ==="))
	req := &model.CreateServiceRequest{
		Name:         h.prompt.ReadString("Service name: "),
		ChiefStaffID: h.prompt.ReadInt("Chief staff ID: "),
		Capacity:     h.prompt.ReadInt("Capacity: "),
	}

	if _, err := h.svc.Departments.AddService(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nService added."))
}

func (h *Handler) listServices(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== SERVICES ==="))
	for _, v := range h.svc.Departments.ListServices(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "ID: %d\n", v.Service.ID)
		fmt.Fprintf(h.out, "Name: %s\n", v.Service.Name)
		if v.Chief != nil {
			fmt.Fprintf(h.out, "Chief: Dr. %s %s\n", v.Chief.LastName, v.Chief.FirstName)
		} else {
			fmt.Fprintln(h.out, failure(fmt.Sprintf("Chief: not found (id %d)", v.Service.ChiefStaffID)))
		}
		fmt.Fprintf(h.out, "Capacity: %d\n", v.Service.Capacity)
		fmt.Fprintf(h.out, "Assigned staff: %d\n", len(v.Service.AssignedStaff))
		fmt.Fprintf(h.out, "Equipment: %d\n", len(v.Service.Equipment))
	}
}

func (h *Handler) assignStaff(ctx context.Context) {
	h.listServices(ctx)
	serviceID := h.prompt.ReadInt("Service ID: ")

	h.listStaff(ctx)
	staffID := h.prompt.ReadInt("Staff ID: ")

	if err := h.svc.Departments.AssignStaff(ctx, serviceID, staffID); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nStaff member assigned."))
}

func (h *Handler) addEquipment(ctx context.Context) {
	h.listServices(ctx)
	serviceID := h.prompt.ReadInt("Service ID: ")

	fmt.Fprintln(h.out, "\n"+section("=== NEW EQUIPMENT ==="))
	req := &model.CreateEquipmentRequest{
		Name:            h.prompt.ReadString("Equipment name: "),
		LastMaintenance: h.prompt.ReadString("Last maintenance (DD/MM/YYYY): "),
		NextMaintenance: h.prompt.ReadString("Next maintenance (DD/MM/YYYY): "),
	}

	if err := h.svc.Departments.AddEquipment(ctx, serviceID, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nEquipment added."))
}
