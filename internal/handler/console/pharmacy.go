package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) pharmacyMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== PHARMACY ==="))
		fmt.Fprintln(h.out, "1. Add a medication")
		fmt.Fprintln(h.out, "2. Stock levels")
		fmt.Fprintln(h.out, "3. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.addMedication(ctx)
		case 2:
			h.showStock(ctx)
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

func (h *Handler) addMedication(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW MEDICATION ==="))
	req := &model.CreateMedicationRequest{
		Name:           h.prompt.ReadString("Medication name: "),
		Description:    h.prompt.ReadString("Description: "),
		Stock:          h.prompt.ReadInt("Stock quantity: "),
		AlertThreshold: h.prompt.ReadInt("Alert threshold: "),
		ExpiryDate:     h.prompt.ReadString("Expiry date (DD/MM/YYYY): "),
	}

	if _, err := h.svc.Pharmacy.AddMedication(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nMedication added."))
}

func (h *Handler) showStock(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== STOCK LEVELS ==="))
	for _, med := range h.svc.Pharmacy.ListMedications(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "Medication: %s\n", med.Name)
		fmt.Fprintf(h.out, "Stock: %d\n", med.Stock)
		if med.LowStock() {
			fmt.Fprintln(h.out, failure("Low stock!"))
		}
		fmt.Fprintf(h.out, "Expiry: %s\n", med.ExpiryDate)
	}
}
