package console

import (
	"context"
	"fmt"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

func (h *Handler) patientMenu(ctx context.Context) {
	for {
		fmt.Fprintln(h.out, "\n"+header("=== PATIENTS ==="))
		fmt.Fprintln(h.out, "1. Add a patient")
		fmt.Fprintln(h.out, "2. List patients")
		fmt.Fprintln(h.out, "3. Add a medical note")
		fmt.Fprintln(h.out, "4. Add a treatment")
		fmt.Fprintln(h.out, "5. Add an allergy")
		fmt.Fprintln(h.out, "6. Add a history entry")
		fmt.Fprintln(h.out, "7. Set urgency level")
		fmt.Fprintln(h.out, "8. Back")

		switch h.prompt.ReadInt("\nChoice: ") {
		case 1:
			h.addPatient(ctx)
		case 2:
			h.listPatients(ctx)
		case 3:
			h.addMedicalNote(ctx)
		case 4:
			h.addTreatment(ctx)
		case 5:
			h.addAllergy(ctx)
		case 6:
			h.addHistory(ctx)
		case 7:
			h.setUrgency(ctx)
		case 8:
			return
		default:
			if h.prompt.eof {
				return
			}
			fmt.Fprintln(h.out, failure("Invalid choice."))
		}
	}
}

func (h *Handler) addPatient(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== NEW PATIENT ==="))
	req := &model.CreatePatientRequest{
		LastName:     h.prompt.ReadString("Last name: "),
		FirstName:    h.prompt.ReadString("First name: "),
		BirthDate:    h.prompt.ReadString("Birth date (DD/MM/YYYY): "),
		HealthNumber: h.prompt.ReadString("National health number: "),
	}

	if _, err := h.svc.Patients.AddPatient(ctx, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nPatient added."))
}

func (h *Handler) listPatients(ctx context.Context) {
	fmt.Fprintln(h.out, "\n"+section("=== PATIENTS ==="))
	for _, p := range h.svc.Patients.ListPatients(ctx) {
		fmt.Fprintln(h.out, divider())
		fmt.Fprintf(h.out, "ID: %d\n", p.ID)
		fmt.Fprintf(h.out, "Name: %s %s\n", p.LastName, p.FirstName)
		fmt.Fprintf(h.out, "Birth date: %s\n", p.BirthDate)
		fmt.Fprintf(h.out, "Health number: %s\n", p.HealthNumber)
		if p.Urgency != nil {
			fmt.Fprintf(h.out, "Urgency: %s\n", *p.Urgency)
		}
	}
}

func (h *Handler) addMedicalNote(ctx context.Context) {
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")

	fmt.Fprintln(h.out, "\n"+section("=== NEW MEDICAL NOTE ==="))
	req := &model.AddNoteRequest{
		Content: h.prompt.ReadString("Note content: "),
		Author:  h.prompt.ReadInt("Author staff ID: "),
	}

	if err := h.svc.Patients.AddNote(ctx, patientID, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nMedical note added."))
}

func (h *Handler) addTreatment(ctx context.Context) {
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")

	fmt.Fprintln(h.out, "\n"+section("=== NEW TREATMENT ==="))
	req := &model.AddTreatmentRequest{
		Medication:   h.prompt.ReadString("Medication: "),
		Dosage:       h.prompt.ReadString("Dosage: "),
		StartDate:    h.prompt.ReadString("Start date (DD/MM/YYYY): "),
		PrescribedBy: h.prompt.ReadInt("Prescribing staff ID: "),
	}
	if end := h.prompt.ReadString("End date (DD/MM/YYYY, empty if open): "); end != "" {
		req.EndDate = &end
	}

	if err := h.svc.Patients.AddTreatment(ctx, patientID, req); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nTreatment added."))
}

func (h *Handler) addAllergy(ctx context.Context) {
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")
	allergy := h.prompt.ReadString("Allergy: ")

	if err := h.svc.Patients.AddAllergy(ctx, patientID, allergy); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nAllergy recorded."))
}

func (h *Handler) addHistory(ctx context.Context) {
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")
	entry := h.prompt.ReadString("History entry: ")

	if err := h.svc.Patients.AddHistory(ctx, patientID, entry); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nHistory entry recorded."))
}

func (h *Handler) setUrgency(ctx context.Context) {
	h.listPatients(ctx)
	patientID := h.prompt.ReadInt("Patient ID: ")

	fmt.Fprintln(h.out, "Urgency level:")
	fmt.Fprintln(h.out, "1. Low")
	fmt.Fprintln(h.out, "2. Medium")
	fmt.Fprintln(h.out, "3. High")
	fmt.Fprintln(h.out, "4. Critical")

	var level model.UrgencyLevel
	switch h.prompt.ReadInt("Choice: ") {
	case 1:
		level = model.UrgencyLow
	case 2:
		level = model.UrgencyMedium
	case 3:
		level = model.UrgencyHigh
	case 4:
		level = model.UrgencyCritical
	default:
		fmt.Fprintln(h.out, failure("Invalid choice."))
		return
	}

	if err := h.svc.Patients.SetUrgency(ctx, patientID, level); err != nil {
		h.printErr(err)
		return
	}
	fmt.Fprintln(h.out, success("\nUrgency level updated."))
}
