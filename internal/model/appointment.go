package model

// Appointment links a patient and a staff member at a date and time. Both ids
// are stored as given, without existence checks.
type Appointment struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PatientID int    `json:"patient_id"`
	StaffID   int    `json:"staff_id"`
}

type CreateAppointmentRequest struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	StaffID   int    `json:"staff_id" validate:"required,gt=0"`
}
