package model

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// Treatment is a prescription held in a patient's medical file. PrescribedBy
// is a staff id stored unchecked.
type Treatment struct {
	Medication   string  `json:"medication"`
	Dosage       string  `json:"dosage"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	PrescribedBy int     `json:"prescribed_by"`
}

// MedicalNote is a dated free-text entry in a patient's medical file. Author
// is a staff id stored unchecked.
type MedicalNote struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Author  int    `json:"author"`
}

// MedicalFile is owned by exactly one patient and created empty with them.
type MedicalFile struct {
	History    []string      `json:"history"`
	Allergies  []string      `json:"allergies"`
	BloodType  string        `json:"blood_type"`
	Treatments []Treatment   `json:"treatments"`
	Notes      []MedicalNote `json:"notes"`
}

// NewMedicalFile returns an empty file with all lists allocated.
func NewMedicalFile() MedicalFile {
	return MedicalFile{
		History:    []string{},
		Allergies:  []string{},
		Treatments: []Treatment{},
		Notes:      []MedicalNote{},
	}
}

type Patient struct {
	ID           int           `json:"id"`
	LastName     string        `json:"last_name"`
	FirstName    string        `json:"first_name"`
	BirthDate    string        `json:"birth_date"`
	HealthNumber string        `json:"health_number"`
	MedicalFile  MedicalFile   `json:"medical_file"`
	Urgency      *UrgencyLevel `json:"urgency,omitempty"`
}

type CreatePatientRequest struct {
	LastName     string `json:"last_name" validate:"required"`
	FirstName    string `json:"first_name" validate:"required"`
	BirthDate    string `json:"birth_date" validate:"required"`
	HealthNumber string `json:"health_number" validate:"required"`
}

type AddNoteRequest struct {
	Content string `json:"content" validate:"required"`
	Author  int    `json:"author" validate:"required,gt=0"`
}

type AddTreatmentRequest struct {
	Medication   string  `json:"medication" validate:"required"`
	Dosage       string  `json:"dosage" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      *string `json:"end_date"`
	PrescribedBy int     `json:"prescribed_by" validate:"required,gt=0"`
}
