package model

// StaffStatusOnDuty is the status every staff member starts with.
const StaffStatusOnDuty = "on duty"

// Staff is a member of the hospital workforce. Its id is referenced by
// appointments, services, treatments and medical notes.
type Staff struct {
	ID             int      `json:"id"`
	LastName       string   `json:"last_name"`
	FirstName      string   `json:"first_name"`
	Specialty      string   `json:"specialty"`
	Status         string   `json:"status"`
	Qualifications []string `json:"qualifications"`
}

type CreateStaffRequest struct {
	LastName  string `json:"last_name" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
}
