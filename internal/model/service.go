package model

type EquipmentStatus string

const (
	EquipmentStatusFunctional       EquipmentStatus = "functional"
	EquipmentStatusUnderMaintenance EquipmentStatus = "under_maintenance"
	EquipmentStatusOutOfService     EquipmentStatus = "out_of_service"
)

// Equipment is owned by exactly one service; its id is allocated within the
// owning service's equipment list.
type Equipment struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Status          EquipmentStatus `json:"status"`
	LastMaintenance string          `json:"last_maintenance"`
	NextMaintenance string          `json:"next_maintenance"`
}

// Service is a hospital department. ChiefStaffID and AssignedStaff are staff
// ids stored unchecked.
type Service struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	ChiefStaffID  int         `json:"chief_staff_id"`
	Capacity      int         `json:"capacity"`
	AssignedStaff []int       `json:"assigned_staff"`
	Equipment     []Equipment `json:"equipment"`
}

type CreateServiceRequest struct {
	Name         string `json:"name" validate:"required"`
	ChiefStaffID int    `json:"chief_staff_id" validate:"required,gt=0"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
}

type CreateEquipmentRequest struct {
	Name            string `json:"name" validate:"required"`
	LastMaintenance string `json:"last_maintenance"`
	NextMaintenance string `json:"next_maintenance"`
}
