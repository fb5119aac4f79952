package model

// Medication is a pharmacy stock line. Stock and AlertThreshold are
// non-negative counts.
type Medication struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Stock          int    `json:"stock"`
	AlertThreshold int    `json:"alert_threshold"`
	ExpiryDate     string `json:"expiry_date"`
}

// LowStock reports whether the stock level has reached the alert threshold.
// The boundary is inclusive: stock equal to the threshold is low.
func (m *Medication) LowStock() bool {
	return m.Stock <= m.AlertThreshold
}

// Pharmacy is the singleton inventory, one per Application.
type Pharmacy struct {
	Medications []Medication `json:"medications"`
}

type CreateMedicationRequest struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	Stock          int    `json:"stock" validate:"gte=0"`
	AlertThreshold int    `json:"alert_threshold" validate:"gte=0"`
	ExpiryDate     string `json:"expiry_date" validate:"required"`
}
