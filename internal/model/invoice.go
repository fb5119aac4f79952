package model

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// LineItem is embedded in exactly one invoice and never edited afterwards.
type LineItem struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	ProcedureCode string  `json:"procedure_code"`
}

// Invoice bills a patient for a set of line items. Total is computed once at
// creation, in line-item insertion order, and only Status mutates afterwards.
type Invoice struct {
	ID        int           `json:"id"`
	PatientID int           `json:"patient_id"`
	LineItems []LineItem    `json:"line_items"`
	Total     float64       `json:"total"`
	IssueDate string        `json:"issue_date"`
	Status    InvoiceStatus `json:"status"`
}

type LineItemRequest struct {
	Description   string  `json:"description" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	ProcedureCode string  `json:"procedure_code"`
}
