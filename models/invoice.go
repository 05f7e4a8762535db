package models

// InvoiceData is the ephemeral invoice aggregate. It is constructed on
// demand for preview/generation and never persisted; TotalAmount is
// always recomputed from the line items.
type InvoiceData struct {
	InvoiceNumber   string            `json:"invoiceNumber,omitempty"`
	Cleaner         Cleaner           `json:"cleaner"`
	Services        []CleaningService `json:"services"`
	CheckinServices []CheckinService  `json:"checkinServices"`
	TotalAmount     float64           `json:"totalAmount"`
}
