package models

// Service types offered on the invoice form.
const (
	ServiceTypeNormal  = "normal"
	ServiceTypeDeep    = "deep"
	ServiceTypeMinor   = "minor"
	ServiceTypeCheckin = "checkin"
)

// Cleaner identifies who worked the billing period. It lives only in the
// form session and in invoice requests; it is never persisted.
type Cleaner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // ISO YYYY-MM-DD
	EndDate   string `json:"endDate"`   // ISO YYYY-MM-DD
}

// CleaningService is one billable cleaning line item. Amount is derived
// on the server from the unit's catalog price, the partner discount,
// extra time and purchased items; whatever the client sends in Amount is
// overwritten on every preview/generate call.
type CleaningService struct {
	ID                  string  `json:"id"`
	Type                string  `json:"type"` // normal, deep or minor
	Date                string  `json:"date"`
	Building            string  `json:"building"`
	Unit                string  `json:"unit"`
	Amount              float64 `json:"amount"`
	CleaningWithPartner bool    `json:"cleaningWithPartner"`
	PartnerName         string  `json:"partnerName"`
	ExtraTime           string  `json:"extraTime"`
	ExtrasDescription   string  `json:"extrasDescription"`
	PurchasedItems      string  `json:"purchasedItems"`
	ItemsCost           float64 `json:"itemsCost"`
}

// CheckinService is a billable guest check-in line item. Unlike cleaning
// services its Amount is entered directly by the user; there is no
// partner concept for check-ins.
type CheckinService struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Building string  `json:"building"`
	Unit     string  `json:"unit"`
	Amount   float64 `json:"amount"`
}

// DateGroup is how the form organizes line items: services are added
// under a work day and inherit its date.
type DateGroup struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	CleaningServices []CleaningService `json:"cleaningServices"`
	CheckinServices  []CheckinService  `json:"checkinServices"`
}
