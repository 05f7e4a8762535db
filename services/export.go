package services

import (
	"fmt"
	"strings"
	"time"

	"cleaninvoice-backend/models"
)

// InvoiceExportLine is one printable row of the invoice document.
type InvoiceExportLine struct {
	Date     string
	Kind     string // "Cleaning" or "Check-in"
	Building string
	Unit     string
	Details  string
	Amount   float64
}

// InvoiceExportData is everything the Excel/PDF renderers need,
// assembled once so both formats print identical content.
type InvoiceExportData struct {
	InvoiceNumber string
	CleanerName   string
	Period        string
	Lines         []InvoiceExportLine
	CleaningTotal float64
	CheckinTotal  float64
	Total         float64
	GeneratedAt   time.Time
}

// BuildInvoiceExport flattens an invoice into printable rows, resolving
// building and unit IDs to their catalog names. Unknown IDs print as-is.
func BuildInvoiceExport(
	invoice models.InvoiceData,
	pricing *PricingService,
	buildings []models.Building,
	units []models.Unit,
) InvoiceExportData {
	buildingNames := make(map[string]string, len(buildings))
	for _, b := range buildings {
		buildingNames[b.ID] = b.Name
	}
	unitNames := make(map[string]string, len(units))
	for _, u := range units {
		unitNames[u.ID] = u.Name
	}

	resolve := func(names map[string]string, id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}

	data := InvoiceExportData{
		InvoiceNumber: invoice.InvoiceNumber,
		CleanerName:   invoice.Cleaner.Name,
		GeneratedAt:   time.Now(),
	}
	if invoice.Cleaner.StartDate != "" || invoice.Cleaner.EndDate != "" {
		data.Period = fmt.Sprintf("%s - %s", invoice.Cleaner.StartDate, invoice.Cleaner.EndDate)
	}

	for _, s := range invoice.Services {
		data.Lines = append(data.Lines, InvoiceExportLine{
			Date:     s.Date,
			Kind:     "Cleaning",
			Building: resolve(buildingNames, s.Building),
			Unit:     resolve(unitNames, s.Unit),
			Details:  cleaningDetails(s),
			Amount:   s.Amount,
		})
		data.CleaningTotal += s.Amount
	}

	for _, s := range invoice.CheckinServices {
		data.Lines = append(data.Lines, InvoiceExportLine{
			Date:     s.Date,
			Kind:     "Check-in",
			Building: resolve(buildingNames, s.Building),
			Unit:     resolve(unitNames, s.Unit),
			Amount:   s.Amount,
		})
		data.CheckinTotal += s.Amount
	}

	data.Total = data.CleaningTotal + data.CheckinTotal
	return data
}

func cleaningDetails(s models.CleaningService) string {
	var parts []string
	if s.CleaningWithPartner {
		parts = append(parts, "with partner "+s.PartnerName)
	}
	if s.ExtraTime != "" && s.ExtraTime != ExtraTimeNone {
		parts = append(parts, "extra time: "+s.ExtraTime)
	}
	if s.ItemsCost > 0 {
		parts = append(parts, fmt.Sprintf("items: %s ($%.2f)", s.PurchasedItems, s.ItemsCost))
	}
	return strings.Join(parts, ", ")
}
