// Package services contains the pricing and validation engines behind the
// cleaning invoice form, plus the catalog gateway and export builders.
package services

import (
	"log"
	"math"

	"cleaninvoice-backend/models"
)

// Extra time labels accepted on cleaning services. Any other label is
// silently priced as zero minutes.
const (
	ExtraTimeNone      = "No extra time"
	ExtraTime30Minutes = "30 minutes"
	ExtraTime1Hour     = "1 hour"
	ExtraTime90Minutes = "1.5 hours"
	ExtraTime2Hours    = "2 hours"
)

var extraTimeMinutes = map[string]int{
	ExtraTime30Minutes: 30,
	ExtraTime1Hour:     60,
	ExtraTime90Minutes: 90,
	ExtraTime2Hours:    120,
}

// PricingConfig holds the tariff constants. PartnerDiscount is the
// multiplier applied to the base price when two cleaners split a job
// (0.5 = half price). ExtraTimeRate is billed per started 15 minutes.
type PricingConfig struct {
	BasePrice            float64
	PartnerDiscount      float64
	ExtraTimeRate        float64
	MinimumServiceAmount float64
	MaximumServiceAmount float64
}

// DefaultPricingConfig returns the standard tariff.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BasePrice:            0,
		PartnerDiscount:      0.5,
		ExtraTimeRate:        4.5,
		MinimumServiceAmount: 10,
		MaximumServiceAmount: 1000,
	}
}

// PricingService computes derived amounts from an immutable unit catalog
// snapshot. It holds no mutable state and never touches the records it
// is given; callers construct a fresh instance whenever the catalog
// snapshot changes.
type PricingService struct {
	config PricingConfig
	units  map[string]models.Unit
}

func NewPricingService(config PricingConfig, units []models.Unit) *PricingService {
	byID := make(map[string]models.Unit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	return &PricingService{config: config, units: byID}
}

// BasePrice resolves the catalog price for a unit. Unknown units fall
// back to the configured base price; absence is validation's concern,
// not pricing's.
func (p *PricingService) BasePrice(unitID string) float64 {
	if unit, ok := p.units[unitID]; ok {
		return unit.ServicePrice
	}
	return p.config.BasePrice
}

// ExtraTimeCost prices an extra time label: minutes rounded up to the
// next quarter hour, times the per-quarter-hour rate. The defined labels
// are all multiples of 15 minutes, so the rounding only matters if the
// label set ever grows.
func (p *PricingService) ExtraTimeCost(label string) float64 {
	if label == ExtraTimeNone {
		return 0
	}
	minutes := extraTimeMinutes[label]
	quarterHours := math.Ceil(float64(minutes) / 15)
	return quarterHours * p.config.ExtraTimeRate
}

// ServicePrice computes the full amount of one cleaning service:
// discounted base price plus extra time plus purchased items.
func (p *PricingService) ServicePrice(service models.CleaningService) float64 {
	basePrice := p.BasePrice(service.Unit)

	if service.CleaningWithPartner {
		basePrice = basePrice * p.config.PartnerDiscount
	}

	itemsCost := service.ItemsCost
	if itemsCost < 0 {
		itemsCost = 0
	}

	total := basePrice + p.ExtraTimeCost(service.ExtraTime) + itemsCost

	// Bounds are advisory only: log, never reject.
	if total < p.config.MinimumServiceAmount {
		log.Printf("pricing: service total %.2f is below minimum %.2f", total, p.config.MinimumServiceAmount)
	}
	if total > p.config.MaximumServiceAmount {
		log.Printf("pricing: service total %.2f is above maximum %.2f", total, p.config.MaximumServiceAmount)
	}

	return total
}

// CheckinAmount returns the billable amount of a check-in service.
// Check-in amounts are user-entered and carry no discount logic.
func (p *PricingService) CheckinAmount(service models.CheckinService) float64 {
	return service.Amount
}

// CleaningServicesTotal sums the derived amounts of all cleaning services.
func (p *PricingService) CleaningServicesTotal(services []models.CleaningService) float64 {
	var total float64
	for _, s := range services {
		total += p.ServicePrice(s)
	}
	return total
}

// CheckinServicesTotal sums all check-in amounts.
func (p *PricingService) CheckinServicesTotal(checkins []models.CheckinService) float64 {
	var total float64
	for _, s := range checkins {
		total += p.CheckinAmount(s)
	}
	return total
}

// InvoiceTotal is the sum of both service groups, exact to the cent.
// Rounding happens only at presentation time.
func (p *PricingService) InvoiceTotal(services []models.CleaningService, checkins []models.CheckinService) float64 {
	return p.CleaningServicesTotal(services) + p.CheckinServicesTotal(checkins)
}

// ServiceBreakdown itemizes how a cleaning service amount was computed.
type ServiceBreakdown struct {
	BasePrice       float64 `json:"basePrice"`
	PartnerDiscount float64 `json:"partnerDiscount"`
	ExtraTimeCost   float64 `json:"extraTimeCost"`
	ItemsCost       float64 `json:"itemsCost"`
	Total           float64 `json:"total"`
}

// Breakdown returns the pricing breakdown for a cleaning service.
// PartnerDiscount reports the amount taken off the base price.
func (p *PricingService) Breakdown(service models.CleaningService) ServiceBreakdown {
	basePrice := p.BasePrice(service.Unit)

	var partnerDiscount float64
	if service.CleaningWithPartner {
		partnerDiscount = basePrice * (1 - p.config.PartnerDiscount)
	}

	itemsCost := service.ItemsCost
	if itemsCost < 0 {
		itemsCost = 0
	}

	return ServiceBreakdown{
		BasePrice:       basePrice,
		PartnerDiscount: partnerDiscount,
		ExtraTimeCost:   p.ExtraTimeCost(service.ExtraTime),
		ItemsCost:       itemsCost,
		Total:           p.ServicePrice(service),
	}
}
