package services

import (
	"cleaninvoice-backend/models"
	"cleaninvoice-backend/utils"
)

// BusinessMetrics are derived indicators for the current form state.
type BusinessMetrics struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalServices       int     `json:"totalServices"`
	UniqueBuildings     int     `json:"uniqueBuildings"`
	AverageServiceValue float64 `json:"averageServiceValue"`
	PartnerServices     int     `json:"partnerServices"`
	ExtraTimeServices   int     `json:"extraTimeServices"`
	PeriodDays          int     `json:"periodDays"`
	ServicesPerDay      float64 `json:"servicesPerDay"`
	RevenuePerDay       float64 `json:"revenuePerDay"`
	PartnerShare        float64 `json:"partnerShare"`     // percent of services done with a partner
	ExtraTimeRevenue    float64 `json:"extraTimeRevenue"` // revenue from extra time
	ExtraTimeShare      float64 `json:"extraTimeShare"`   // percent of revenue from extra time
}

// CalculateBusinessMetrics derives all metrics from the current cleaner,
// line items, and pricing snapshot. Pure; zero denominators yield zero.
func CalculateBusinessMetrics(
	cleaner models.Cleaner,
	services []models.CleaningService,
	checkinServices []models.CheckinService,
	pricing *PricingService,
) BusinessMetrics {
	var m BusinessMetrics

	m.TotalRevenue = pricing.InvoiceTotal(services, checkinServices)
	m.TotalServices = len(services) + len(checkinServices)
	m.UniqueBuildings = countDistinctBuildings(services, checkinServices)

	if m.TotalServices > 0 {
		m.AverageServiceValue = m.TotalRevenue / float64(m.TotalServices)
	}

	for _, s := range services {
		if s.CleaningWithPartner {
			m.PartnerServices++
		}
		if s.ExtraTime != "" && s.ExtraTime != ExtraTimeNone {
			m.ExtraTimeServices++
		}
		m.ExtraTimeRevenue += pricing.ExtraTimeCost(s.ExtraTime)
	}

	if start, err := utils.ParseISODate(cleaner.StartDate); err == nil {
		if end, err := utils.ParseISODate(cleaner.EndDate); err == nil {
			m.PeriodDays = utils.DaysBetween(start, end)
		}
	}

	if m.PeriodDays > 0 {
		m.ServicesPerDay = float64(m.TotalServices) / float64(m.PeriodDays)
		m.RevenuePerDay = m.TotalRevenue / float64(m.PeriodDays)
	}

	if m.TotalServices > 0 {
		m.PartnerShare = float64(m.PartnerServices) / float64(m.TotalServices) * 100
	}
	if m.TotalRevenue > 0 {
		m.ExtraTimeShare = m.ExtraTimeRevenue / m.TotalRevenue * 100
	}

	return m
}
