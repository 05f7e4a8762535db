package services

import (
	"math"
	"testing"

	"cleaninvoice-backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateBusinessMetrics(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	cleaner := models.Cleaner{Name: "Maria", StartDate: "2025-08-01", EndDate: "2025-08-11"}
	services := []models.CleaningService{
		{Date: "2025-08-02", Building: "1", Unit: "1", CleaningWithPartner: true, PartnerName: "Ana", ExtraTime: ExtraTimeNone},
		{Date: "2025-08-03", Building: "1", Unit: "2", ExtraTime: ExtraTime1Hour, ExtrasDescription: "balcony"},
	}
	checkins := []models.CheckinService{
		{Date: "2025-08-04", Building: "2", Unit: "7", Amount: 50},
	}

	m := CalculateBusinessMetrics(cleaner, services, checkins, pricing)

	// 60 (partner) + 128 (110 + 18 extra) + 50
	if !almostEqual(m.TotalRevenue, 238) {
		t.Errorf("TotalRevenue = %v, want 238", m.TotalRevenue)
	}
	if m.TotalServices != 3 {
		t.Errorf("TotalServices = %d, want 3", m.TotalServices)
	}
	if m.UniqueBuildings != 2 {
		t.Errorf("UniqueBuildings = %d, want 2", m.UniqueBuildings)
	}
	if m.PartnerServices != 1 {
		t.Errorf("PartnerServices = %d, want 1", m.PartnerServices)
	}
	if m.ExtraTimeServices != 1 {
		t.Errorf("ExtraTimeServices = %d, want 1", m.ExtraTimeServices)
	}
	if !almostEqual(m.ExtraTimeRevenue, 18) {
		t.Errorf("ExtraTimeRevenue = %v, want 18", m.ExtraTimeRevenue)
	}
	if m.PeriodDays != 10 {
		t.Errorf("PeriodDays = %d, want 10", m.PeriodDays)
	}
	if !almostEqual(m.ServicesPerDay, 0.3) {
		t.Errorf("ServicesPerDay = %v, want 0.3", m.ServicesPerDay)
	}
	if !almostEqual(m.RevenuePerDay, 23.8) {
		t.Errorf("RevenuePerDay = %v, want 23.8", m.RevenuePerDay)
	}
	if !almostEqual(m.PartnerShare, 100.0/3) {
		t.Errorf("PartnerShare = %v, want %v", m.PartnerShare, 100.0/3)
	}
	if !almostEqual(m.ExtraTimeShare, 18.0/238*100) {
		t.Errorf("ExtraTimeShare = %v, want %v", m.ExtraTimeShare, 18.0/238*100)
	}
	if !almostEqual(m.AverageServiceValue, 238.0/3) {
		t.Errorf("AverageServiceValue = %v, want %v", m.AverageServiceValue, 238.0/3)
	}
}

func TestCalculateBusinessMetricsEmpty(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	m := CalculateBusinessMetrics(models.Cleaner{}, nil, nil, pricing)

	if m.TotalRevenue != 0 || m.TotalServices != 0 || m.AverageServiceValue != 0 ||
		m.ServicesPerDay != 0 || m.RevenuePerDay != 0 || m.PartnerShare != 0 ||
		m.ExtraTimeShare != 0 {
		t.Errorf("empty input must yield zero metrics, got %+v", m)
	}
}
