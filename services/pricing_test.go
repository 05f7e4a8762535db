package services

import (
	"math"
	"testing"

	"cleaninvoice-backend/models"
)

func testUnits() []models.Unit {
	return []models.Unit{
		{ID: "1", BuildingID: "1", Name: "3209", ServicePrice: 120.00},
		{ID: "2", BuildingID: "1", Name: "3208", ServicePrice: 110.00},
		{ID: "7", BuildingID: "2", Name: "A1", ServicePrice: 100.00},
	}
}

func TestExtraTimeCost(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"no extra time", ExtraTimeNone, 0},
		{"30 minutes", ExtraTime30Minutes, 9.00},
		{"1 hour", ExtraTime1Hour, 18.00},
		{"1.5 hours", ExtraTime90Minutes, 27.00},
		{"2 hours", ExtraTime2Hours, 36.00},
		{"empty label", "", 0},
		{"unknown label", "45 minutes", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pricing.ExtraTimeCost(tt.label); got != tt.want {
				t.Errorf("ExtraTimeCost(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestServicePrice(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	tests := []struct {
		name    string
		service models.CleaningService
		want    float64
	}{
		{
			name:    "base price only",
			service: models.CleaningService{Unit: "1", ExtraTime: ExtraTimeNone},
			want:    120.00,
		},
		{
			name:    "partner halves base price",
			service: models.CleaningService{Unit: "1", CleaningWithPartner: true, ExtraTime: ExtraTimeNone},
			want:    60.00,
		},
		{
			name: "partner plus extra time plus items",
			service: models.CleaningService{
				Unit:                "1",
				CleaningWithPartner: true,
				ExtraTime:           ExtraTime30Minutes,
				ItemsCost:           5.00,
			},
			want: 74.00,
		},
		{
			name:    "unknown unit prices at zero base",
			service: models.CleaningService{Unit: "999", ExtraTime: ExtraTime1Hour, ItemsCost: 10.00},
			want:    28.00,
		},
		{
			name:    "negative items cost is ignored",
			service: models.CleaningService{Unit: "2", ExtraTime: ExtraTimeNone, ItemsCost: -25.00},
			want:    110.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pricing.ServicePrice(tt.service); got != tt.want {
				t.Errorf("ServicePrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvoiceTotal(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	cleanings := []models.CleaningService{
		{Unit: "1", ExtraTime: ExtraTimeNone},
		{Unit: "2", CleaningWithPartner: true, ExtraTime: ExtraTime1Hour},
	}
	checkins := []models.CheckinService{
		{Unit: "7", Amount: 45.00},
	}

	// 120 + (55 + 18) + 45
	if got, want := pricing.InvoiceTotal(cleanings, checkins), 238.00; got != want {
		t.Errorf("InvoiceTotal() = %v, want %v", got, want)
	}

	cleaningTotal := pricing.CleaningServicesTotal(cleanings)
	checkinTotal := pricing.CheckinServicesTotal(checkins)
	if got := pricing.InvoiceTotal(cleanings, checkins); got != cleaningTotal+checkinTotal {
		t.Errorf("InvoiceTotal() = %v, want sum of group totals %v", got, cleaningTotal+checkinTotal)
	}
}

func TestInvoiceTotalEmpty(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	if got := pricing.InvoiceTotal(nil, nil); got != 0 {
		t.Errorf("InvoiceTotal(nil, nil) = %v, want 0", got)
	}
}

func TestBreakdown(t *testing.T) {
	pricing := NewPricingService(DefaultPricingConfig(), testUnits())

	service := models.CleaningService{
		Unit:                "1",
		CleaningWithPartner: true,
		ExtraTime:           ExtraTime1Hour,
		ItemsCost:           12.50,
	}

	b := pricing.Breakdown(service)

	if b.BasePrice != 120.00 {
		t.Errorf("BasePrice = %v, want 120", b.BasePrice)
	}
	if b.PartnerDiscount != 60.00 {
		t.Errorf("PartnerDiscount = %v, want 60", b.PartnerDiscount)
	}
	if b.ExtraTimeCost != 18.00 {
		t.Errorf("ExtraTimeCost = %v, want 18", b.ExtraTimeCost)
	}
	if b.ItemsCost != 12.50 {
		t.Errorf("ItemsCost = %v, want 12.50", b.ItemsCost)
	}
	if want := b.BasePrice - b.PartnerDiscount + b.ExtraTimeCost + b.ItemsCost; math.Abs(b.Total-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", b.Total, want)
	}
	if b.Total != pricing.ServicePrice(service) {
		t.Errorf("Breakdown total %v disagrees with ServicePrice %v", b.Total, pricing.ServicePrice(service))
	}
}
