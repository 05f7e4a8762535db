package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cleaninvoice-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fallback catalog used when the spreadsheet is unreachable. Consumers
// cannot tell fallback data from real data; a lookup miss behaves the
// same either way.
var fallbackBuildings = []models.Building{
	{ID: "1", Name: "21 Iceboat", Address: "21 Iceboat Dr, Miami, FL"},
	{ID: "2", Name: "Building B", Address: "123 Main St, Miami, FL"},
	{ID: "3", Name: "Building C", Address: "456 Oak Ave, Miami, FL"},
	{ID: "4", Name: "Building D", Address: "789 Pine Rd, Miami, FL"},
}

var fallbackUnits = []models.Unit{
	{ID: "1", BuildingID: "1", Name: "3209", ServicePrice: 120.00},
	{ID: "2", BuildingID: "1", Name: "3208", ServicePrice: 110.00},
	{ID: "3", BuildingID: "1", Name: "3207", ServicePrice: 125.00},
	{ID: "4", BuildingID: "1", Name: "3206", ServicePrice: 115.00},
	{ID: "5", BuildingID: "1", Name: "3205", ServicePrice: 130.00},
	{ID: "6", BuildingID: "1", Name: "3204", ServicePrice: 105.00},
	{ID: "7", BuildingID: "2", Name: "A1", ServicePrice: 100.00},
	{ID: "8", BuildingID: "2", Name: "A2", ServicePrice: 95.00},
	{ID: "9", BuildingID: "2", Name: "B1", ServicePrice: 110.00},
	{ID: "10", BuildingID: "2", Name: "B2", ServicePrice: 105.00},
	{ID: "11", BuildingID: "3", Name: "C1", ServicePrice: 90.00},
	{ID: "12", BuildingID: "3", Name: "C2", ServicePrice: 85.00},
	{ID: "13", BuildingID: "4", Name: "D1", ServicePrice: 140.00},
	{ID: "14", BuildingID: "4", Name: "D2", ServicePrice: 135.00},
}

// CatalogFetcher is the remote side of the catalog gateway. SheetsClient
// implements it; tests substitute stubs.
type CatalogFetcher interface {
	FetchBuildings(ctx context.Context) ([]models.Building, error)
	FetchUnits(ctx context.Context) ([]models.Unit, error)
	Available(ctx context.Context) bool
}

// CatalogStatus describes the cache for the status/admin endpoints.
type CatalogStatus struct {
	Connected     bool       `json:"connected"`
	Source        string     `json:"source"`
	Buildings     int64      `json:"buildings"`
	Units         int64      `json:"units"`
	LastSyncAt    *time.Time `json:"lastSyncAt"`
	PermanentMode bool       `json:"permanentMode"`
	Stale         bool       `json:"stale"`
}

// CatalogService is the catalog gateway: building/unit reference data
// cached in the database, refreshed from the spreadsheet, seeded from
// the fallback set when the spreadsheet is unreachable.
type CatalogService struct {
	db      *gorm.DB
	fetcher CatalogFetcher // nil when no spreadsheet is configured
	ttl     time.Duration
}

func NewCatalogService(db *gorm.DB, fetcher CatalogFetcher, ttl time.Duration) *CatalogService {
	return &CatalogService{db: db, fetcher: fetcher, ttl: ttl}
}

// Buildings returns the cached buildings, refreshing first if the cache
// is empty or expired.
func (s *CatalogService) Buildings(ctx context.Context) ([]models.Building, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	var buildings []models.Building
	if err := s.db.WithContext(ctx).Order("name").Find(&buildings).Error; err != nil {
		return nil, fmt.Errorf("catalog: load buildings: %w", err)
	}
	return buildings, nil
}

// Units returns the cached units, refreshing first if needed.
func (s *CatalogService) Units(ctx context.Context) ([]models.Unit, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	var units []models.Unit
	if err := s.db.WithContext(ctx).Order("building_id, name").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("catalog: load units: %w", err)
	}
	return units, nil
}

// UnitsByBuilding returns the cached units of one building.
func (s *CatalogService) UnitsByBuilding(ctx context.Context, buildingID string) ([]models.Unit, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	var units []models.Unit
	if err := s.db.WithContext(ctx).Where("building_id = ?", buildingID).
		Order("name").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("catalog: load units for building %s: %w", buildingID, err)
	}
	return units, nil
}

// UnitPrice resolves a unit's base price, halved when cleaning with a
// partner. Unknown units price at 0; absence is reported by validation,
// never here.
func (s *CatalogService) UnitPrice(ctx context.Context, unitID string, withPartner bool) (float64, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return 0, err
	}
	var unit models.Unit
	err := s.db.WithContext(ctx).First(&unit, "id = ?", unitID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("catalog: load unit %s: %w", unitID, err)
	}
	if withPartner {
		return unit.ServicePrice / 2, nil
	}
	return unit.ServicePrice, nil
}

// Refresh replaces the cache from the spreadsheet, falling back to the
// built-in data set when the fetch fails. Only storage errors propagate.
func (s *CatalogService) Refresh(ctx context.Context) error {
	buildings, units, source := s.fetch(ctx)
	return s.replace(ctx, buildings, units, source)
}

// ClearCache drops all cached catalog rows and the sync marker. The next
// read triggers a fresh fetch.
func (s *CatalogService) ClearCache(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Unit{}).Error; err != nil {
			return fmt.Errorf("catalog: clear units: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Building{}).Error; err != nil {
			return fmt.Errorf("catalog: clear buildings: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.CatalogState{}).Error; err != nil {
			return fmt.Errorf("catalog: clear state: %w", err)
		}
		return nil
	})
}

// Status reports cache counts, freshness, and spreadsheet reachability.
func (s *CatalogService) Status(ctx context.Context) (CatalogStatus, error) {
	var status CatalogStatus

	state, err := s.state(ctx)
	if err != nil {
		return status, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Building{}).Count(&status.Buildings).Error; err != nil {
		return status, fmt.Errorf("catalog: count buildings: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Unit{}).Count(&status.Units).Error; err != nil {
		return status, fmt.Errorf("catalog: count units: %w", err)
	}

	status.Source = state.Source
	status.LastSyncAt = state.LastSyncAt
	status.PermanentMode = state.PermanentMode
	status.Stale = s.isStale(state, time.Now())
	status.Connected = s.fetcher != nil && s.fetcher.Available(ctx)

	return status, nil
}

// SetPermanentMode switches the cache between permanent and TTL-based
// expiry.
func (s *CatalogService) SetPermanentMode(ctx context.Context, permanent bool) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	state.PermanentMode = permanent
	if err := s.db.WithContext(ctx).Save(&state).Error; err != nil {
		return fmt.Errorf("catalog: update cache mode: %w", err)
	}
	return nil
}

// ensureFresh refreshes when the cache has never been synced or its TTL
// ran out in non-permanent mode.
func (s *CatalogService) ensureFresh(ctx context.Context) error {
	state, err := s.state(ctx)
	if err != nil {
		return err
	}
	if !s.isStale(state, time.Now()) {
		return nil
	}
	return s.Refresh(ctx)
}

// isStale reports whether the cache needs a refresh at the given time.
// A cache that has never synced is always stale; a permanent cache never
// expires after its first sync.
func (s *CatalogService) isStale(state models.CatalogState, now time.Time) bool {
	if state.LastSyncAt == nil {
		return true
	}
	if state.PermanentMode || s.ttl <= 0 {
		return false
	}
	return now.Sub(*state.LastSyncAt) > s.ttl
}

func (s *CatalogService) fetch(ctx context.Context) ([]models.Building, []models.Unit, string) {
	if s.fetcher == nil {
		return fallbackBuildings, fallbackUnits, models.CatalogSourceFallback
	}

	buildings, err := s.fetcher.FetchBuildings(ctx)
	if err != nil {
		log.Printf("catalog: spreadsheet fetch failed, using fallback data: %v", err)
		return fallbackBuildings, fallbackUnits, models.CatalogSourceFallback
	}

	units, err := s.fetcher.FetchUnits(ctx)
	if err != nil {
		log.Printf("catalog: spreadsheet fetch failed, using fallback data: %v", err)
		return fallbackBuildings, fallbackUnits, models.CatalogSourceFallback
	}

	return buildings, units, models.CatalogSourceSheets
}

func (s *CatalogService) replace(ctx context.Context, buildings []models.Building, units []models.Unit, source string) error {
	now := time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Unit{}).Error; err != nil {
			return fmt.Errorf("catalog: clear units: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Building{}).Error; err != nil {
			return fmt.Errorf("catalog: clear buildings: %w", err)
		}
		if len(buildings) > 0 {
			if err := tx.Omit("Units").Create(&buildings).Error; err != nil {
				return fmt.Errorf("catalog: store buildings: %w", err)
			}
		}
		if len(units) > 0 {
			if err := tx.Create(&units).Error; err != nil {
				return fmt.Errorf("catalog: store units: %w", err)
			}
		}

		state := models.CatalogState{ID: 1, LastSyncAt: &now, Source: source, PermanentMode: true}
		var existing models.CatalogState
		if err := tx.First(&existing, "id = ?", 1).Error; err == nil {
			state.PermanentMode = existing.PermanentMode
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&state).Error; err != nil {
			return fmt.Errorf("catalog: store sync state: %w", err)
		}

		log.Printf("catalog: cache refreshed from %s (%d buildings, %d units)", source, len(buildings), len(units))
		return nil
	})
}

func (s *CatalogService) state(ctx context.Context) (models.CatalogState, error) {
	var state models.CatalogState
	err := s.db.WithContext(ctx).First(&state, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CatalogState{ID: 1, PermanentMode: true}, nil
	}
	if err != nil {
		return state, fmt.Errorf("catalog: load sync state: %w", err)
	}
	return state, nil
}
