package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleaninvoice-backend/models"

	"github.com/stretchr/testify/assert"
)

type failingFetcher struct{}

func (failingFetcher) FetchBuildings(ctx context.Context) ([]models.Building, error) {
	return nil, errors.New("spreadsheet unreachable")
}

func (failingFetcher) FetchUnits(ctx context.Context) ([]models.Unit, error) {
	return nil, errors.New("spreadsheet unreachable")
}

func (failingFetcher) Available(ctx context.Context) bool { return false }

func TestIsStale(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-1 * time.Hour)
	old := now.Add(-48 * time.Hour)

	tests := []struct {
		name  string
		ttl   time.Duration
		state models.CatalogState
		want  bool
	}{
		{
			name:  "never synced is stale",
			ttl:   24 * time.Hour,
			state: models.CatalogState{},
			want:  true,
		},
		{
			name:  "recent sync is fresh",
			ttl:   24 * time.Hour,
			state: models.CatalogState{LastSyncAt: &recent},
			want:  false,
		},
		{
			name:  "expired sync is stale",
			ttl:   24 * time.Hour,
			state: models.CatalogState{LastSyncAt: &old},
			want:  true,
		},
		{
			name:  "permanent mode never expires",
			ttl:   24 * time.Hour,
			state: models.CatalogState{LastSyncAt: &old, PermanentMode: true},
			want:  false,
		},
		{
			name:  "zero ttl never expires",
			ttl:   0,
			state: models.CatalogState{LastSyncAt: &old},
			want:  false,
		},
		{
			name:  "permanent mode without a sync is still stale",
			ttl:   24 * time.Hour,
			state: models.CatalogState{PermanentMode: true},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &CatalogService{ttl: tt.ttl}
			assert.Equal(t, tt.want, s.isStale(tt.state, now))
		})
	}
}

func TestFetchUsesFallbackWithoutFetcher(t *testing.T) {
	s := &CatalogService{}

	buildings, units, source := s.fetch(context.Background())

	assert.Equal(t, models.CatalogSourceFallback, source)
	assert.Equal(t, fallbackBuildings, buildings)
	assert.Equal(t, fallbackUnits, units)
}

func TestFetchUsesFallbackOnFetchError(t *testing.T) {
	s := &CatalogService{fetcher: failingFetcher{}}

	buildings, units, source := s.fetch(context.Background())

	assert.Equal(t, models.CatalogSourceFallback, source)
	assert.Len(t, buildings, 4)
	assert.Len(t, units, 14)
}

func TestFallbackDataIntegrity(t *testing.T) {
	buildingIDs := make(map[string]bool, len(fallbackBuildings))
	for _, b := range fallbackBuildings {
		assert.False(t, buildingIDs[b.ID], "duplicate building ID %s", b.ID)
		buildingIDs[b.ID] = true
		assert.NotEmpty(t, b.Name)
	}

	unitIDs := make(map[string]bool, len(fallbackUnits))
	for _, u := range fallbackUnits {
		assert.False(t, unitIDs[u.ID], "duplicate unit ID %s", u.ID)
		unitIDs[u.ID] = true
		assert.True(t, buildingIDs[u.BuildingID], "unit %s references unknown building %s", u.ID, u.BuildingID)
		assert.Greater(t, u.ServicePrice, 0.0, "unit %s has no price", u.ID)
	}
}
