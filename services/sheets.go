package services

import (
	"context"
	"fmt"
	"strconv"

	"cleaninvoice-backend/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Default ranges in the catalog spreadsheet. Row 1 is headers.
const (
	defaultBuildingsRange = "Buildings!A2:F"
	defaultUnitsRange     = "Units!A2:H"
)

// SheetsConfig points at the Google Sheets document holding the
// building/unit catalog.
type SheetsConfig struct {
	APIKey         string
	SpreadsheetID  string
	BuildingsRange string
	UnitsRange     string
}

// SheetsClient reads catalog reference data from Google Sheets.
type SheetsClient struct {
	svc *sheets.Service
	cfg SheetsConfig
}

func NewSheetsClient(ctx context.Context, cfg SheetsConfig) (*SheetsClient, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet ID is required")
	}
	if cfg.BuildingsRange == "" {
		cfg.BuildingsRange = defaultBuildingsRange
	}
	if cfg.UnitsRange == "" {
		cfg.UnitsRange = defaultUnitsRange
	}

	svc, err := sheets.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &SheetsClient{svc: svc, cfg: cfg}, nil
}

// FetchBuildings reads the buildings range. Expected columns:
// id, name, address, city, state, zip.
func (c *SheetsClient) FetchBuildings(ctx context.Context) ([]models.Building, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, c.cfg.BuildingsRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch buildings: %w", err)
	}

	buildings := make([]models.Building, 0, len(resp.Values))
	for _, row := range resp.Values {
		id := cellString(row, 0)
		name := cellString(row, 1)
		if id == "" || name == "" {
			continue
		}
		buildings = append(buildings, models.Building{
			ID:      id,
			Name:    name,
			Address: cellString(row, 2),
			City:    cellString(row, 3),
			State:   cellString(row, 4),
			ZipCode: cellString(row, 5),
		})
	}
	return buildings, nil
}

// FetchUnits reads the units range. Expected columns:
// id, buildingId, name, servicePrice, type, bedrooms, bathrooms, squareFeet.
func (c *SheetsClient) FetchUnits(ctx context.Context) ([]models.Unit, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, c.cfg.UnitsRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch units: %w", err)
	}

	units := make([]models.Unit, 0, len(resp.Values))
	for _, row := range resp.Values {
		id := cellString(row, 0)
		buildingID := cellString(row, 1)
		if id == "" || buildingID == "" {
			continue
		}
		units = append(units, models.Unit{
			ID:           id,
			BuildingID:   buildingID,
			Name:         cellString(row, 2),
			ServicePrice: cellFloat(row, 3),
			UnitType:     cellString(row, 4),
			Bedrooms:     cellInt(row, 5),
			Bathrooms:    cellInt(row, 6),
			SquareFeet:   cellInt(row, 7),
		})
	}
	return units, nil
}

// Available reports whether the spreadsheet can be reached.
func (c *SheetsClient) Available(ctx context.Context) bool {
	_, err := c.svc.Spreadsheets.Get(c.cfg.SpreadsheetID).Fields("spreadsheetId").
		Context(ctx).Do()
	return err == nil
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func cellFloat(row []interface{}, i int) float64 {
	f, err := strconv.ParseFloat(cellString(row, i), 64)
	if err != nil {
		return 0
	}
	return f
}

func cellInt(row []interface{}, i int) int {
	n, err := strconv.Atoi(cellString(row, i))
	if err != nil {
		return 0
	}
	return n
}
