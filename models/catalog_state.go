package models

import "time"

// Catalog data sources.
const (
	CatalogSourceSheets   = "sheets"
	CatalogSourceFallback = "fallback"
)

// CatalogState is a single-row table tracking the catalog cache: when it
// was last synced, where the data came from, and whether the cache is
// permanent (never expires) or TTL-based.
type CatalogState struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	LastSyncAt    *time.Time `json:"lastSyncAt"`
	Source        string     `gorm:"type:varchar(20)" json:"source"`
	PermanentMode bool       `gorm:"default:true" json:"permanentMode"`
}
