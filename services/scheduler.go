package services

import (
	"context"
	"log"
	"time"

	cron "github.com/robfig/cron/v3"
)

// StartCatalogScheduler refreshes the catalog cache every morning so the
// form always opens against recent spreadsheet data. The returned cron
// can be stopped on shutdown.
func StartCatalogScheduler(catalog *CatalogService) *cron.Cron {
	c := cron.New()

	// Run daily at 6 AM
	c.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := catalog.Refresh(ctx); err != nil {
			log.Printf("scheduler: catalog refresh failed: %v", err)
			return
		}
		log.Println("scheduler: catalog refreshed")
	})

	c.Start()
	log.Println("Catalog refresh scheduler started")
	return c
}
