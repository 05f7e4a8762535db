package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"cleaninvoice-backend/config"
	"cleaninvoice-backend/controllers"
	"cleaninvoice-backend/models"
	"cleaninvoice-backend/routes"
	"cleaninvoice-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Unit{},
		&models.CatalogState{},
	)
}

func main() {
	catalog := services.NewCatalogService(config.DB, newSheetsFetcher(), catalogTTL())

	// Warm the cache on startup; the fallback data set covers a failed
	// first fetch, so this only errors on storage problems.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("Warning: initial catalog refresh failed: %v", err)
	}
	cancel()

	scheduler := services.StartCatalogScheduler(catalog)
	defer scheduler.Stop()

	invoiceController := controllers.NewInvoiceController(catalog)
	catalogController := controllers.NewCatalogController(catalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(invoiceController, catalogController)
	printRoutes(r)
	r.Run(":" + port)
}

// newSheetsFetcher builds the spreadsheet client, or returns nil when no
// spreadsheet is configured (the catalog then serves fallback data).
func newSheetsFetcher() services.CatalogFetcher {
	spreadsheetID := os.Getenv("GOOGLE_SHEETS_ID")
	if spreadsheetID == "" {
		log.Println("GOOGLE_SHEETS_ID not set, catalog will use fallback data")
		return nil
	}

	client, err := services.NewSheetsClient(context.Background(), services.SheetsConfig{
		APIKey:        os.Getenv("GOOGLE_SHEETS_API_KEY"),
		SpreadsheetID: spreadsheetID,
	})
	if err != nil {
		log.Printf("Warning: sheets client unavailable, catalog will use fallback data: %v", err)
		return nil
	}
	return client
}

func catalogTTL() time.Duration {
	if env := os.Getenv("CATALOG_CACHE_TTL_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			return time.Duration(h) * time.Hour
		}
	}
	return 24 * time.Hour
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
