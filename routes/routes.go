package routes

import (
	"os"

	"cleaninvoice-backend/config"
	"cleaninvoice-backend/controllers"
	"cleaninvoice-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(invoice *controllers.InvoiceController, catalog *controllers.CatalogController) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("FRONTEND_ORIGIN"); extra != "" {
		origins = append(origins, extra)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/buildings", catalog.GetBuildings)
			catalogGroup.GET("/buildings/:id/units", catalog.GetUnitsByBuilding)
			catalogGroup.GET("/units", catalog.GetUnits)
			catalogGroup.GET("/units/:id/price", catalog.GetUnitPrice)
			catalogGroup.GET("/status", catalog.Status)

			// Cache administration
			admin := catalogGroup.Group("")
			admin.Use(utils.RequireAdmin())
			{
				admin.POST("/refresh", catalog.Refresh)
				admin.DELETE("/cache", catalog.ClearCache)
				admin.PUT("/cache-mode", catalog.UpdateCacheMode)
			}
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("/preview", invoice.Preview)
			invoices.POST("/generate", invoice.Generate)
			invoices.POST("/export/excel", invoice.ExportExcel)
			invoices.POST("/export/pdf", invoice.ExportPDF)
		}

		// Metrics route
		api.POST("/metrics", invoice.Metrics)
	}

	return r
}
