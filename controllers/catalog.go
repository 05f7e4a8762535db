// controllers/catalog.go
package controllers

import (
	"context"
	"net/http"
	"strconv"

	"cleaninvoice-backend/models"
	"cleaninvoice-backend/services"
	"cleaninvoice-backend/utils"

	"github.com/gin-gonic/gin"
)

// catalogGateway is everything the catalog endpoints need from the
// gateway. *services.CatalogService implements it.
type catalogGateway interface {
	Buildings(ctx context.Context) ([]models.Building, error)
	Units(ctx context.Context) ([]models.Unit, error)
	UnitsByBuilding(ctx context.Context, buildingID string) ([]models.Unit, error)
	UnitPrice(ctx context.Context, unitID string, withPartner bool) (float64, error)
	Refresh(ctx context.Context) error
	ClearCache(ctx context.Context) error
	Status(ctx context.Context) (services.CatalogStatus, error)
	SetPermanentMode(ctx context.Context, permanent bool) error
}

type CatalogController struct {
	Catalog catalogGateway
}

func NewCatalogController(catalog catalogGateway) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GetBuildings returns all buildings in the catalog.
func (cc *CatalogController) GetBuildings(c *gin.Context) {
	buildings, err := cc.Catalog.Buildings(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve buildings")
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GetUnits returns all units in the catalog.
func (cc *CatalogController) GetUnits(c *gin.Context) {
	units, err := cc.Catalog.Units(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetUnitsByBuilding returns the units of one building. An unknown
// building yields an empty list, not an error.
func (cc *CatalogController) GetUnitsByBuilding(c *gin.Context) {
	buildingID := c.Param("id")
	if buildingID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Building ID is required")
		return
	}

	units, err := cc.Catalog.UnitsByBuilding(c.Request.Context(), buildingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve units")
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetUnitPrice resolves a unit's price, optionally with the partner
// discount applied. Unknown units price at 0.
func (cc *CatalogController) GetUnitPrice(c *gin.Context) {
	unitID := c.Param("id")
	if unitID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Unit ID is required")
		return
	}

	withPartner, _ := strconv.ParseBool(c.Query("withPartner"))

	price, err := cc.Catalog.UnitPrice(c.Request.Context(), unitID, withPartner)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve unit price")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unitId":      unitID,
		"withPartner": withPartner,
		"price":       price,
	})
}

// Status reports cache freshness and spreadsheet connectivity. The form
// shows this as its data-source indicator.
func (cc *CatalogController) Status(c *gin.Context) {
	status, err := cc.Catalog.Status(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read catalog status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// Refresh forces a re-fetch from the spreadsheet, replacing the cache.
func (cc *CatalogController) Refresh(c *gin.Context) {
	if err := cc.Catalog.Refresh(c.Request.Context()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh catalog")
		return
	}

	status, err := cc.Catalog.Status(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read catalog status")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog refreshed",
		"status":  status,
	})
}

// ClearCache drops the cached catalog. The next read re-fetches.
func (cc *CatalogController) ClearCache(c *gin.Context) {
	if err := cc.Catalog.ClearCache(c.Request.Context()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear catalog cache")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog cache cleared"})
}

type cacheModeInput struct {
	Permanent *bool `json:"permanent" binding:"required"`
}

// UpdateCacheMode switches between permanent and TTL-based caching.
func (cc *CatalogController) UpdateCacheMode(c *gin.Context) {
	var input cacheModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := cc.Catalog.SetPermanentMode(c.Request.Context(), *input.Permanent); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cache mode")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache mode updated", "permanent": *input.Permanent})
}
