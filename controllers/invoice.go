// controllers/invoice.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"cleaninvoice-backend/models"
	"cleaninvoice-backend/services"
	"cleaninvoice-backend/utils"

	"github.com/gin-gonic/gin"
)

// catalogSource is the slice of the catalog gateway the invoice
// endpoints need. *services.CatalogService implements it; tests inject
// stubs.
type catalogSource interface {
	Buildings(ctx context.Context) ([]models.Building, error)
	Units(ctx context.Context) ([]models.Unit, error)
}

// InvoiceRequest is the form state sent by the client. Line items may
// arrive grouped by work day (the form's native shape) or as flat
// lists; date groups take precedence when present.
type InvoiceRequest struct {
	Cleaner         models.Cleaner           `json:"cleaner"`
	DateGroups      []models.DateGroup       `json:"dateGroups"`
	Services        []models.CleaningService `json:"services"`
	CheckinServices []models.CheckinService  `json:"checkinServices"`
}

// InvoiceResponse pairs the computed invoice with its validation result
// and per-line pricing breakdowns.
type InvoiceResponse struct {
	Invoice    models.InvoiceData          `json:"invoice"`
	Validation services.ValidationResult   `json:"validation"`
	Breakdowns []services.ServiceBreakdown `json:"breakdowns"`
}

type InvoiceController struct {
	Catalog catalogSource
	Pricing services.PricingConfig
	Clock   func() time.Time
}

func NewInvoiceController(catalog catalogSource) *InvoiceController {
	return &InvoiceController{
		Catalog: catalog,
		Pricing: services.DefaultPricingConfig(),
		Clock:   time.Now,
	}
}

// Preview recomputes derived amounts, validates the whole form state,
// and returns the invoice aggregate. Nothing is persisted; the client
// calls this on every edit it cares to re-check.
func (ic *InvoiceController) Preview(c *gin.Context) {
	_, response, ok := ic.compute(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response)
}

// Generate is Preview plus gating: validation errors reject the request,
// a passing one gets an invoice number stamped.
func (ic *InvoiceController) Generate(c *gin.Context) {
	invoice, response, ok := ic.compute(c)
	if !ok {
		return
	}

	if !response.Validation.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Invoice has validation errors",
			"validation": response.Validation,
		})
		return
	}

	invoice.InvoiceNumber = newInvoiceNumber(ic.Clock())
	response.Invoice = invoice
	c.JSON(http.StatusCreated, response)
}

// ExportExcel renders the computed invoice as an Excel workbook.
func (ic *InvoiceController) ExportExcel(c *gin.Context) {
	ic.export(c, "invoice.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		services.GenerateInvoiceExcel)
}

// ExportPDF renders the computed invoice as a PDF document.
func (ic *InvoiceController) ExportPDF(c *gin.Context) {
	ic.export(c, "invoice.pdf", "application/pdf", services.GenerateInvoicePDF)
}

// Metrics returns derived business indicators for the current form
// state, without gating on validity.
func (ic *InvoiceController) Metrics(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	units, err := ic.Catalog.Units(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	pricing := services.NewPricingService(ic.Pricing, units)
	cleanings, checkins := flattenRequest(req)
	normalizeCleanings(cleanings, pricing)

	metrics := services.CalculateBusinessMetrics(req.Cleaner, cleanings, checkins, pricing)
	c.JSON(http.StatusOK, metrics)
}

// compute binds the request, recomputes amounts against a fresh catalog
// snapshot, and validates. Writes the error response itself when it
// returns ok == false.
func (ic *InvoiceController) compute(c *gin.Context) (models.InvoiceData, InvoiceResponse, bool) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return models.InvoiceData{}, InvoiceResponse{}, false
	}

	units, err := ic.Catalog.Units(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return models.InvoiceData{}, InvoiceResponse{}, false
	}

	pricing := services.NewPricingService(ic.Pricing, units)
	cleanings, checkins := flattenRequest(req)
	normalizeCleanings(cleanings, pricing)

	validation := services.ValidateInvoiceGeneration(req.Cleaner, cleanings, checkins, ic.Clock())

	invoice := models.InvoiceData{
		Cleaner:         req.Cleaner,
		Services:        cleanings,
		CheckinServices: checkins,
		TotalAmount:     pricing.InvoiceTotal(cleanings, checkins),
	}

	breakdowns := make([]services.ServiceBreakdown, 0, len(cleanings))
	for _, s := range cleanings {
		breakdowns = append(breakdowns, pricing.Breakdown(s))
	}

	return invoice, InvoiceResponse{
		Invoice:    invoice,
		Validation: validation,
		Breakdowns: breakdowns,
	}, true
}

type exportFunc func(services.InvoiceExportData) ([]byte, error)

func (ic *InvoiceController) export(c *gin.Context, filename, contentType string, render exportFunc) {
	invoice, response, ok := ic.compute(c)
	if !ok {
		return
	}

	if !response.Validation.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Invoice has validation errors",
			"validation": response.Validation,
		})
		return
	}

	buildings, err := ic.Catalog.Buildings(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}
	units, err := ic.Catalog.Units(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	invoice.InvoiceNumber = newInvoiceNumber(ic.Clock())
	pricing := services.NewPricingService(ic.Pricing, units)
	data := services.BuildInvoiceExport(invoice, pricing, buildings, units)

	out, err := render(data)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, out)
}

// flattenRequest turns date groups into flat lists, stamping the group
// date onto every service it owns. Flat lists are used as-is when no
// groups were sent.
func flattenRequest(req InvoiceRequest) ([]models.CleaningService, []models.CheckinService) {
	if len(req.DateGroups) == 0 {
		return req.Services, req.CheckinServices
	}

	var cleanings []models.CleaningService
	var checkins []models.CheckinService
	for _, group := range req.DateGroups {
		for _, s := range group.CleaningServices {
			s.Date = group.Date
			cleanings = append(cleanings, s)
		}
		for _, s := range group.CheckinServices {
			s.Date = group.Date
			checkins = append(checkins, s)
		}
	}
	return cleanings, checkins
}

// normalizeCleanings guards user-entered fields and overwrites each
// derived amount. Amount is server-owned; client values are ignored.
func normalizeCleanings(cleanings []models.CleaningService, pricing *services.PricingService) {
	for i := range cleanings {
		if cleanings[i].ItemsCost < 0 {
			cleanings[i].ItemsCost = 0
		}
		if cleanings[i].ExtraTime == "" {
			cleanings[i].ExtraTime = services.ExtraTimeNone
		}
		cleanings[i].Amount = pricing.ServicePrice(cleanings[i])
	}
}

func newInvoiceNumber(now time.Time) string {
	return "INV-" + now.Format("20060102") + "-" + utils.GenerateRandomString(6)
}
