package services

import (
	"fmt"
	"strings"
	"time"

	"cleaninvoice-backend/models"
	"cleaninvoice-backend/utils"
)

// ValidationResult separates blocking errors from advisory warnings.
// Warnings never affect IsValid.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

const maxPeriodDays = 31

func newResult(errors, warnings []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// ValidateCleaner checks the cleaner identity and billing period.
func ValidateCleaner(cleaner models.Cleaner) ValidationResult {
	var errors, warnings []string

	if strings.TrimSpace(cleaner.Name) == "" {
		errors = append(errors, "Cleaner name is required")
	}

	if cleaner.StartDate == "" {
		errors = append(errors, "Start date is required")
	}

	if cleaner.EndDate == "" {
		errors = append(errors, "End date is required")
	}

	if cleaner.StartDate != "" && cleaner.EndDate != "" {
		startDate, startErr := utils.ParseISODate(cleaner.StartDate)
		endDate, endErr := utils.ParseISODate(cleaner.EndDate)

		if startErr == nil && endErr == nil {
			if startDate.After(endDate) {
				errors = append(errors, "Start date cannot be after end date")
			}

			if utils.DaysBetween(startDate, endDate) > maxPeriodDays {
				warnings = append(warnings, "Period is longer than 31 days - consider breaking into smaller periods")
			}
		}
	}

	return newResult(errors, warnings)
}

// ValidateCleaningService checks a single cleaning line item. Amount is
// expected to already hold the derived total. Future-date checks compare
// at day granularity against now.
func ValidateCleaningService(service models.CleaningService, now time.Time) ValidationResult {
	var errors, warnings []string

	if service.Building == "" {
		errors = append(errors, "Building selection is required")
	}

	if service.Unit == "" {
		errors = append(errors, "Unit selection is required")
	}

	if service.Amount <= 0 {
		errors = append(errors, "Service amount must be greater than 0")
	}

	if service.CleaningWithPartner && strings.TrimSpace(service.PartnerName) == "" {
		errors = append(errors, "Partner name is required when cleaning with partner")
	}

	if service.ExtraTime != "" && service.ExtraTime != ExtraTimeNone && strings.TrimSpace(service.ExtrasDescription) == "" {
		warnings = append(warnings, "Consider adding description for extra time work")
	}

	if service.ItemsCost > 0 && strings.TrimSpace(service.PurchasedItems) == "" {
		warnings = append(warnings, "Consider listing purchased items when there is a cost")
	}

	if isFutureDate(service.Date, now) {
		warnings = append(warnings, "Service date is in the future")
	}

	return newResult(errors, warnings)
}

// ValidateCheckinService checks a single check-in line item.
func ValidateCheckinService(service models.CheckinService, now time.Time) ValidationResult {
	var errors, warnings []string

	if service.Building == "" {
		errors = append(errors, "Building selection is required")
	}

	if service.Unit == "" {
		errors = append(errors, "Unit selection is required")
	}

	if service.Amount <= 0 {
		errors = append(errors, "Check-in amount must be greater than 0")
	}

	if service.Amount > 1000 {
		warnings = append(warnings, "Check-in amount is unusually high - please verify")
	}

	if isFutureDate(service.Date, now) {
		warnings = append(warnings, "Check-in date is in the future")
	}

	return newResult(errors, warnings)
}

// ValidateInvoiceGeneration validates the whole invoice request: cleaner,
// every line item (prefixed with its 1-based index), and cross-cutting
// checks. IsValid is true only when no sub-validation produced an error.
func ValidateInvoiceGeneration(
	cleaner models.Cleaner,
	services []models.CleaningService,
	checkinServices []models.CheckinService,
	now time.Time,
) ValidationResult {
	var errors, warnings []string

	cleanerResult := ValidateCleaner(cleaner)
	errors = append(errors, cleanerResult.Errors...)
	warnings = append(warnings, cleanerResult.Warnings...)

	if len(services) == 0 && len(checkinServices) == 0 {
		errors = append(errors, "At least one service (cleaning or check-in) is required")
	}

	for i, service := range services {
		result := ValidateCleaningService(service, now)
		for _, e := range result.Errors {
			errors = append(errors, fmt.Sprintf("Service %d: %s", i+1, e))
		}
		for _, w := range result.Warnings {
			warnings = append(warnings, fmt.Sprintf("Service %d: %s", i+1, w))
		}
	}

	for i, service := range checkinServices {
		result := ValidateCheckinService(service, now)
		for _, e := range result.Errors {
			errors = append(errors, fmt.Sprintf("Check-in %d: %s", i+1, e))
		}
		for _, w := range result.Warnings {
			warnings = append(warnings, fmt.Sprintf("Check-in %d: %s", i+1, w))
		}
	}

	var totalAmount float64
	for _, service := range services {
		totalAmount += service.Amount
	}
	for _, service := range checkinServices {
		totalAmount += service.Amount
	}

	if totalAmount > 10000 {
		warnings = append(warnings, "Total amount is very high - please verify all entries")
	}

	if countDistinctBuildings(services, checkinServices) > 20 {
		warnings = append(warnings, "Many different buildings - consider grouping by location")
	}

	return newResult(errors, warnings)
}

// isFutureDate reports whether the ISO date falls strictly after now's
// calendar day. Empty or malformed dates are never flagged here.
func isFutureDate(date string, now time.Time) bool {
	if date == "" {
		return false
	}
	parsed, err := utils.ParseISODate(date)
	if err != nil {
		return false
	}
	return parsed.After(utils.BeginningOfDay(now.UTC()))
}

func countDistinctBuildings(services []models.CleaningService, checkins []models.CheckinService) int {
	seen := make(map[string]struct{})
	for _, s := range services {
		if s.Building != "" {
			seen[s.Building] = struct{}{}
		}
	}
	for _, s := range checkins {
		if s.Building != "" {
			seen[s.Building] = struct{}{}
		}
	}
	return len(seen)
}
