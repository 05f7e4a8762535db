package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel renders the invoice as an Excel workbook and
// returns the file contents.
func GenerateInvoiceExcel(data InvoiceExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Invoice"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through F).
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{12, 10, 24, 12, 44, 12}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: invoiceThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: invoiceThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Border:    invoiceThinBorders(),
		NumFmt:    4, // #,##0.00
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		NumFmt:    4,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header block ────────────────────────────────────────────────────

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Cleaning Invoice")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), titleStyle)
	row++

	if data.InvoiceNumber != "" {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Invoice #: "+data.InvoiceNumber)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
		row++
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Cleaner: "+data.CleanerName)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
	row++
	if data.Period != "" {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Period: "+data.Period)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
		row++
	}
	row++ // spacer

	// ── Line items ──────────────────────────────────────────────────────

	headers := []string{"Date", "Type", "Building", "Unit", "Details", "Amount"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], row)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	row++

	for _, line := range data.Lines {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.Building)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), line.Unit)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), line.Details)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), line.Amount)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), lineStyle)
		f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), amountStyle)
		row++
	}
	row++ // spacer

	// ── Totals ──────────────────────────────────────────────────────────

	totals := []struct {
		label string
		value float64
	}{
		{"Cleaning Services Total", data.CleaningTotal},
		{"Check-in Services Total", data.CheckinTotal},
		{"Invoice Total", data.Total},
	}
	for _, t := range totals {
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.label)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.value)
		f.SetCellStyle(sheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), summaryLabelStyle)
		f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), summaryValueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func invoiceThinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
