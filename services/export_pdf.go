package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF renders the invoice as a PDF document using
// maroto/v2 and returns the raw bytes.
func GenerateInvoicePDF(data InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceCleanerBlock(m, data)
	addInvoiceLinesTable(m, data)
	addInvoiceTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceHeader adds the document title and invoice number.
func addInvoiceHeader(m core.Maroto, data InvoiceExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New("CLEANING INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Invoice #: %s", data.InvoiceNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated %s", data.GeneratedAt.Format("Jan 2, 2006")), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addInvoiceCleanerBlock adds the cleaner name and billing period.
func addInvoiceCleanerBlock(m core.Maroto, data InvoiceExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("CLEANER", labelStyle)),
			col.New(6).Add(text.New("PERIOD", labelStyle)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(data.CleanerName, valueStyle)),
			col.New(6).Add(text.New(data.Period, valueStyle)),
		),
	)

	m.AddRows(row.New(4))
}

// addInvoiceLinesTable adds the line item table.
func addInvoiceLinesTable(m core.Maroto, data InvoiceExportData) {
	headerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerBg := &props.Cell{
		BackgroundColor: &props.Color{Red: 51, Green: 51, Blue: 51},
	}

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Date", headerStyle)).WithStyle(headerBg),
			col.New(2).Add(text.New("Type", headerStyle)).WithStyle(headerBg),
			col.New(2).Add(text.New("Building", headerStyle)).WithStyle(headerBg),
			col.New(1).Add(text.New("Unit", headerStyle)).WithStyle(headerBg),
			col.New(3).Add(text.New("Details", headerStyle)).WithStyle(headerBg),
			col.New(2).Add(text.New("Amount", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			})).WithStyle(headerBg),
		),
	)

	cellStyle := props.Text{Size: 8, Align: align.Left}
	amountStyle := props.Text{Size: 8, Align: align.Right}

	altBg := &props.Color{Red: 245, Green: 245, Blue: 245}

	for i, line := range data.Lines {
		colDate := col.New(2).Add(text.New(line.Date, cellStyle))
		colKind := col.New(2).Add(text.New(line.Kind, cellStyle))
		colBuilding := col.New(2).Add(text.New(line.Building, cellStyle))
		colUnit := col.New(1).Add(text.New(line.Unit, cellStyle))
		colDetails := col.New(3).Add(text.New(line.Details, cellStyle))
		colAmount := col.New(2).Add(text.New(fmt.Sprintf("$%.2f", line.Amount), amountStyle))

		if i%2 == 1 {
			rowStyle := &props.Cell{BackgroundColor: altBg}
			colDate = colDate.WithStyle(rowStyle)
			colKind = colKind.WithStyle(rowStyle)
			colBuilding = colBuilding.WithStyle(rowStyle)
			colUnit = colUnit.WithStyle(rowStyle)
			colDetails = colDetails.WithStyle(rowStyle)
			colAmount = colAmount.WithStyle(rowStyle)
		}

		m.AddRows(row.New(6).Add(colDate, colKind, colBuilding, colUnit, colDetails, colAmount))
	}
}

// addInvoiceTotals adds the group totals and the grand total.
func addInvoiceTotals(m core.Maroto, data InvoiceExportData) {
	m.AddRows(row.New(4))

	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(10).Add(text.New("Cleaning Services Total", labelStyle)),
			col.New(2).Add(text.New(fmt.Sprintf("$%.2f", data.CleaningTotal), valueStyle)),
		),
		row.New(6).Add(
			col.New(10).Add(text.New("Check-in Services Total", labelStyle)),
			col.New(2).Add(text.New(fmt.Sprintf("$%.2f", data.CheckinTotal), valueStyle)),
		),
		row.New(8).Add(
			col.New(10).Add(text.New("Invoice Total", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
			col.New(2).Add(text.New(fmt.Sprintf("$%.2f", data.Total), props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
}
