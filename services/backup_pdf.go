package services

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/yeremiapane/restaurant-pos/utils"
)

// Column widths for the per-order item table (A4 portrait, 10mm margins).
const (
	colItemWidth   = 110.0
	colQtyWidth    = 25.0
	colAmountWidth = 55.0
)

// writePDFBackup renders the printable artifact: one section per order with
// an item table and a trailing total row. The total row prints the order's
// stored total, never a recomputation from the lines.
func writePDFBackup(doc *BackupDocument, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Restaurant Orders Backup", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Restaurant Orders Backup", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	generated := doc.GeneratedAt.Format("02 Jan 2006, 15:04:05 MST")
	pdf.CellFormat(0, 6, "Generated: "+generated, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, order := range doc.Orders {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Order #%d", order.ID), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "Date: "+order.CreatedAt.Format("02 Jan 2006, 15:04"), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(243, 243, 243)
		pdf.CellFormat(colItemWidth, 7, "Item", "B", 0, "L", true, 0, "")
		pdf.CellFormat(colQtyWidth, 7, "Qty", "B", 0, "C", true, 0, "")
		pdf.CellFormat(colAmountWidth, 7, "Amount", "B", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, item := range order.Items {
			amount := float64(item.Qty) * item.Price
			pdf.CellFormat(colItemWidth, 7, item.Name, "B", 0, "L", false, 0, "")
			pdf.CellFormat(colQtyWidth, 7, fmt.Sprintf("%d", item.Qty), "B", 0, "C", false, 0, "")
			pdf.CellFormat(colAmountWidth, 7, utils.FormatCurrencyINR(amount), "B", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(colItemWidth+colQtyWidth, 7, "Total", "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmountWidth, 7, utils.FormatCurrencyINR(order.Total), "", 1, "R", false, 0, "")
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(path)
}
