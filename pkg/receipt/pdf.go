package receipt

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDF page geometry in millimeters (80mm thermal paper emulation).
const (
	pdfPageWidth  = 80.0
	pdfPageHeight = 297.0
	pdfMargin     = 4.0
	pdfLineHeight = 4.5
)

// RenderPDF produces the receipt as a PDF and returns it as a
// data:application/pdf;base64 URI for embedding.
func RenderPDF(data *Data, now time.Time) (string, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: pdfPageWidth, Ht: pdfPageHeight},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contentWidth := pdfPageWidth - 2*pdfMargin

	line := func(text string, style string, size float64, align string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.CellFormat(contentWidth, pdfLineHeight, tr(text), "", 1, align, false, 0, "")
	}
	keyValue := func(key, value string, style string) {
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(contentWidth/2, pdfLineHeight, tr(key), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, pdfLineHeight, tr(value), "", 1, "R", false, 0, "")
	}
	separator := func() {
		y := pdf.GetY() + 1
		pdf.SetDashPattern([]float64{1, 1}, 0)
		pdf.Line(pdfMargin, y, pdfPageWidth-pdfMargin, y)
		pdf.SetDashPattern([]float64{}, 0)
		pdf.SetY(y + 1.5)
	}

	// Store header
	line(data.Store.Name, "B", 13, "C")
	if data.Store.Address != "" {
		line(data.Store.Address, "", 8, "C")
	}
	if data.Store.Phone != "" {
		line(data.Store.Phone, "", 8, "C")
	}
	if data.Store.CNPJ != "" {
		line("CNPJ: "+data.Store.CNPJ, "", 8, "C")
	}
	line(data.Type.Title(), "B", 10, "C")
	separator()

	// Document info
	keyValue("Numero:", data.Number, "")
	keyValue("Data:", FormatDateTime(data.Timestamp(now)), "")
	if data.Customer.Name != "" {
		keyValue("Cliente:", Truncate(data.Customer.Name, NameBudgetPage), "")
	}
	if data.Customer.TaxID != "" {
		keyValue("CPF/CNPJ:", data.Customer.TaxID, "")
	}
	separator()

	// Items
	for _, item := range data.Items {
		keyValue(
			fmt.Sprintf("%dx %s", item.Quantity, Truncate(item.Name, NameBudgetPage)),
			FormatBRL(item.Total), "",
		)
		if item.Quantity > 1 {
			line("  @ "+FormatBRL(item.UnitPrice)+" cada", "", 8, "L")
		}
	}
	separator()

	// Totals
	keyValue("Subtotal:", FormatBRL(data.Subtotal), "")
	if data.Discount.IsPositive() {
		keyValue("Desconto:", FormatBRL(data.Discount), "")
	}
	keyValue("TOTAL:", FormatBRL(data.Total), "B")
	if data.PaymentMethod != "" {
		keyValue("Pagamento:", data.PaymentMethod, "")
	}
	if data.ValidUntil != nil {
		keyValue("Valido ate:", FormatDate(*data.ValidUntil), "")
	}

	if data.Notes != "" {
		separator()
		pdf.SetFont("Helvetica", "", 8)
		pdf.MultiCell(contentWidth, pdfLineHeight, tr(data.Notes), "", "L", false)
	}
	separator()

	// Footer
	line("Obrigado pela preferencia!", "", 8, "C")
	line(FormatDateTime(data.Timestamp(now)), "", 8, "C")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("receipt: failed to render PDF: %w", err)
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
