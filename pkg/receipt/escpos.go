package receipt

import (
	"time"

	"github.com/suplefit/backoffice-api/pkg/printer"
)

// escposWidth is the character width used for receipts (58mm paper).
const escposWidth = 32

// RenderESCPOS converts Data into an ESC/POS byte stream ready to be
// sent to a thermal printer.
func RenderESCPOS(data *Data, now time.Time) []byte {
	doc := printer.NewDocument(escposWidth)

	// Store header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(data.Store.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if data.Store.Address != "" {
		doc.Text(data.Store.Address)
	}
	if data.Store.Phone != "" {
		doc.Text(data.Store.Phone)
	}
	if data.Store.CNPJ != "" {
		doc.TextF("CNPJ: %s", data.Store.CNPJ)
	}

	doc.LineFeed().
		SetBold(true).
		Text(data.Type.Title()).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	// Document info
	doc.KeyValue("Numero:", data.Number).
		KeyValue("Data:", FormatDateTime(data.Timestamp(now)))

	if data.Customer.Name != "" {
		doc.KeyValue("Cliente:", Truncate(data.Customer.Name, NameBudgetESCPOS))
	}
	if data.Customer.TaxID != "" {
		doc.KeyValue("CPF/CNPJ:", data.Customer.TaxID)
	}

	doc.Separator('-')

	// Items
	for _, item := range data.Items {
		doc.ItemLine(item.Quantity, Truncate(item.Name, NameBudgetESCPOS), FormatBRL(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s cada", FormatBRL(item.UnitPrice))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", FormatBRL(data.Subtotal))
	if data.Discount.IsPositive() {
		doc.KeyValue("Desconto:", FormatBRL(data.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", FormatBRL(data.Total)).
		SetBold(false)

	if data.PaymentMethod != "" {
		doc.KeyValue("Pagamento:", data.PaymentMethod)
	}
	if data.ValidUntil != nil {
		doc.KeyValue("Valido ate:", FormatDate(*data.ValidUntil))
	}

	if data.Notes != "" {
		doc.Separator('-').
			Text(data.Notes)
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Obrigado pela preferencia!").
		Text(FormatDateTime(data.Timestamp(now))).
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
