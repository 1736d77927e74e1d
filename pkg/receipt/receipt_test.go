package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *Data {
	saleDate := time.Date(2026, 8, 14, 15, 30, 0, 0, time.UTC)
	return &Data{
		Type:     TypeSale,
		Number:   "PED-000042",
		SaleDate: &saleDate,
		Store: Store{
			Name:    "SupleFit Suplementos",
			CNPJ:    "11.222.333/0001-81",
			Address: "Av Paulista 1000 - Sao Paulo/SP",
			Phone:   "(11) 3456-7890",
		},
		Customer: Customer{
			Name:  "Joao da Silva",
			TaxID: "529.982.247-25",
		},
		Items: []Item{
			{Name: "Whey 900g", Quantity: 2, UnitPrice: dec("50.00"), Total: dec("100.00")},
		},
		Subtotal:      dec("100.00"),
		Discount:      dec("10.00"),
		Total:         dec("90.00"),
		PaymentMethod: "PIX",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 100,00", FormatBRL(dec("100")))
	assert.Equal(t, "R$ 10,00", FormatBRL(dec("10.0")))
	assert.Equal(t, "R$ 1234,56", FormatBRL(dec("1234.56")))
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 31, 10, 5, 0, 0, time.UTC)
	assert.Equal(t, "31/08/2026", FormatDate(d))
	assert.Equal(t, "31/08/2026 10:05", FormatDateTime(d))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("A", 40)
	assert.Equal(t, strings.Repeat("A", 20)+"...", Truncate(long, NameBudgetESCPOS))
	assert.Equal(t, strings.Repeat("A", 30)+"...", Truncate(long, NameBudgetPage))
	assert.Equal(t, "curto", Truncate("curto", NameBudgetESCPOS))
}

func TestTimestamp(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	data := testData()
	assert.Equal(t, *data.SaleDate, data.Timestamp(now))

	data.SaleDate = nil
	assert.Equal(t, now, data.Timestamp(now))
}

func TestRenderESCPOS_Sections(t *testing.T) {
	out := string(RenderESCPOS(testData(), time.Now()))

	assert.Contains(t, out, "SupleFit Suplementos")
	assert.Contains(t, out, "CUPOM DE VENDA")
	assert.Contains(t, out, "PED-000042")
	assert.Contains(t, out, "Joao da Silva")
	assert.Contains(t, out, "Whey 900g")
	assert.Contains(t, out, "Subtotal:")
	assert.Contains(t, out, "R$ 100,00")
	assert.Contains(t, out, "Desconto:")
	assert.Contains(t, out, "R$ 10,00")
	assert.Contains(t, out, "TOTAL:")
	assert.Contains(t, out, "R$ 90,00")
	assert.Contains(t, out, "PIX")
	// initialize at the start, partial cut at the end
	assert.Equal(t, "\x1b@", out[:2])
	assert.Equal(t, "\x1dV\x01", out[len(out)-3:])
}

func TestRenderESCPOS_TruncatesLongNames(t *testing.T) {
	data := testData()
	data.Items[0].Name = strings.Repeat("X", 40)
	out := string(RenderESCPOS(data, time.Now()))
	assert.Contains(t, out, strings.Repeat("X", 20)+"...")
	assert.NotContains(t, out, strings.Repeat("X", 21))
}

func TestRenderHTML_Sections(t *testing.T) {
	out, err := RenderHTML(testData(), time.Now())
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "width: 80mm")
	assert.Contains(t, out, "SupleFit Suplementos")
	assert.Contains(t, out, "CUPOM DE VENDA")
	assert.Contains(t, out, "R$ 100,00")
	assert.Contains(t, out, "R$ 10,00")
	assert.Contains(t, out, "R$ 90,00")
	assert.Contains(t, out, "14/08/2026")
}

func TestRenderHTML_QuoteWithValidity(t *testing.T) {
	data := testData()
	data.Type = TypeQuote
	until := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	data.ValidUntil = &until

	out, err := RenderHTML(data, time.Now())
	require.NoError(t, err)
	assert.Contains(t, out, "ORCAMENTO")
	assert.Contains(t, out, "14/09/2026")
}

func TestRenderHTML_TruncatesLongNames(t *testing.T) {
	data := testData()
	data.Items[0].Name = strings.Repeat("X", 40)
	out, err := RenderHTML(data, time.Now())
	require.NoError(t, err)
	assert.Contains(t, out, strings.Repeat("X", 30)+"...")
}

func TestRenderPDF_ReturnsDataURI(t *testing.T) {
	out, err := RenderPDF(testData(), time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:application/pdf;base64,"))
	// a one-page receipt is never this small empty nor absurdly large
	assert.Greater(t, len(out), 500)
}

func TestRenderersNeverMutateInput(t *testing.T) {
	data := testData()
	name := data.Items[0].Name
	total := data.Total

	_ = RenderESCPOS(data, time.Now())
	_, _ = RenderHTML(data, time.Now())
	_, _ = RenderPDF(data, time.Now())

	assert.Equal(t, name, data.Items[0].Name)
	assert.True(t, total.Equal(data.Total))
}
