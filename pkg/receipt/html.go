package receipt

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// htmlTemplate emulates 80mm thermal paper for the browser print
// dialog; the SPA opens the returned document and calls window.print.
var htmlTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"brl": FormatBRL,
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return FormatDate(*t)
	},
	"datetime": FormatDateTime,
	"trunc": func(s string) string {
		return Truncate(s, NameBudgetPage)
	},
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Data.Number}}</title>
<style>
  body { width: 80mm; margin: 0 auto; font-family: monospace; font-size: 12px; }
  .center { text-align: center; }
  .bold { font-weight: bold; }
  .store-name { font-size: 16px; font-weight: bold; }
  hr { border: none; border-top: 1px dashed #000; }
  table { width: 100%; border-collapse: collapse; }
  td.num { text-align: right; white-space: nowrap; }
  .totals td { padding-top: 2px; }
  .grand { font-size: 14px; font-weight: bold; }
</style>
</head>
<body>
<div class="center">
  <div class="store-name">{{.Data.Store.Name}}</div>
  {{if .Data.Store.Address}}<div>{{.Data.Store.Address}}</div>{{end}}
  {{if .Data.Store.Phone}}<div>{{.Data.Store.Phone}}</div>{{end}}
  {{if .Data.Store.CNPJ}}<div>CNPJ: {{.Data.Store.CNPJ}}</div>{{end}}
  <div class="bold">{{.Title}}</div>
</div>
<hr>
<div>Numero: {{.Data.Number}}</div>
<div>Data: {{datetime .Stamp}}</div>
{{if .Data.Customer.Name}}<div>Cliente: {{.Data.Customer.Name}}</div>{{end}}
{{if .Data.Customer.TaxID}}<div>CPF/CNPJ: {{.Data.Customer.TaxID}}</div>{{end}}
<hr>
<table>
  {{range .Data.Items}}
  <tr>
    <td>{{.Quantity}}x {{trunc .Name}}</td>
    <td class="num">{{brl .Total}}</td>
  </tr>
  {{if gt .Quantity 1}}<tr><td colspan="2">&nbsp;&nbsp;@ {{brl .UnitPrice}} cada</td></tr>{{end}}
  {{end}}
</table>
<hr>
<table class="totals">
  <tr><td>Subtotal:</td><td class="num">{{brl .Data.Subtotal}}</td></tr>
  {{if .Data.Discount.IsPositive}}<tr><td>Desconto:</td><td class="num">{{brl .Data.Discount}}</td></tr>{{end}}
  <tr class="grand"><td>TOTAL:</td><td class="num">{{brl .Data.Total}}</td></tr>
  {{if .Data.PaymentMethod}}<tr><td>Pagamento:</td><td class="num">{{.Data.PaymentMethod}}</td></tr>{{end}}
  {{if .Data.ValidUntil}}<tr><td>Valido ate:</td><td class="num">{{date .Data.ValidUntil}}</td></tr>{{end}}
</table>
{{if .Data.Notes}}<hr><div>{{.Data.Notes}}</div>{{end}}
<hr>
<div class="center">
  <div>Obrigado pela preferencia!</div>
  <div>{{datetime .Stamp}}</div>
</div>
</body>
</html>`))

// RenderHTML produces the printable HTML document. Errors are template
// execution failures and surface synchronously; nothing is written on
// failure.
func RenderHTML(data *Data, now time.Time) (string, error) {
	var b strings.Builder
	err := htmlTemplate.Execute(&b, struct {
		Data  *Data
		Title string
		Stamp time.Time
	}{
		Data:  data,
		Title: data.Type.Title(),
		Stamp: data.Timestamp(now),
	})
	if err != nil {
		return "", fmt.Errorf("receipt: failed to render HTML: %w", err)
	}
	return b.String(), nil
}
