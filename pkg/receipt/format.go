package receipt

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product name budgets per render mode; longer names are truncated.
const (
	NameBudgetESCPOS = 20
	NameBudgetPage   = 30 // HTML and PDF
)

// FormatBRL renders a monetary value with the Brazilian comma decimal
// separator and no thousands separator: "R$ 1234,56".
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// FormatDate renders dates day/month/year: "31/08/2026".
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime renders "31/08/2026 15:04".
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// Truncate cuts s to at most budget runes, appending "..." when it was
// longer.
func Truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "..."
}
