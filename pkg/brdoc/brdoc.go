// Package brdoc validates and formats Brazilian identity and address
// documents: CPF, CNPJ, CEP and phone numbers.
//
// Formatters are lenient: input that cannot be formatted is returned
// unchanged, never as an error.
package brdoc

import (
	"fmt"
	"strings"
)

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF reports whether s is a valid CPF. Formatting characters are
// ignored. The ten degenerate sequences (000... through 999...) are
// rejected even though they satisfy the checksum.
func IsValidCPF(s string) bool {
	cpf := OnlyDigits(s)
	if len(cpf) != 11 {
		return false
	}
	if allSameDigit(cpf) {
		return false
	}

	// First check digit: weights 10..2 over the first 9 digits.
	if digitAt(cpf, 9) != cpfCheckDigit(cpf, 9, 10) {
		return false
	}
	// Second check digit: weights 11..2 over the first 10 digits.
	return digitAt(cpf, 10) == cpfCheckDigit(cpf, 10, 11)
}

// IsValidCNPJ reports whether s is a valid CNPJ. Formatting characters
// are ignored.
func IsValidCNPJ(s string) bool {
	cnpj := OnlyDigits(s)
	if len(cnpj) != 14 {
		return false
	}
	if allSameDigit(cnpj) {
		return false
	}

	weightsFirst := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weightsSecond := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	if digitAt(cnpj, 12) != cnpjCheckDigit(cnpj, weightsFirst) {
		return false
	}
	return digitAt(cnpj, 13) == cnpjCheckDigit(cnpj, weightsSecond)
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00.
func FormatCPF(s string) string {
	cpf := OnlyDigits(s)
	if len(cpf) != 11 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[0:3], cpf[3:6], cpf[6:9], cpf[9:11])
}

// FormatCNPJ renders a 14-digit CNPJ as 00.000.000/0000-00.
func FormatCNPJ(s string) string {
	cnpj := OnlyDigits(s)
	if len(cnpj) != 14 {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[0:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:14])
}

// FormatCEP renders an 8-digit postal code as 00000-000.
func FormatCEP(s string) string {
	cep := OnlyDigits(s)
	if len(cep) != 8 {
		return s
	}
	return cep[0:5] + "-" + cep[5:8]
}

// FormatPhone renders a 10-digit number as (00) 0000-0000 and an
// 11-digit number as (00) 00000-0000. Anything else is returned as-is.
func FormatPhone(s string) string {
	phone := OnlyDigits(s)
	switch len(phone) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", phone[0:2], phone[2:6], phone[6:10])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", phone[0:2], phone[2:7], phone[7:11])
	default:
		return s
	}
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

// cpfCheckDigit computes a CPF mod-11 check digit over s[:n] with the
// starting weight applied to the leftmost digit.
func cpfCheckDigit(s string, n, startWeight int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digitAt(s, i) * (startWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func cnpjCheckDigit(s string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digitAt(s, i) * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
