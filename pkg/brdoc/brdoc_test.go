package brdoc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
		"935.411.347-80",
	}
	for _, cpf := range valid {
		assert.True(t, IsValidCPF(cpf), "expected valid: %s", cpf)
	}

	invalid := []string{
		"",
		"123",
		"529.982.247-26",      // wrong second check digit
		"529.982.247-15",      // wrong first check digit
		"5299822472",          // 10 digits
		"529982247255",        // 12 digits
		"abc.def.ghi-jk",
	}
	for _, cpf := range invalid {
		assert.False(t, IsValidCPF(cpf), "expected invalid: %s", cpf)
	}
}

func TestIsValidCPF_DegenerateSequences(t *testing.T) {
	for d := 0; d <= 9; d++ {
		cpf := ""
		for i := 0; i < 11; i++ {
			cpf += fmt.Sprintf("%d", d)
		}
		assert.False(t, IsValidCPF(cpf), "all-same-digit sequence must be rejected: %s", cpf)
	}
}

func TestIsValidCNPJ(t *testing.T) {
	assert.True(t, IsValidCNPJ("11.222.333/0001-81"))
	assert.True(t, IsValidCNPJ("11222333000181"))
	assert.False(t, IsValidCNPJ("11.222.333/0001-82"))
	assert.False(t, IsValidCNPJ("11222333000"))
	assert.False(t, IsValidCNPJ("11111111111111"))
}

func TestFormatCPF_RoundTrip(t *testing.T) {
	raw := "52998224725"
	formatted := FormatCPF(raw)
	assert.Equal(t, "529.982.247-25", formatted)
	assert.Equal(t, raw, OnlyDigits(formatted))
}

func TestFormatCPF_InvalidLengthUnchanged(t *testing.T) {
	assert.Equal(t, "1234", FormatCPF("1234"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	assert.Equal(t, "123", FormatCNPJ("123"))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "0131010", FormatCEP("0131010"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3456-7890", FormatPhone("1134567890"))
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "123", FormatPhone("123"))
}
