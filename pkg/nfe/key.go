package nfe

import (
	"fmt"
	"strings"
)

// AccessKeyFromID extracts the 44-digit access key from an infNFe Id
// attribute, stripping the "NFe" prefix when present.
func AccessKeyFromID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "NFe") && len(id) == 47 {
		return id[3:]
	}
	if len(id) == 44 {
		return id
	}
	return ""
}

// ValidateAccessKey checks that key has exactly 44 digits and a correct
// mod-11 check digit.
func ValidateAccessKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) != 44 {
		return fmt.Errorf("nfe: access key must have exactly 44 digits (got %d)", len(key))
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return fmt.Errorf("nfe: access key must contain only digits")
		}
	}
	if !validCheckDigit(key) {
		return fmt.Errorf("nfe: access key check digit is invalid")
	}
	return nil
}

// validCheckDigit verifies the last digit of the key using mod-11 with
// weights cycling 2..9 from right to left.
func validCheckDigit(key string) bool {
	base := key[:43]
	weight := 2
	sum := 0
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	rest := sum % 11
	dv := 0
	if rest >= 2 {
		dv = 11 - rest
	}
	return dv == int(key[43]-'0')
}
