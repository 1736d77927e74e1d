package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new random UUID.
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a UUID string.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return id, nil
}

// GenerateOrderNumber builds a human-readable order reference, e.g. PED-20260831-4821.
func GenerateOrderNumber() string {
	return generateReference("PED")
}

// GenerateQuotationNumber builds a human-readable quotation reference, e.g. ORC-20260831-4821.
func GenerateQuotationNumber() string {
	return generateReference("ORC")
}

func generateReference(prefix string) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("20060102"), rand.Intn(10000))
}

// GenerateProductCode builds an internal SKU for products created without one.
func GenerateProductCode() string {
	return "PROD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Slugify converts a name into a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
