package domain

import (
	"errors"
	"strings"
)

// CodeLength is the canonical identifier width: the trailing digits of an
// IATA bag tag.
const CodeLength = 6

var (
	// ErrCodeTooShort is returned when a decoded barcode carries fewer
	// than six digits.
	ErrCodeTooShort = errors.New("scanned code has fewer than 6 digits")

	// ErrCodeNotExact is returned by the manual-entry path when the typed
	// value is not exactly six digits.
	ErrCodeNotExact = errors.New("manual code must be exactly 6 digits")
)

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeScan turns raw decoded barcode text into a canonical code.
// Scanned tags are typically longer than the stored identifier, so the input
// is reduced to its digits and truncated to the trailing six.
func NormalizeScan(raw string) (string, error) {
	digits := digitsOf(raw)
	if len(digits) < CodeLength {
		return "", ErrCodeTooShort
	}
	return digits[len(digits)-CodeLength:], nil
}

// NormalizeManual validates a hand-typed code. Unlike the scan path it never
// truncates: the operator is looking at the printed tag, so anything other
// than exactly six digits is a typo and is rejected.
func NormalizeManual(input string) (string, error) {
	input = strings.TrimSpace(input)
	if len(input) != CodeLength || digitsOf(input) != input {
		return "", ErrCodeNotExact
	}
	return input, nil
}
