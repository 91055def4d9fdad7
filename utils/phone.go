package utils

import (
	"strings"
	"unicode"
)

// PhoneDigits strips every non-digit character.
func PhoneDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone returns value as NNN-NNN-NNNN. ok is false unless exactly
// ten digits remain after stripping.
func NormalizePhone(value string) (string, bool) {
	digits := PhoneDigits(value)
	if len(digits) != 10 {
		return "", false
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], true
}

// FormatPhone is the read-side variant: values that cannot be normalized are
// returned trimmed but otherwise untouched.
func FormatPhone(value string) string {
	if formatted, ok := NormalizePhone(value); ok {
		return formatted
	}
	return strings.TrimFunc(value, unicode.IsSpace)
}
