package survey

import (
	"fmt"
	"strings"
)

const countryCode = "998"

// FormatPhone canonicalizes an Uzbek phone number to "+998 XX XXX XX XX". Input that cannot be
// canonicalized is returned unchanged.
func FormatPhone(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, countryCode):
	case len(digits) == 12 && digits[0] == '8':
		digits = countryCode + digits[1:]
	case len(digits) == 9 && (digits[0] == '9' || digits[0] == '8'):
		digits = countryCode + digits
	}

	if len(digits) == 12 && strings.HasPrefix(digits, countryCode) {
		return fmt.Sprintf("+%s %s %s %s %s", digits[0:3], digits[3:5], digits[5:8], digits[8:10], digits[10:12])
	}
	return raw
}
