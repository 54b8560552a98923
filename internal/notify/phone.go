package notify

import "strings"

// NormalizePhone folds a raw phone string into canonical international
// form: "+" followed by digits only. Numbers without a country prefix get
// defaultCountryCode prepended; a leading "00" is treated as "+". Returns
// "" when no digits survive.
func NormalizePhone(raw, defaultCountryCode string) string {
	raw = strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(raw, "+")

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	if !hasPlus && strings.HasPrefix(digits, "00") {
		digits = digits[2:]
		hasPlus = true
	}
	if hasPlus {
		return "+" + digits
	}

	// National numbers keep their trunk prefix stripped before the
	// country code goes on.
	digits = strings.TrimPrefix(digits, "0")
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, defaultCountryCode) && len(digits) > len(defaultCountryCode)+6 {
		return "+" + digits
	}
	return "+" + defaultCountryCode + digits
}
