package cv

import (
	"regexp"
	"strings"
)

const (
	// defaultCountryPrefix is applied to bare 10-digit numbers. Resumes are
	// assumed to come from Indian applicants unless they carry their own code.
	defaultCountryPrefix = "+91"
	minPhoneDigits       = 10
)

var (
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.` + spaceClass + `]?)?\d{10,12}`)
	phoneStrip   = regexp.MustCompile(`[^\d+]`)
	nonDigit     = regexp.MustCompile(`\D`)
	twelveDigits = regexp.MustCompile(`^\d{12}$`)
	tenDigits    = regexp.MustCompile(`^\d{10}$`)
)

// NormalizePhone canonicalises a phone-like token for display. Unknown shapes
// are passed through with punctuation removed.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := phoneStrip.ReplaceAllString(raw, "")
	switch {
	case strings.HasPrefix(cleaned, defaultCountryPrefix) && len(cleaned) == 13:
		return defaultCountryPrefix + " " + cleaned[3:]
	case strings.HasPrefix(cleaned, "+") && len(cleaned) >= 12:
		return cleaned
	case twelveDigits.MatchString(cleaned):
		return "+" + cleaned
	case tenDigits.MatchString(cleaned):
		return defaultCountryPrefix + " " + cleaned
	}
	return cleaned
}

func digitCount(s string) int {
	return len(nonDigit.ReplaceAllString(s, ""))
}

// phoneCandidates returns the normalised numbers found in text, in scan order,
// keeping only those with enough digits to be dialable.
func phoneCandidates(text string) []string {
	matches := phonePattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		phone := NormalizePhone(m)
		if digitCount(phone) >= minPhoneDigits {
			out = append(out, phone)
		}
	}
	return out
}

func extractPhone(text string) string {
	return firstByPosition(phoneCandidates(text))
}
