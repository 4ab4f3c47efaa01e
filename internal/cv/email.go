package cv

import (
	"regexp"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	emailShapePattern = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
)

// placeholderDomains are sample domains that show up in resume templates and
// never belong to a real candidate.
var placeholderDomains = []string{
	"example.com",
	"example.org",
	"example.net",
	"test.com",
}

// ValidEmail reports whether s has the local@domain.tld shape. It does not
// check deliverability.
func ValidEmail(s string) bool {
	return emailShapePattern.MatchString(s)
}

// NormalizeEmail lowercases and trims an address for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isPlaceholderDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, p := range placeholderDomains {
		if domain == p || strings.HasSuffix(domain, "."+p) {
			return true
		}
	}
	return false
}

// emailCandidates returns every usable address in text, in order of position.
func emailCandidates(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !ValidEmail(m) || isPlaceholderDomain(m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func extractEmail(text string) string {
	return firstByPosition(emailCandidates(text))
}
