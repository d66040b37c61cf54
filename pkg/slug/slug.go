package slug

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9-]`)
	dashRunRe    = regexp.MustCompile(`-+`)
)

// Make generates a URL-friendly slug from a string.
// e.g. "Customer Reviews" -> "customer-reviews"
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "category"
	}
	return s
}
