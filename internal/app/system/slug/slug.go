// Package slug derives URL-safe lookup keys from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaces     = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// Make returns the slug for name: accents folded to their base letter,
// lowercased, every character outside [a-z0-9 whitespace -] removed,
// whitespace runs and hyphen runs collapsed to a single hyphen, and leading
// or trailing hyphens trimmed. Make is total and idempotent; the result is
// either empty or matches ^[a-z0-9]+(-[a-z0-9]+)*$.
func Make(name string) string {
	s := strings.ToLower(fold(name))
	s = disallowed.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "- \t\r\n")
}

// fold decomposes s and drops combining marks ("Café" -> "Cafe").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
