// Package htmlsanitize cleans user-supplied HTML before it is stored.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps the formatting a rich-text editor produces (paragraphs,
// emphasis, lists, links, tables) and drops scripts, event handlers and
// unsafe URLs. Used for notice bodies.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// StripTags removes all markup, leaving text. Used for plain-text fields
// such as team bios and About story paragraphs.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strict.Sanitize(s))
}

// StripAll applies StripTags to each element of ss in place and returns it.
func StripAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = StripTags(s)
	}
	return ss
}
