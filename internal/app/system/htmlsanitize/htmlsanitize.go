// Package htmlsanitize provides HTML sanitization for merchant-supplied
// rich text (site and product descriptions, platform announcements).
// It uses bluemonday to strip dangerous HTML while keeping safe formatting.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy covers the formatting the description editors emit:
		// paragraphs, emphasis, lists, links, headings.
		policy = bluemonday.UGCPolicy()

		// Extra inline formatting the editors allow.
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize cleans HTML input, removing dangerous elements and attributes
// while preserving safe formatting like bold, italic, lists and links.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// IsPlainText reports whether content appears to contain no HTML tags.
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}
