// Package htmlsanitize strips unsafe HTML from user-supplied free text
// (category/product descriptions, order notes) before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows basic formatting markup but removes scripts, event handlers,
// and other active content.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with disallowed HTML removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
