// Package normalize holds small input canonicalization helpers applied
// before values are validated, compared, or written to the store.
package normalize

import "strings"

// Email canonicalizes an email address for storage and lookup:
// surrounding whitespace is trimmed and the address is lowercased.
// Signup and login must agree on this form or exact-match lookups miss.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
