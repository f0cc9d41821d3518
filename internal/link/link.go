// Package link builds the deep link that opens a pre-filled chat with a store.
package link

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultBase = "https://wa.me"

type Builder struct {
	base string
}

// New returns a builder for links of the form <base>/<contact>?text=<message>.
func New(base string) (Builder, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Builder{}, fmt.Errorf("link base must be an absolute URL: %q", base)
	}
	return Builder{base: base}, nil
}

// Build embeds the contact as a path segment and the message as the text query.
func (b Builder) Build(contactAddress, message string) string {
	base := b.base
	if base == "" {
		base = DefaultBase
	}
	return base + "/" + url.PathEscape(contactAddress) + "?text=" + EscapeComponent(message)
}

// EscapeComponent escapes s for a query component the way browsers'
// encodeURIComponent does: spaces become %20, not '+'.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
