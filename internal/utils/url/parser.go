package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL performs comprehensive URL validation
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// ParseBase validates and parses an absolute base URL
func ParseBase(urlStr string) (*url.URL, error) {
	if err := ValidateURL(urlStr); err != nil {
		return nil, err
	}
	return url.Parse(urlStr)
}

// Resolve resolves a possibly-relative href against base. The second return
// value is false when href cannot be parsed.
func Resolve(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	if base == nil {
		if !ref.IsAbs() {
			return "", false
		}
		base = ref
	}
	return base.ResolveReference(ref).String(), true
}

// SameHost reports whether rawURL has exactly the host (including port) of base
func SameHost(base *url.URL, rawURL string) bool {
	if base == nil {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}
