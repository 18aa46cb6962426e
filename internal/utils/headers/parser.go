package headers

import (
	"fmt"
	"net/http"
	"strings"
)

// ParseHeaders converts an array of header strings ("Key: Value") into a map.
// Entries without a colon or with an empty key are returned as errors.
func ParseHeaders(h []string) (map[string]string, error) {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		parts := strings.SplitN(hdr, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("malformed header %q: expected \"Key: Value\"", hdr)
		}
		key := http.CanonicalHeaderKey(strings.TrimSpace(parts[0]))
		m[key] = strings.TrimSpace(parts[1])
	}
	return m, nil
}

// Apply sets every entry of m on h, replacing existing values
func Apply(h http.Header, m map[string]string) {
	for key, value := range m {
		h.Set(key, value)
	}
}
