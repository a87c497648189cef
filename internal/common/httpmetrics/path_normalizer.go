package httpmetrics

import (
	"regexp"
	"strings"
)

var (
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

const staticPathLabel = "/static"

// NormalizePath maps a request path to a low-cardinality metrics label.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/api/") && path != "/health" && path != "/metrics" {
		return staticPathLabel
	}

	normalized := uuidRegex.ReplaceAllString(path, "{id}")

	parts := strings.Split(normalized, "/")
	for i, part := range parts {
		if part == "" || part == "{id}" {
			continue
		}
		if isNumeric(part) {
			parts[i] = "{param}"
		}
	}

	// /api/rental-inquiries/<anything> collapses to a single label.
	if len(parts) == 4 && parts[2] == "rental-inquiries" && parts[3] != "" {
		parts[3] = "{id}"
	}

	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
