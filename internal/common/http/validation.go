package http

import "strings"

// ExtractIDFromPath returns the first path segment after prefix.
func ExtractIDFromPath(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	remaining := strings.TrimPrefix(path, prefix)
	id, _, _ := strings.Cut(remaining, "/")
	if id == "" {
		return "", false
	}
	return id, true
}
