package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	jsEventRegex = regexp.MustCompile(`on\w+="[^"]*"`)
	dataURIRegex = regexp.MustCompile(`data:[^;]+;base64,[^"']+`)
)

// SanitizeString removes potentially dangerous characters and HTML tags
func SanitizeString(input string) string {
	// First, escape HTML special characters
	sanitized := html.EscapeString(input)

	// Remove any remaining HTML tags
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")

	// Remove JavaScript event handlers
	sanitized = jsEventRegex.ReplaceAllString(sanitized, "")

	// Remove data URIs
	sanitized = dataURIRegex.ReplaceAllString(sanitized, "")

	return strings.TrimSpace(sanitized)
}
