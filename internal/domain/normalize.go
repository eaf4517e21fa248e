package domain

import (
	"strings"
)

var htmlAngleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// SanitizeText prepares untrusted free text for storage:
//   - trims leading/trailing whitespace
//   - escapes < and > as &lt; and &gt;
//
// Ampersands and quotes are left untouched; this is not a general HTML encoder.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return htmlAngleEscaper.Replace(text)
}

// SanitizeOptional sanitizes an optional value. Returns nil when the value is
// absent or empty after trimming.
func SanitizeOptional(text *string) *string {
	if text == nil {
		return nil
	}
	s := SanitizeText(*text)
	if s == "" {
		return nil
	}
	return &s
}
