// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged. It targets the material this service
// can actually leak: connection strings, bearer tokens, password fields and
// bcrypt hashes.
package redact

import "regexp"

// Placeholder inserted in place of redacted material.
const Placeholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with embedded credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),

	// Three-part base64url JWT tokens
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),

	// password=... / password: ... fragments
	regexp.MustCompile(`(?i)(password|passwd|pwd)[=:\s]['"]?[^'"&\s]{3,}`),

	// bcrypt hashes
	regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{20,}`),

	// Generic secrets/keys in key=value form
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token)[=:\s]+[A-Za-z0-9_\-.~+/]{8,}`),
}

// String scrubs known sensitive patterns from s.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, Placeholder)
	}
	return s
}

// Error scrubs known sensitive patterns from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
