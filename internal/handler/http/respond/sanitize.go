package respond

import (
	"regexp"
)

var (
	// Credential patterns masked before an error message is logged.
	// The connection-string pattern covers mongodb:// and mongodb+srv://
	// URIs with inline credentials.
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
	apiKeyPattern      = regexp.MustCompile(`(?i)(key|token|secret)=[^&\s]+`)
)

// SanitizeError returns the error message with embedded credentials
// masked, safe for log output.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = apiKeyPattern.ReplaceAllString(msg, "$1=****")
	return msg
}
