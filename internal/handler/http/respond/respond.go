// Package respond provides utilities for sending HTTP responses in JSON
// format. Every payload carries a success flag; error responses are
// sanitized so internal details never reach clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"inkpress/internal/domain/entity"
)

// ErrorBody is the failure envelope: success=false plus a user-facing
// message, and for validation failures a list of field errors.
type ErrorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; the failure can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Fail writes the failure envelope with the given message.
func Fail(w http.ResponseWriter, code int, message string, fieldErrors ...string) {
	JSON(w, code, ErrorBody{Success: false, Message: message, Errors: fieldErrors})
}

// safeSubstrings marks error messages that may be shown to users as-is.
// Validation and lookup errors match; anything else is treated as an
// internal failure.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"forbidden",
	"already",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"at most",
	"is not a known",
	"unauthorized",
	"rate limit",
}

// SafeError sanitizes error messages before returning them to users.
// ValidationErrors yield the envelope's errors list; recognized safe
// messages pass through; everything else is logged (with credentials
// masked) and replaced by a generic message. Status codes >= 500 are
// always treated as internal.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		Fail(w, code, "validation failed", verr.Error())
		return
	}

	msg := err.Error()
	isSafe := false
	if code < 500 {
		lowerMsg := strings.ToLower(msg)
		for _, safe := range safeSubstrings {
			if strings.Contains(lowerMsg, safe) {
				isSafe = true
				break
			}
		}
	}

	if isSafe {
		Fail(w, code, msg)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Fail(w, code, "internal server error")
}
