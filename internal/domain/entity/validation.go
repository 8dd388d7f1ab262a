package entity

import (
	"strings"
	"unicode/utf8"
)

// ValidateTags checks that every tag is non-empty, lowercase, and within
// the length limit. Tag order is preserved by callers; this only checks
// each element.
func ValidateTags(tags []string) error {
	for _, tag := range tags {
		if tag == "" {
			return &ValidationError{Field: "tags", Message: "must not contain empty entries"}
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return &ValidationError{Field: "tags", Message: "entries must be at most 30 characters"}
		}
		if tag != strings.ToLower(tag) {
			return &ValidationError{Field: "tags", Message: "entries must be lowercase"}
		}
	}
	return nil
}

// NormalizeTags lowercases and trims tags, dropping entries that end up
// empty. The relative order of surviving tags is kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ValidateCommentContent checks the constraints on a comment body.
func ValidateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return &ValidationError{Field: "content", Message: "must be at most 1000 characters"}
	}
	return nil
}
