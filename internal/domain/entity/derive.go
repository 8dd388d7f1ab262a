package entity

import (
	"strings"
	"unicode/utf8"
)

// ReadTime derives the estimated reading time in whole minutes for the
// given Markdown content at WordsPerMinute, never less than 1.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// markdownStripper removes the Markdown markers that would look like noise
// in a plain-text excerpt: heading hashes, emphasis, inline code fences,
// blockquote markers, and link syntax (keeping the link text).
var markdownStripper = strings.NewReplacer(
	"#", "",
	"*", "",
	"_", "",
	"`", "",
	">", "",
	"[", "",
	"]", "",
)

// truncateRunes cuts s after at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Excerpt derives a plain-text excerpt from Markdown content.
// The first MaxExcerptLength characters are stripped of Markdown markers
// and collapsed to single spaces; an ellipsis is appended when the
// content was truncated. Truncation never splits a multibyte rune.
func Excerpt(content string) string {
	truncated := false
	src := content
	if len(src) > MaxExcerptLength {
		src = truncateRunes(src, MaxExcerptLength)
		truncated = true
	}

	stripped := markdownStripper.Replace(src)
	// Drop URL targets left over from link syntax: "text(https://...)".
	if i := strings.Index(stripped, "(http"); i >= 0 {
		if j := strings.Index(stripped[i:], ")"); j >= 0 {
			stripped = stripped[:i] + stripped[i+j+1:]
		}
	}
	stripped = strings.Join(strings.Fields(stripped), " ")

	if truncated {
		const ellipsis = "..."
		if len(stripped) > MaxExcerptLength-len(ellipsis) {
			stripped = truncateRunes(stripped, MaxExcerptLength-len(ellipsis))
			stripped = strings.TrimRight(stripped, " ")
		}
		stripped += ellipsis
	}
	return stripped
}

// ApplyContentDerivations recomputes the fields derived from Content:
// the read time always, and the excerpt only when the caller has not
// provided one. Call this whenever Content changes.
func (a *Article) ApplyContentDerivations() {
	a.ReadTime = ReadTime(a.Content)
	if a.Excerpt == "" {
		a.Excerpt = Excerpt(a.Content)
	}
}
