package entity_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"inkpress/internal/domain/entity"
)

func TestReadTime(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"empty content", 0, 1},
		{"single word", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"250 words rounds up to two minutes", 250, 2},
		{"exactly two minutes", 400, 2},
		{"long article", 1999, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tc.words))
			if got := entity.ReadTime(content); got != tc.want {
				t.Errorf("ReadTime(%d words) = %d, want %d", tc.words, got, tc.want)
			}
		})
	}
}

func TestExcerpt_StripsMarkdownMarkers(t *testing.T) {
	got := entity.Excerpt("# Heading\n\nSome **bold** and _italic_ text with `code`.")
	want := "Heading Some bold and italic text with code."
	if got != want {
		t.Errorf("Excerpt() = %q, want %q", got, want)
	}
}

func TestExcerpt_ShortContentNotTruncated(t *testing.T) {
	got := entity.Excerpt("plain short text")
	if got != "plain short text" {
		t.Errorf("Excerpt() = %q, want unchanged input", got)
	}
	if strings.HasSuffix(got, "...") {
		t.Error("short content must not get an ellipsis")
	}
}

func TestExcerpt_LongContentTruncatedWithEllipsis(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 100)
	got := entity.Excerpt(long)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("Excerpt() = %q, want ellipsis suffix", got)
	}
	if len(got) > entity.MaxExcerptLength {
		t.Errorf("len(Excerpt()) = %d, want <= %d", len(got), entity.MaxExcerptLength)
	}
}

func TestExcerpt_MultibyteContentStaysValidUTF8(t *testing.T) {
	long := "ab" + strings.Repeat("あ", 200)
	got := entity.Excerpt(long)

	if !utf8.ValidString(got) {
		t.Errorf("Excerpt() produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Excerpt() = %q, want ellipsis suffix", got)
	}
	if len(got) > entity.MaxExcerptLength {
		t.Errorf("len(Excerpt()) = %d, want <= %d", len(got), entity.MaxExcerptLength)
	}
}

func TestApplyContentDerivations(t *testing.T) {
	t.Run("fills read time and excerpt", func(t *testing.T) {
		a := &entity.Article{Content: strings.TrimSpace(strings.Repeat("word ", 250))}
		a.ApplyContentDerivations()

		if a.ReadTime != 2 {
			t.Errorf("ReadTime = %d, want 2", a.ReadTime)
		}
		if a.Excerpt == "" {
			t.Error("Excerpt should be auto-derived when absent")
		}
	})

	t.Run("keeps explicit excerpt", func(t *testing.T) {
		a := &entity.Article{Content: "some content", Excerpt: "my own excerpt"}
		a.ApplyContentDerivations()

		if a.Excerpt != "my own excerpt" {
			t.Errorf("Excerpt = %q, want caller-provided excerpt kept", a.Excerpt)
		}
	})
}
