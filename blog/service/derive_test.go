package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateExcerpt(t *testing.T) {
	t.Run("short content is returned whole", func(t *testing.T) {
		got := GenerateExcerpt("<p>Just a short post.</p>", DefaultExcerptLength)
		if got != "Just a short post." {
			t.Errorf("expected plain text, got %q", got)
		}
	})

	t.Run("long content is cut at a word boundary", func(t *testing.T) {
		content := "<p>" + strings.Repeat("word ", 60) + "</p>"
		got := GenerateExcerpt(content, DefaultExcerptLength)

		if utf8.RuneCountInString(got) > DefaultExcerptLength+1 {
			t.Errorf("excerpt exceeds budget: %d runes", utf8.RuneCountInString(got))
		}
		if !strings.HasSuffix(got, "…") {
			t.Errorf("expected ellipsis suffix, got %q", got)
		}

		trimmed := strings.TrimSuffix(got, "…")
		words := strings.Fields(trimmed)
		if words[len(words)-1] != "word" {
			t.Errorf("excerpt ends mid-word: %q", words[len(words)-1])
		}
	})

	t.Run("first word longer than the budget is cut hard", func(t *testing.T) {
		content := strings.Repeat("a", 300)
		got := GenerateExcerpt(content, DefaultExcerptLength)

		if utf8.RuneCountInString(got) != DefaultExcerptLength+1 {
			t.Errorf("expected %d runes, got %d", DefaultExcerptLength+1, utf8.RuneCountInString(got))
		}
	})

	t.Run("tags are stripped", func(t *testing.T) {
		got := GenerateExcerpt("<h2>Title</h2><p>Body <strong>text</strong>.</p>", DefaultExcerptLength)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("excerpt still contains markup: %q", got)
		}
		if !strings.Contains(got, "Title") || !strings.Contains(got, "text") {
			t.Errorf("excerpt lost text content: %q", got)
		}
	})

	t.Run("adjacent blocks stay word separated", func(t *testing.T) {
		got := GenerateExcerpt("<p>one</p><p>two</p>", DefaultExcerptLength)
		if got != "one two" {
			t.Errorf("expected %q, got %q", "one two", got)
		}
	})
}

func TestCalculateReadTime(t *testing.T) {
	cases := []struct {
		name    string
		words   int
		minutes int
	}{
		{"empty content", 0, 1},
		{"single word", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"two minutes", 400, 2},
		{"just over two minutes", 401, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := "<p>" + strings.TrimSpace(strings.Repeat("w ", tc.words)) + "</p>"
			if got := CalculateReadTime(content); got != tc.minutes {
				t.Errorf("%d words: expected %d minutes, got %d", tc.words, tc.minutes, got)
			}
		})
	}
}
