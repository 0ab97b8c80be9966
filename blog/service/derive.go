package service

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// wordsPerMinute is the assumed reading speed for read time estimates.
const wordsPerMinute = 200

// DefaultExcerptLength is the rune budget for generated excerpts.
const DefaultExcerptLength = 150

var trailingWordRegexp = regexp.MustCompile(`\s+\S*$`)

// stripTags returns the text content of an HTML fragment with
// whitespace collapsed to single spaces. Text from adjacent elements
// is kept word-separated.
func stripTags(fragment string) string {
	tok := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder

	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tok.Text())
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// GenerateExcerpt derives a short plain-text preview from an HTML
// fragment. When the text exceeds maxLength runes it is cut at the
// last whole word at or before the budget and an ellipsis is appended,
// so the result is never longer than maxLength+1 runes and never ends
// mid-word. The only exception is a first word longer than the entire
// budget, which is cut hard.
func GenerateExcerpt(content string, maxLength int) string {
	plain := stripTags(content)

	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}

	// Drop the trailing partial word. A first word longer than the
	// whole budget has no whitespace to anchor on and stays cut hard.
	cut := trailingWordRegexp.ReplaceAllString(string(runes[:maxLength]), "")

	return cut + "…"
}

// CalculateReadTime estimates the minutes needed to read an HTML
// fragment at 200 words per minute, rounded up. Always at least 1.
func CalculateReadTime(content string) int {
	words := len(strings.Fields(stripTags(content)))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
