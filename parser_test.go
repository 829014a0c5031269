package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseArticleResponse(t *testing.T) {
	article := parseArticleResponse("TITLE: Foo\n\nBody text\n\nHASHTAGS: #a #b #c")

	if article.Title != "Foo" {
		t.Errorf("Title = %q, want %q", article.Title, "Foo")
	}
	if article.Body != "Body text" {
		t.Errorf("Body = %q, want %q", article.Body, "Body text")
	}
	expected := []string{"#a", "#b", "#c"}
	if len(article.Hashtags) != len(expected) {
		t.Fatalf("got %d hashtags, want %d", len(article.Hashtags), len(expected))
	}
	for i, tag := range expected {
		if article.Hashtags[i] != tag {
			t.Errorf("Hashtags[%d] = %q, want %q", i, article.Hashtags[i], tag)
		}
	}
}

func TestParseArticleResponseNoTitle(t *testing.T) {
	article := parseArticleResponse("Just some body text\n\nHASHTAGS: #go")

	if !strings.HasPrefix(article.Title, "Article_") {
		t.Errorf("expected synthesized default title, got %q", article.Title)
	}
	if article.Body != "Just some body text" {
		t.Errorf("Body = %q, want %q", article.Body, "Just some body text")
	}
	if len(article.Hashtags) != 1 || article.Hashtags[0] != "#go" {
		t.Errorf("Hashtags = %v, want [#go]", article.Hashtags)
	}
}

func TestParseArticleResponseNoHashtags(t *testing.T) {
	article := parseArticleResponse("TITLE: Bar\n\nBody only\n")

	if article.Title != "Bar" {
		t.Errorf("Title = %q, want %q", article.Title, "Bar")
	}
	if article.Body != "Body only" {
		t.Errorf("Body = %q, want %q", article.Body, "Body only")
	}
	if len(article.Hashtags) != 0 {
		t.Errorf("expected no hashtags, got %v", article.Hashtags)
	}
}

func TestParseArticleResponseNoMarkers(t *testing.T) {
	article := parseArticleResponse("  plain response  ")

	if article.Title == "" {
		t.Error("expected non-empty default title")
	}
	if article.Body != "plain response" {
		t.Errorf("Body = %q, want trimmed input", article.Body)
	}
}

func TestParseArticleResponseTitleMidText(t *testing.T) {
	article := parseArticleResponse("Preamble line\nTITLE: Buried Title\nRest of body")

	if article.Title != "Buried Title" {
		t.Errorf("Title = %q, want %q", article.Title, "Buried Title")
	}
	if !strings.Contains(article.Body, "Preamble line") || !strings.Contains(article.Body, "Rest of body") {
		t.Errorf("body lost surrounding text: %q", article.Body)
	}
	if strings.Contains(article.Body, "TITLE:") {
		t.Errorf("title line not removed from body: %q", article.Body)
	}
}

func TestParseArticleResponseTrailingContentAfterHashtags(t *testing.T) {
	// The hashtag capture is greedy to end of response; trailing content is
	// discarded with the marker region.
	article := parseArticleResponse("TITLE: X\n\nBody\n\nHASHTAGS: #a #b\nstray trailing line")

	if article.Body != "Body" {
		t.Errorf("Body = %q, want %q", article.Body, "Body")
	}
	expected := []string{"#a", "#b", "stray", "trailing", "line"}
	if len(article.Hashtags) != len(expected) {
		t.Fatalf("Hashtags = %v, want %v", article.Hashtags, expected)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"punctuation and spaces", "Ray vs Triton: A Deep Dive?", "Ray_vs_Triton_A_Deep_Dive"},
		{"unsafe characters", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"whitespace runs", "too   many\t\nspaces", "too_many_spaces"},
		{"empty", "", ""},
		{"plain", "simple", "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeFilename(tt.title)
			if result != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	result := sanitizeFilename(long)
	if len(result) != 100 {
		t.Errorf("expected 100 characters, got %d", len(result))
	}
}

func TestSanitizeFilenameTruncatesMultibyte(t *testing.T) {
	// Titles may contain emojis; the cut must land on a rune boundary.
	long := strings.Repeat("🚀", 150)
	result := sanitizeFilename(long)

	if !utf8.ValidString(result) {
		t.Error("truncated filename is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(result); n != 100 {
		t.Errorf("expected 100 runes, got %d", n)
	}
}
