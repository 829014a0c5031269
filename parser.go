package main

import (
	"regexp"
	"strings"
	"time"
)

var (
	titlePattern    = regexp.MustCompile(`(?m)^TITLE:\s*(.+)$`)
	hashtagsPattern = regexp.MustCompile(`(?s)HASHTAGS:\s*(.+)$`)
	unsafeChars     = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

const maxFilenameLength = 100

// parseArticleResponse extracts the title, body and hashtags from raw
// generated text. Missing markers are tolerated: a missing title becomes a
// timestamp default, missing hashtags yield an empty list. The title is
// stripped first, hashtags second, each removal followed by a trim.
func parseArticleResponse(raw string) *Article {
	body := raw
	var title string
	var hashtags []string

	if m := titlePattern.FindStringSubmatch(body); m != nil {
		title = strings.TrimSpace(m[1])
		body = strings.TrimSpace(titlePattern.ReplaceAllString(body, ""))
	}

	// Greedy to end of response: the marker contract puts hashtags last, so
	// anything trailing them is discarded with them.
	if m := hashtagsPattern.FindStringSubmatch(body); m != nil {
		hashtags = strings.Fields(m[1])
		body = strings.TrimSpace(hashtagsPattern.ReplaceAllString(body, ""))
	}

	if title == "" {
		title = "Article_" + time.Now().Format("20060102_150405")
	}

	return &Article{
		Title:    title,
		Body:     strings.TrimSpace(body),
		Hashtags: hashtags,
	}
}

// sanitizeFilename converts an article title into a filesystem-safe base name
// (extension-free): unsafe characters removed, whitespace runs collapsed to a
// single underscore, capped at 100 characters. The cap counts runes so a
// multibyte title never ends in a split rune.
func sanitizeFilename(title string) string {
	name := unsafeChars.ReplaceAllString(title, "")
	name = whitespaceRuns.ReplaceAllString(name, "_")
	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[:maxFilenameLength])
	}
	return name
}
