package main

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned when no usable YouTube URL was given.
	ErrNoInput = errors.New("at least one YouTube URL is required")

	// ErrNoTranscripts is returned when every transcript download failed.
	ErrNoTranscripts = errors.New("no transcripts were successfully downloaded")

	// ErrMissingAPIKey is returned before any network call when the Gemini
	// credential is absent.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")
)

// InvalidReferenceError reports a video reference no extraction pattern matched.
type InvalidReferenceError struct {
	Reference string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("could not extract video ID from: %s", e.Reference)
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}
