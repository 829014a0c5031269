// processor.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// transcriptFetcher abstracts transcript retrieval so tests can stub it.
type transcriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// ProcessOptions carries the per-run parameters from the CLI.
type ProcessOptions struct {
	Context    string
	OutputSize OutputSize
	Delay      time.Duration
}

// ArticleProcessor handles the main workflow
type ArticleProcessor struct {
	config    *Config
	fetcher   transcriptFetcher
	generator articleGenerator
}

// NewArticleProcessor creates a processor wired to the given collaborators.
func NewArticleProcessor(config *Config, fetcher transcriptFetcher, generator articleGenerator) *ArticleProcessor {
	return &ArticleProcessor{
		config:    config,
		fetcher:   fetcher,
		generator: generator,
	}
}

// ProcessReferences runs the full pipeline: download a transcript for each
// reference sequentially, generate one article from all of them, and save it.
// Per-reference failures are logged and skipped; zero surviving transcripts
// aborts with ErrNoTranscripts, and a generation failure aborts the run.
func (ap *ArticleProcessor) ProcessReferences(ctx context.Context, references []string, opts ProcessOptions) ([]ProcessingResult, error) {
	if len(references) == 0 {
		return nil, ErrNoInput
	}

	log.Printf("Processing %d video(s)...", len(references))

	results := make([]ProcessingResult, 0, len(references))
	var transcripts []string

	for i, reference := range references {
		result := ProcessingResult{Reference: reference}

		videoID, err := extractVideoID(reference)
		if err != nil {
			result.Status = StatusSkipped
			result.Error = err
			results = append(results, result)
			log.Printf("✗ Skipping %s: %v", reference, err)
			continue
		}
		result.VideoID = videoID

		log.Printf("[%d/%d] → Fetching transcript for %s...", i+1, len(references), videoID)
		transcript, err := ap.fetcher.Fetch(ctx, videoID)
		if err != nil {
			result.Status = StatusSkipped
			result.Error = fmt.Errorf("fetching transcript: %w", err)
			results = append(results, result)
			log.Printf("✗ Skipping %s: %v", reference, result.Error)
			continue
		}

		transcripts = append(transcripts, transcript)
		result.Status = StatusSuccess
		results = append(results, result)
		log.Printf("✓ Downloaded transcript (%d chars)", len(transcript))

		// Fixed delay between downloads, skipped after the last one.
		if opts.Delay > 0 && i < len(references)-1 {
			log.Printf("Waiting %s before next download...", opts.Delay)
			time.Sleep(opts.Delay)
		}
	}

	if len(transcripts) == 0 {
		return results, ErrNoTranscripts
	}

	log.Printf("✓ Downloaded %d transcript(s)", len(transcripts))

	systemInstruction, userInstruction, err := buildPrompt(ap.config, transcripts, opts.Context, opts.OutputSize)
	if err != nil {
		return results, fmt.Errorf("building prompt: %w", err)
	}

	log.Printf("→ Generating article...")
	response, err := ap.generator.Generate(ctx, systemInstruction, userInstruction)
	if err != nil {
		return results, fmt.Errorf("generating article: %w", err)
	}

	article := parseArticleResponse(response)

	filename, err := ap.saveArticle(article)
	if err != nil {
		return results, fmt.Errorf("saving article: %w", err)
	}

	log.Printf("✓ Article saved to: %s", filename)
	log.Printf("  Title: %s", article.Title)
	if len(article.Hashtags) > 0 {
		log.Printf("  Hashtags: %s", strings.Join(article.Hashtags, ", "))
	} else {
		log.Printf("  Hashtags: none")
	}

	return results, nil
}

// saveArticle writes the formatted article under the output directory and
// returns the file path. An existing file with the same name is overwritten.
func (ap *ArticleProcessor) saveArticle(article *Article) (string, error) {
	outputDir := ap.config.Settings.OutputDirectory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(outputDir, sanitizeFilename(article.Title)+".md")

	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s\n\n", article.Title)
	buf.WriteString(article.Body)
	if len(article.Hashtags) > 0 {
		fmt.Fprintf(&buf, "\n\n---\n\n**Hashtags:** %s\n", strings.Join(article.Hashtags, " "))
	}

	if err := os.WriteFile(filename, []byte(buf.String()), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
