package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const maxURLFlags = 10

var (
	urlFlags         [maxURLFlags]string
	contextMessage   string
	outputSize       string
	enableResearch   bool
	delaySeconds     int
	apiKey           string
	systemPromptPath string
	settingsPath     string
	debugMode        bool
)

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:           "transcript-writer",
	Short:         "Generate LinkedIn articles from YouTube transcripts using Gemini",
	Long:          `Downloads transcripts for up to ten YouTube videos, synthesizes them into a single article with the Gemini API, and saves the result as markdown.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		references := make([]string, 0, maxURLFlags)
		for _, url := range urlFlags {
			if strings.TrimSpace(url) != "" {
				references = append(references, url)
			}
		}
		if len(references) == 0 {
			return ErrNoInput
		}

		size := OutputSize(strings.ToUpper(outputSize))
		switch size {
		case SizeShort, SizeMedium, SizeLong:
		default:
			return fmt.Errorf("invalid --output-size %q: must be SHORT, MEDIUM or LONG", outputSize)
		}

		overrides := &ConfigOverrides{}
		if systemPromptPath != "" {
			overrides.SystemPromptPath = &systemPromptPath
		}
		if settingsPath != "" {
			overrides.SettingsPath = &settingsPath
		}

		config, err := NewConfig(overrides)
		if err != nil {
			return err
		}

		if debugMode {
			SetDebugMode(true)
		}

		ctx := context.Background()

		generator, err := NewGeminiClient(ctx, apiKey, config.Settings.Generation.Model, enableResearch, os.Stdout)
		if err != nil {
			return err
		}

		processor := NewArticleProcessor(config, NewTranscriptClient(config.Settings), generator)

		_, err = processor.ProcessReferences(ctx, references, ProcessOptions{
			Context:    contextMessage,
			OutputSize: size,
			Delay:      time.Duration(delaySeconds) * time.Second,
		})
		return err
	},
}

func init() {
	for i := range urlFlags {
		usage := fmt.Sprintf("YouTube URL %d (optional)", i+1)
		if i == 0 {
			usage = "YouTube URL 1"
		}
		rootCmd.Flags().StringVar(&urlFlags[i], fmt.Sprintf("url-%d", i+1), "", usage)
	}
	rootCmd.MarkFlagRequired("url-1")
	rootCmd.Flags().StringVar(&contextMessage, "context", "", "Context message about the article (optional)")
	rootCmd.Flags().StringVar(&outputSize, "output-size", "MEDIUM", "Output size: SHORT, MEDIUM or LONG")
	rootCmd.Flags().BoolVar(&enableResearch, "enable-research", true, "Enable web search and URL context during generation")
	rootCmd.Flags().IntVar(&delaySeconds, "delay", 15, "Delay between transcript downloads in seconds")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY environment variable)")
	rootCmd.Flags().StringVar(&systemPromptPath, "system-prompt", "", "Path to custom system prompt file")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to custom settings file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
