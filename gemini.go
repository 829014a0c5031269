// gemini.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"google.golang.org/genai"
)

// articleGenerator produces article text from an instruction pair.
type articleGenerator interface {
	Generate(ctx context.Context, systemInstruction, userInstruction string) (string, error)
}

// GeminiClient streams article generation from the Gemini API.
type GeminiClient struct {
	client         *genai.Client
	model          string
	enableResearch bool
	progress       io.Writer
}

// NewGeminiClient creates a Gemini client. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable; if that is absent too the error is
// raised here, before any network call.
func NewGeminiClient(ctx context.Context, apiKey, model string, enableResearch bool, progress io.Writer) (*GeminiClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	if progress == nil {
		progress = io.Discard
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		enableResearch: enableResearch,
		progress:       progress,
	}, nil
}

// Generate sends the instruction pair and concatenates the streamed chunks in
// arrival order, echoing each chunk to the progress writer as it arrives.
func (gc *GeminiClient) Generate(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingLevel: genai.ThinkingLevelHigh,
		},
	}
	if gc.enableResearch {
		config.Tools = []*genai.Tool{
			{URLContext: &genai.URLContext{}},
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	debugLog("generation request: model=%s research=%t", gc.model, gc.enableResearch)

	var response strings.Builder
	for chunk, err := range gc.client.Models.GenerateContentStream(ctx, gc.model, genai.Text(userInstruction), config) {
		if err != nil {
			return "", fmt.Errorf("generation stream: %w", err)
		}
		text := chunk.Text()
		if text == "" {
			continue
		}
		response.WriteString(text)
		fmt.Fprint(gc.progress, text)
	}

	return response.String(), nil
}
