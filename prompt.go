package main

import (
	"fmt"
	"strings"
)

// sizeGuidance maps each output size to the length sentence substituted into
// the system prompt.
var sizeGuidance = map[OutputSize]string{
	SizeShort:  "The article should be approximately 1-2 pages long (500-1000 words).",
	SizeMedium: "The article should be approximately 2-4 pages long (1000-2000 words).",
	SizeLong:   "The article should be approximately 4-6 pages long (2000-3000 words).",
}

// buildPrompt assembles the system and user instructions from the transcripts,
// the optional context message and the output size. An unknown size falls back
// to MEDIUM. Deterministic: transcripts keep their input order.
func buildPrompt(config *Config, transcripts []string, contextMessage string, size OutputSize) (string, string, error) {
	systemTemplate := config.GetSystemPrompt()
	if !strings.Contains(systemTemplate, "{{.SizeGuidance}}") {
		return "", "", fmt.Errorf("system prompt template must contain {{.SizeGuidance}} variable")
	}

	guidance, ok := sizeGuidance[size]
	if !ok {
		guidance = sizeGuidance[SizeMedium]
	}
	systemInstruction := strings.ReplaceAll(systemTemplate, "{{.SizeGuidance}}", guidance)

	var transcriptBlock strings.Builder
	for i, transcript := range transcripts {
		fmt.Fprintf(&transcriptBlock, "\n\n--- TRANSCRIPT %d ---\n\n%s\n", i+1, transcript)
	}

	// No empty block: omitted entirely when the context message is blank.
	contextBlock := ""
	if strings.TrimSpace(contextMessage) != "" {
		contextBlock = fmt.Sprintf(`
CONTEXT BLOCK:
Topic: %s
Angle: Technical deep-dive with practical insights
Audience: Senior engineers and technical practitioners
`, contextMessage)
	}

	userTemplate := config.GetUserPrompt()
	for _, variable := range []string{"{{.ContextBlock}}", "{{.Transcripts}}"} {
		if !strings.Contains(userTemplate, variable) {
			return "", "", fmt.Errorf("user prompt template must contain %s variable", variable)
		}
	}
	userInstruction := strings.ReplaceAll(userTemplate, "{{.ContextBlock}}", contextBlock)
	userInstruction = strings.ReplaceAll(userInstruction, "{{.Transcripts}}", transcriptBlock.String())

	return systemInstruction, userInstruction, nil
}
