package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// LanguageModel is the narrow surface the pipeline needs from the model
// provider: one prompt in, one text response out.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiModel adapts a genai.GenerativeModel to the LanguageModel interface.
type GeminiModel struct {
	model *genai.GenerativeModel
}

// NewGeminiModel wraps an already configured generative model.
func NewGeminiModel(model *genai.GenerativeModel) *GeminiModel {
	return &GeminiModel{model: model}
}

// Complete sends the prompt as a single chat message and returns the text of
// the first candidate.
func (g *GeminiModel) Complete(ctx context.Context, prompt string) (string, error) {
	chat := g.model.StartChat()
	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("empty response content")
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("no text parts in response")
	}
	return out, nil
}

// stripFence removes a surrounding markdown code fence, if any. The model
// tends to wrap JSON and SQL in ```json / ```sql blocks even when told not to.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
