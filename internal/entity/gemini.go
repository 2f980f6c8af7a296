package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// geminiModel is deliberately a small, cheap tier: entity listing is a
	// trivial task and batches can contain hundreds of resumes.
	geminiModel = "gemini-1.5-flash"

	// geminiTimeout bounds a single recognition call so one slow document
	// cannot stall a batch.
	geminiTimeout = 30 * time.Second
)

// Gemini is a Recognizer backed by the Gemini API. Any API or parse failure
// degrades to an empty result; the recognizer contract forbids surfacing
// errors to extraction call sites.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini-backed Recognizer.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client}, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// People returns person names mentioned in the text.
func (g *Gemini) People(text string) []string {
	return g.entities(text, "person names")
}

// Organizations returns company and organization names mentioned in the text.
func (g *Gemini) Organizations(text string) []string {
	return g.entities(text, "company or organization names")
}

func (g *Gemini) entities(text, kind string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), geminiTimeout)
	defer cancel()

	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(0) // deterministic entity listing

	prompt := fmt.Sprintf(
		"List every distinct mention of %s in the following text, in order of first appearance. "+
			"Respond with only a JSON array of strings, no prose.\n\nText:\n%s",
		kind, text)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil
	}

	return parseEntityList(responseText(resp))
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// parseEntityList decodes a JSON string array, tolerating markdown code
// fences around the payload.
func parseEntityList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var entities []string
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil
	}

	out := make([]string, 0, len(entities))
	for _, e := range entities {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
