package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// maxRecognizeChars bounds how much text is sent to the model per call.
// Resume headers carry the entities we care about, so truncation is safe.
const maxRecognizeChars = 8000

// Gemini is a Recognizer backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed recognizer.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Recognize extracts named entities from text using the model.
func (g *Gemini) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if len(text) > maxRecognizeChars {
		text = text[:maxRecognizeChars]
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildEntityPrompt(text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return parseEntities(cleanJSONBlock(raw), text)
}

// Close releases resources held by the client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// buildEntityPrompt constructs the extraction prompt for the model.
func buildEntityPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert named-entity recognizer. COPY TEXT VERBATIM - do not paraphrase or reword.\n")
	sb.WriteString("Your task is to find named entities in the input text.\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	sb.WriteString("  \"entities\": [\n")
	sb.WriteString("    {\"category\": \"PERSON\" | \"ORG\" | \"LOC\", \"text\": \"string\"} // exact substring from the input\n")
	sb.WriteString("  ]\n}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Each entity text must be an exact substring of the input.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// entityEnvelope is the JSON shape the model is asked to return.
type entityEnvelope struct {
	Entities []struct {
		Category string `json:"category"`
		Text     string `json:"text"`
	} `json:"entities"`
}

// parseEntities decodes the model output and resolves byte offsets for each
// entity by locating its text in the source. Entities whose text cannot be
// found verbatim are dropped; a model that invents spans must not poison
// the positional bias downstream.
func parseEntities(raw, source string) ([]Entity, error) {
	var envelope entityEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	entities := make([]Entity, 0, len(envelope.Entities))
	searchFrom := 0
	for _, e := range envelope.Entities {
		span := strings.TrimSpace(e.Text)
		if span == "" {
			continue
		}

		start := strings.Index(source[searchFrom:], span)
		if start >= 0 {
			start += searchFrom
		} else {
			// Fall back to a full-text search for out-of-order results.
			start = strings.Index(source, span)
		}
		if start < 0 {
			continue
		}

		entities = append(entities, Entity{
			Category: strings.ToUpper(strings.TrimSpace(e.Category)),
			Text:     span,
			Start:    start,
			End:      start + len(span),
		})
		if end := start + len(span); end > searchFrom {
			searchFrom = end
		}
	}

	return entities, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
