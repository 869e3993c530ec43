package captioning

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const describePrompt = `Analiza esta imagen de un alimento. Proporciona un título conciso y atractivo, una descripción apetitosa de 2-3 frases y 3 etiquetas de categoría relevantes (como 'Panadería', 'Vegano', 'Postre'). Responde SÓLO con un objeto JSON con el formato: { "title": "...", "description": "...", "tags": ["...", "...", "..."] }. No incluyas nada más en tu respuesta, ni siquiera los marcadores de código JSON.`

// Some model responses still arrive wrapped in a markdown code fence despite
// the JSON MIME type; strip it before parsing.
var fenceRe = regexp.MustCompile("(?s)^```(?:\\w+)?\\s*\\n?(.*?)\\n?\\s*```$")

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &GeminiClient{model: model}, nil
}

func (c *GeminiClient) Describe(ctx context.Context, imageData []byte, mimeType string) (*Caption, error) {
	resp, err := c.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: imageData},
		genai.Text(describePrompt),
	)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, ok := part.(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", part)
	}

	raw := strings.TrimSpace(string(txt))
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		raw = strings.TrimSpace(m[1])
	}

	var caption Caption
	if err := json.Unmarshal([]byte(raw), &caption); err != nil {
		return nil, fmt.Errorf("failed to parse caption JSON: %w", err)
	}

	return &caption, nil
}
