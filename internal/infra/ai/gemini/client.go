package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/veiligonline/scamcheck/internal/domain/analysis"
	"github.com/veiligonline/scamcheck/internal/infra/ai/prompt"
)

const defaultModel = "gemini-3-pro-preview"

type Client struct {
	client *genai.Client
	model  string
}

// NewClient fails fast when no credential is configured so a check can
// never reach the network without one.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, analysis.ErrMissingAPIKey
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{client: cli, model: model}, nil
}

// Classify issues one generateContent call and returns the raw response
// text. The model is asked for application/json output, but the normalizer
// remains the sole enforcement point.
func (c *Client) Classify(ctx context.Context, userInput string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt.Build(userInput), genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(prompt.SystemInstruction, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", analysis.ErrRequestFailed, err)
	}
	text := result.Text()
	if text == "" {
		return "{}", nil
	}
	return text, nil
}
