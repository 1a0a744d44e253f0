package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/nahidhasan98/standup-summarizer/internal/logger"
)

// standupSchema is the response-schema hint sent with every summary
// request. The model is still free to wrap its reply in prose or a
// code fence, which is why ParseResponse stays defensive.
var standupSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"projects": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":  {Type: genai.TypeString},
					"tasks": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"name", "tasks"},
			},
		},
	},
	Required: []string{"projects"},
}

// Client calls the Gemini API to turn a standup prompt into a
// structured summary.
type Client struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// NewClient creates a Gemini client. The API key comes from
// configuration and is required at startup.
func NewClient(ctx context.Context, apiKey, model string, log *logger.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model, log: log}, nil
}

// Summarize sends the prompt to the model and returns whatever
// ParseResponse can make of the reply: the decoded summary, the raw
// reply text, or nil when the envelope held no text at all. The error
// is non-nil only when the model call itself fails.
func (c *Client) Summarize(ctx context.Context, prompt string) (any, error) {
	c.log.Debugf("Requesting standup summary from %s (prompt: %d bytes)", c.model, len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   standupSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return ParseResponse(toEnvelope(resp)), nil
}

// toEnvelope reduces the SDK response to the generic tree the
// extractors walk.
func toEnvelope(resp *genai.GenerateContentResponse) any {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil
	}
	var envelope any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	return envelope
}
