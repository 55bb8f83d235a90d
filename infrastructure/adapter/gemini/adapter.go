// Package gemini implements the genai.Generator domain interface
// against the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	sdk "google.golang.org/genai"

	"github.com/laokip/advisor/domain/genai"
)

// Config configures the Gemini adapter.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string
}

// Adapter bridges the domain Generator contract to the Gemini SDK.
type Adapter struct {
	client *sdk.Client
}

// NewAdapter creates a new Gemini adapter.
func NewAdapter(ctx context.Context, cfg Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing API key")
	}

	client, err := sdk.NewClient(ctx, &sdk.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: sdk.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: client init: %w", err)
	}

	return &Adapter{client: client}, nil
}

// NewAdapterFromClient creates an adapter from an existing SDK client.
func NewAdapterFromClient(client *sdk.Client) *Adapter {
	return &Adapter{client: client}
}

// Generate performs one structured-output generation call.
func (a *Adapter) Generate(ctx context.Context, req genai.Request) (genai.Response, error) {
	cfg := &sdk.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toSDKSchema(req.Schema),
	}

	if req.System != "" {
		cfg.SystemInstruction = &sdk.Content{
			Parts: []*sdk.Part{{Text: req.System}},
		}
	}

	if req.Grounded {
		cfg.Tools = []*sdk.Tool{{GoogleSearch: &sdk.GoogleSearch{}}}
	}

	resp, err := a.client.Models.GenerateContent(ctx, req.Model, sdk.Text(req.Prompt), cfg)
	if err != nil {
		return genai.Response{}, normalizeError(err)
	}

	text := resp.Text()
	if text == "" {
		return genai.Response{}, genai.ErrEmptyResponse
	}

	return genai.Response{
		JSON:    []byte(text),
		Sources: extractSources(resp),
	}, nil
}

// extractSources collects grounding citations from the response
// metadata, if the call was grounded.
func extractSources(resp *sdk.GenerateContentResponse) []genai.Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	chunks := resp.Candidates[0].GroundingMetadata.GroundingChunks
	if len(chunks) == 0 {
		return nil
	}

	sources := make([]genai.Source, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Official Source"
		}
		sources = append(sources, genai.Source{
			Title: title,
			URI:   chunk.Web.URI,
		})
	}
	return sources
}

// normalizeError maps SDK failures to the domain's UpstreamError so the
// retry policy can classify them from the status code.
func normalizeError(err error) error {
	var apiErr sdk.APIError
	if errors.As(err, &apiErr) {
		return &genai.UpstreamError{
			StatusCode: apiErr.Code,
			Status:     apiErr.Status,
			Message:    apiErr.Message,
		}
	}
	return err
}

// Ensure Adapter implements genai.Generator.
var _ genai.Generator = (*Adapter)(nil)
