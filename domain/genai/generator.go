// Package genai defines the domain contract for the generative backend.
// Implementations live under infrastructure/adapter.
package genai

import "context"

// Request describes one structured-output generation call.
type Request struct {
	// Model is the backend model identifier.
	Model string

	// Prompt is the user-facing instruction, already localized.
	Prompt string

	// System is the system instruction for the call.
	System string

	// Schema constrains the response to machine-checkable JSON.
	Schema *Schema

	// Grounded requests live web-search grounding for the call.
	Grounded bool
}

// Source is a citation returned alongside a grounded response.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Response is the raw outcome of a generation call.
type Response struct {
	// JSON is the structured output, expected to satisfy the request schema.
	JSON []byte

	// Sources holds grounding citations, if the call was grounded.
	Sources []Source
}

// Generator is the interface to the generative backend.
// Implementations must return errors classifiable by IsTransient.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
