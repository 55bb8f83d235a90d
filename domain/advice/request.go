package advice

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/laokip/advisor/domain/genai"
)

// Backend model identifiers. Heavier analyses use the pro model, the
// rest use the fast model.
const (
	ModelFast = "gemini-3-flash-preview"
	ModelPro  = "gemini-3-pro-preview"
)

// Request fully describes one advice call so the gateway can treat all
// domains uniformly. Requests are built by the per-domain constructors
// and are immutable thereafter.
type Request struct {
	// Domain tags the advice domain, e.g. "plan" or "market".
	Domain string

	// Key is the deterministic cache key for this request. It embeds
	// the domain tag, a version tag, a digest of the input parameters,
	// and the language code; bumping the domain version invalidates all
	// previously cached entries for the domain.
	Key string

	// TTL is how long a successful result stays fresh.
	TTL time.Duration

	// Model selects the backend model.
	Model string

	// Grounded requests live web-search grounding.
	Grounded bool

	// Schema constrains and validates the structured response.
	Schema *genai.Schema

	// Prompt is the localized instruction sent to the backend.
	Prompt string

	// System is the system instruction for the call.
	System string
}

// cacheKey derives the deterministic cache key for a domain request.
// Input parameters are digested from their canonical JSON encoding, so
// any input or language change yields a different key.
func cacheKey(domain string, version int, lang Language, input any) (string, error) {
	if input == nil {
		return fmt.Sprintf("advice:%s:v%d:%s", domain, version, lang), nil
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return fmt.Sprintf("advice:%s:v%d:%s:%016x", domain, version, lang, xxhash.Sum64(raw)), nil
}
