package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Business analysis domain.
const (
	businessDomain  = "business"
	businessVersion = 2
	businessTTL     = 90 * time.Minute
)

var businessSchema = obj(map[string]*genai.Schema{
	"idea": str(),
	"swot": obj(map[string]*genai.Schema{
		"strengths":     strList(),
		"weaknesses":    strList(),
		"opportunities": strList(),
		"threats":       strList(),
	}),
	"estimatedStartupCost": str(),
	"feasibilityScore":     numDesc("1-10"),
	"actionSteps":          strList(),
}, "idea", "swot", "estimatedStartupCost", "feasibilityScore", "actionSteps")

// NewBusinessAnalysisRequest builds the request for a feasibility
// analysis of the given business idea.
func NewBusinessAnalysisRequest(idea string, lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if strings.TrimSpace(idea) == "" {
		return Request{}, fmt.Errorf("%w: empty business idea", ErrInvalidInput)
	}

	key, err := cacheKey(businessDomain, businessVersion, lang, idea)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`Analyze this business idea in Laos: %q. Provide a highly realistic breakdown of what it takes to actually succeed, including a SWOT analysis, estimated startup cost, a 1-10 feasibility score, and concrete action steps.

IMPORTANT: ALL text fields in the JSON response MUST be written in %s.`, idea, langName)

	return Request{
		Domain: businessDomain,
		Key:    key,
		TTL:    businessTTL,
		Model:  ModelPro,
		Schema: businessSchema,
		Prompt: prompt,
		System: fmt.Sprintf("You are a business consultant for the Lao market. Focus on practical, real-world execution. You MUST respond exclusively in %s.", langName),
	}, nil
}
