package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Marketing plan domain.
const (
	marketingDomain  = "marketing"
	marketingVersion = 2
	marketingTTL     = 90 * time.Minute
)

var marketingSchema = obj(map[string]*genai.Schema{
	"idea":           str(),
	"targetAudience": strList(),
	"channels": arr(obj(map[string]*genai.Schema{
		"platform":           str(),
		"strategy":           str(),
		"howToFindCustomers": str(),
	}, "platform", "strategy", "howToFindCustomers")),
	"incentives": arr(obj(map[string]*genai.Schema{
		"title":       str(),
		"description": str(),
	}, "title", "description")),
	"contentIdeas": strList(),
	"expertTip":    str(),
}, "idea", "targetAudience", "channels", "incentives", "contentIdeas", "expertTip")

// NewMarketingPlanRequest builds the request for a marketing plan for
// the given business idea.
func NewMarketingPlanRequest(idea string, lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if strings.TrimSpace(idea) == "" {
		return Request{}, fmt.Errorf("%w: empty business idea", ErrInvalidInput)
	}

	key, err := cacheKey(marketingDomain, marketingVersion, lang, idea)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`Create a highly practical marketing plan and strategy for this business idea in Laos: %q.
The plan must reflect the CURRENT business environment in Lao PDR.
Focus on:
1. Realistic target audience (e.g. Gen Z, office workers in Vientiane, rural farmers).
2. How to find customers (specific Facebook groups, TikTok trends, Loca app integrations).
3. Incentives and promotions that Lao people love (gift-giving, BCEL One discounts).
4. Social media content ideas (TikTok/Facebook).

IMPORTANT: ALL text fields in the JSON response MUST be written in %s.`, idea, langName)

	return Request{
		Domain: marketingDomain,
		Key:    key,
		TTL:    marketingTTL,
		Model:  ModelFast,
		Schema: marketingSchema,
		Prompt: prompt,
		System: fmt.Sprintf("You are a Lao digital marketing expert. Your advice must be practical, specific to Laos, and designed to generate immediate sales. You MUST respond exclusively in %s.", langName),
	}, nil
}
