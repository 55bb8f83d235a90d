package advice

import (
	"fmt"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Investment advice domain.
const (
	investDomain  = "invest"
	investVersion = 2
	investTTL     = 120 * time.Minute
)

var investSchema = obj(map[string]*genai.Schema{
	"capital": numDesc("Available capital in LAK"),
	"options": arr(obj(map[string]*genai.Schema{
		"name":           str(),
		"description":    str(),
		"expectedReturn": str(),
		"riskLevel":      str(),
		"steps":          strList(),
		"pros":           strList(),
		"cons":           strList(),
		"localPlatforms": strList(),
		"timeline":       str(),
		"financialBreakdown": obj(map[string]*genai.Schema{
			"estDailyRevenue": str(),
			"estDailyCost":    str(),
			"netDailyProfit":  str(),
		}),
	}, "name", "description", "expectedReturn", "riskLevel", "steps", "pros",
		"cons", "localPlatforms", "timeline", "financialBreakdown")),
	"generalAdvice":   str(),
	"marketSentiment": str(),
}, "capital", "options", "generalAdvice", "marketSentiment")

// investmentInput is the canonical key input for investment advice.
type investmentInput struct {
	Capital float64    `json:"capital"`
	Assets  UserSkills `json:"assets"`
}

// NewInvestmentRequest builds the request for capital-based
// micro-business advice. Assets influence the options offered.
func NewInvestmentRequest(capital float64, assets UserSkills, lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if capital < 0 {
		return Request{}, fmt.Errorf("%w: negative capital", ErrInvalidInput)
	}

	key, err := cacheKey(investDomain, investVersion, lang, investmentInput{Capital: capital, Assets: assets})
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	assetsStr := fmt.Sprintf("User has: bike: %t, car: %t, tuktuk: %t", assets.HasBike, assets.HasCar, assets.HasTuktuk)

	prompt := fmt.Sprintf(`I have %.0f LAK. %s.
Give me 3 micro-business options for the Lao market that are HIGHLY REALISTIC and ACTIONABLE.
For each option, provide a financialBreakdown including:
- Daily revenue (gross)
- Daily operating costs (fuel, ingredients, etc.)
- Net daily profit

Include a short marketSentiment summary for the current year.
IMPORTANT: EVERY SINGLE string field MUST be written in %s.`, capital, assetsStr, langName)

	return Request{
		Domain: investDomain,
		Key:    key,
		TTL:    investTTL,
		Model:  ModelFast,
		Schema: investSchema,
		Prompt: prompt,
		System: fmt.Sprintf("You are a professional Lao investment advisor. Your goal is to provide realistic, data-driven advice. You MUST respond exclusively in %s.", langName),
	}, nil
}
