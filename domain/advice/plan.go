package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Income plan domain. The heaviest personalized call, so it carries the
// longest TTL.
const (
	planDomain  = "plan"
	planVersion = 2
	planTTL     = 120 * time.Minute
)

var planSchema = obj(map[string]*genai.Schema{
	"dailyTarget": numDesc("Daily income target in LAK"),
	"strategies": arr(obj(map[string]*genai.Schema{
		"title":           str(),
		"description":     str(),
		"estimatedIncome": str(),
		"difficulty":      str(),
		"actionSteps":     strList(),
	}, "title", "description", "estimatedIncome", "difficulty", "actionSteps")),
	"immediateActions": strList(),
	"advice":           str(),
}, "dailyTarget", "strategies", "immediateActions", "advice")

// NewIncomePlanRequest builds the request for a personalized daily
// income plan from the user's skills and assets.
func NewIncomePlanRequest(skills UserSkills, lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	key, err := cacheKey(planDomain, planVersion, lang, skills)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`User situation in Laos:
- Target: earn 200,000 LAK per day.
- Starting capital: 0 LAK.
- Assets/skills: bike: %t, car: %t, tuktuk: %t, smartphone: %t, physically strong: %t, languages: %s, education: %s

TASK:
1. Provide a realistic daily plan in Laos to reach the 200k LAK target, with 10 distinct strategies.
2. For EACH strategy, provide concrete actionSteps.
3. Provide immediateActions the user can start today.

IMPORTANT: ALL text fields in the JSON response MUST be written in %s.`,
		skills.HasBike, skills.HasCar, skills.HasTuktuk, skills.HasSmartphone,
		skills.PhysicalStrength, strings.Join(skills.Languages, ", "), skills.Education,
		langName)

	return Request{
		Domain: planDomain,
		Key:    key,
		TTL:    planTTL,
		Model:  ModelFast,
		Schema: planSchema,
		Prompt: prompt,
		System: fmt.Sprintf("You are an expert economic consultant specialized in the Lao PDR market. You MUST respond exclusively in %s.", langName),
	}, nil
}
