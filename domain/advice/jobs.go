package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Job search domain. Grounded, since listings go stale quickly.
const (
	jobsDomain  = "jobs"
	jobsVersion = 2
	jobsTTL     = 60 * time.Minute
)

var jobsSchema = arr(obj(map[string]*genai.Schema{
	"role":     str(),
	"company":  str(),
	"salary":   str(),
	"location": str(),
	"contact":  str(),
	"link":     str(),
	"source":   strDesc("Where the listing was found"),
	"isUrgent": boolean(),
}, "role", "location", "source"))

// NewJobSearchRequest builds the request for current job listings in
// the given category.
func NewJobSearchRequest(category string, lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if strings.TrimSpace(category) == "" {
		return Request{}, fmt.Errorf("%w: empty job category", ErrInvalidInput)
	}

	key, err := cacheKey(jobsDomain, jobsVersion, lang, category)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`Search for current job openings in Laos in the %q category.
Return up to 10 real listings. For each listing include the role, employer, salary
(if stated), location, a contact phone number or application link when available,
the source where the listing was found, and whether it is marked urgent.

IMPORTANT: Prefer listings from Lao job boards and local Facebook hiring groups.
ALL descriptive text in the JSON MUST be written in %s.`, category, langName)

	return Request{
		Domain:   jobsDomain,
		Key:      key,
		TTL:      jobsTTL,
		Model:    ModelFast,
		Grounded: true,
		Schema:   jobsSchema,
		Prompt:   prompt,
		System:   fmt.Sprintf("You are a job search assistant for the Lao labor market. Only report listings you actually found; never invent employers or contact details. You MUST respond exclusively in %s.", langName),
	}, nil
}
