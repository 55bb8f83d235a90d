package advice

import (
	"fmt"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Market data domain. Fast-moving, so the shortest TTL.
const (
	marketDomain  = "market"
	marketVersion = 2
	marketTTL     = 30 * time.Minute
)

var marketSchema = obj(map[string]*genai.Schema{
	"exchangeRates": obj(map[string]*genai.Schema{
		"USD_LAK": str(),
		"THB_LAK": str(),
		"CNY_LAK": str(),
	}),
	"indicators": obj(map[string]*genai.Schema{
		"goldPrice":        str(),
		"inflationRate":    str(),
		"bankInterestRate": str(),
	}),
	"history": arr(obj(map[string]*genai.Schema{
		"date": strDesc("YYYY-MM-DD"),
		"usd":  numDesc("USD to LAK numeric value"),
		"thb":  numDesc("THB to LAK numeric value"),
		"cny":  numDesc("CNY to LAK numeric value"),
		"gold": numDesc("Gold price numeric value (LAK per Baht)"),
	}, "date", "usd", "thb", "cny", "gold")),
	"summary": str(),
}, "exchangeRates", "indicators", "history", "summary")

// NewMarketDataRequest builds the request for current Lao financial
// market data. Always grounded; the gateway attaches the citation list
// to the result.
func NewMarketDataRequest(lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	key, err := cacheKey(marketDomain, marketVersion, lang, nil)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`Search for and provide current official financial market data from Lao PDR:
1. Current exchange rates: USD to LAK, THB to LAK, CNY to LAK. Prioritize rates from the Bank of the Lao PDR (BOL) or BCEL.
2. Key economic indicators: gold price (LAK per Baht/Salueng), current inflation rate in Laos, and average commercial bank savings interest rates.
3. A 7-day historical trend for USD/LAK, THB/LAK, CNY/LAK and gold prices based on recent Lao market movements.
4. A 2-sentence market summary focused on the Lao economic climate.

IMPORTANT: Prioritize information from official Lao domains (.gov.la, .com.la) and reputable local banks.
ALL descriptive text in the JSON MUST be written in %s.`, langName)

	return Request{
		Domain:   marketDomain,
		Key:      key,
		TTL:      marketTTL,
		Model:    ModelFast,
		Grounded: true,
		Schema:   marketSchema,
		Prompt:   prompt,
		System:   fmt.Sprintf("You are a financial market analyst specializing in the Lao PDR market. Use web search to find data from official Lao sources like bol.gov.la, bcel.com.la, and the Lao News Agency. Ensure all output strings are localized to %s.", langName),
	}, nil
}
