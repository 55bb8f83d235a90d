package advice

import (
	"fmt"
	"time"

	"github.com/laokip/advisor/domain/genai"
)

// Stock market analysis domain. Grounded in live search, refreshed more
// often than the personalized plans.
const (
	stockDomain  = "stock"
	stockVersion = 2
	stockTTL     = 60 * time.Minute
)

var stockSchema = obj(map[string]*genai.Schema{
	"marketStatus": str(),
	"topStocks": arr(obj(map[string]*genai.Schema{
		"ticker":           str(),
		"companyName":      str(),
		"currentPrice":     str(),
		"riskScore":        numDesc("1-10"),
		"feasibilityScore": numDesc("1-10"),
		"expectedReturn":   str(),
		"dividendYield":    str(),
		"pros":             strList(),
		"cons":             strList(),
		"analysis":         str(),
	}, "ticker", "companyName", "currentPrice", "riskScore", "feasibilityScore",
		"expectedReturn", "dividendYield", "pros", "cons", "analysis")),
	"localVentures": arr(obj(map[string]*genai.Schema{
		"title":         str(),
		"minCapital":    str(),
		"profitRate":    str(),
		"potentialLoss": str(),
		"description":   str(),
		"riskLevel":     str(),
		"duration":      str(),
		"howToStart":    strList(),
	}, "title", "minCapital", "profitRate", "potentialLoss", "description",
		"riskLevel", "duration", "howToStart")),
	"investmentMethod":  strList(),
	"generalRiskAdvice": str(),
	"lastUpdated":       str(),
}, "marketStatus", "topStocks", "localVentures", "investmentMethod",
	"generalRiskAdvice", "lastUpdated")

// NewStockAnalysisRequest builds the request for the exchange and
// local-venture analysis. The request has no user input; the cache key
// varies only with the language.
func NewStockAnalysisRequest(lang Language) (Request, error) {
	if !lang.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	key, err := cacheKey(stockDomain, stockVersion, lang, nil)
	if err != nil {
		return Request{}, err
	}

	langName := lang.Name()
	prompt := fmt.Sprintf(`Search for and analyze the current status of the Lao Securities Exchange (LSX) AND common local business ventures:
1. LSX stocks: top listed companies (EDL-Gen, BCEL, LWPC, PTL, SVB).
2. Local ventures: realistic investment ventures for individual Lao citizens, from 0 LAK (sweat equity, referral agents) up to high-capital ventures.
3. For each local venture, explain the profit rate, the potential loss and risks, and practical steps to start.
4. General risk advice for individual investors in the current Lao economy.

IMPORTANT: Use web search for the most recent stock prices and dividend announcements.
ALL descriptive text in the JSON MUST be written in %s.`, langName)

	return Request{
		Domain:   stockDomain,
		Key:      key,
		TTL:      stockTTL,
		Model:    ModelPro,
		Grounded: true,
		Schema:   stockSchema,
		Prompt:   prompt,
		System:   fmt.Sprintf("You are a professional financial advisor at the Lao Securities Exchange (LSX). Your advice is based on factual data and current market trends in Laos. You MUST respond exclusively in %s.", langName),
	}, nil
}
