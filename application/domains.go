package application

import (
	"context"

	"github.com/laokip/advisor/domain/advice"
)

// Typed per-domain entry points. Each returns the decoded result, a
// flag reporting whether it was served from the stale fallback path,
// and an error only when both the backend and the fallback failed.

// FetchIncomePlan returns a personalized daily income plan.
func (g *Gateway) FetchIncomePlan(ctx context.Context, skills advice.UserSkills, lang advice.Language) (*advice.IncomePlan, bool, error) {
	req, err := advice.NewIncomePlanRequest(skills, lang)
	plan, stale, err := fetch[advice.IncomePlan](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &plan, stale, nil
}

// FetchInvestmentAdvice returns micro-business options for the given
// capital and assets.
func (g *Gateway) FetchInvestmentAdvice(ctx context.Context, capital float64, assets advice.UserSkills, lang advice.Language) (*advice.InvestmentAdvice, bool, error) {
	req, err := advice.NewInvestmentRequest(capital, assets, lang)
	res, stale, err := fetch[advice.InvestmentAdvice](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &res, stale, nil
}

// FetchStockAnalysis returns the grounded exchange and local-venture
// analysis.
func (g *Gateway) FetchStockAnalysis(ctx context.Context, lang advice.Language) (*advice.StockMarketAnalysis, bool, error) {
	req, err := advice.NewStockAnalysisRequest(lang)
	res, stale, err := fetch[advice.StockMarketAnalysis](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &res, stale, nil
}

// FetchMarketingPlan returns a marketing plan for a business idea.
func (g *Gateway) FetchMarketingPlan(ctx context.Context, idea string, lang advice.Language) (*advice.MarketingPlan, bool, error) {
	req, err := advice.NewMarketingPlanRequest(idea, lang)
	res, stale, err := fetch[advice.MarketingPlan](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &res, stale, nil
}

// FetchBusinessAnalysis returns a feasibility analysis for a business
// idea.
func (g *Gateway) FetchBusinessAnalysis(ctx context.Context, idea string, lang advice.Language) (*advice.BusinessAnalysis, bool, error) {
	req, err := advice.NewBusinessAnalysisRequest(idea, lang)
	res, stale, err := fetch[advice.BusinessAnalysis](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &res, stale, nil
}

// FetchJobListings returns grounded job listings for a category.
func (g *Gateway) FetchJobListings(ctx context.Context, category string, lang advice.Language) ([]advice.JobListing, bool, error) {
	req, err := advice.NewJobSearchRequest(category, lang)
	jobs, stale, err := fetch[[]advice.JobListing](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return jobs, stale, nil
}

// FetchMarketData returns grounded Lao financial market data with
// citations attached.
func (g *Gateway) FetchMarketData(ctx context.Context, lang advice.Language) (*advice.MarketData, bool, error) {
	req, err := advice.NewMarketDataRequest(lang)
	res, stale, err := fetch[advice.MarketData](ctx, g, req, err)
	if err != nil {
		return nil, false, err
	}
	return &res, stale, nil
}
