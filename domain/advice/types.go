package advice

import "github.com/laokip/advisor/domain/genai"

// UserSkills captures the assets and skills a user reports when asking
// for an income plan or investment advice.
type UserSkills struct {
	HasBike          bool     `json:"hasBike"`
	HasCar           bool     `json:"hasCar"`
	HasTuktuk        bool     `json:"hasTuktuk"`
	HasSmartphone    bool     `json:"hasSmartphone"`
	PhysicalStrength bool     `json:"physicalStrength"`
	Languages        []string `json:"languages"`
	Education        string   `json:"education"`
}

// IncomeStrategy is one way to earn toward the daily target.
type IncomeStrategy struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedIncome string   `json:"estimatedIncome"`
	Difficulty      string   `json:"difficulty"`
	ActionSteps     []string `json:"actionSteps"`
}

// IncomePlan is a personalized daily income plan.
type IncomePlan struct {
	DailyTarget      float64          `json:"dailyTarget"`
	Strategies       []IncomeStrategy `json:"strategies"`
	ImmediateActions []string         `json:"immediateActions"`
	Advice           string           `json:"advice"`
}

// FinancialBreakdown splits an option into gross revenue, operating
// cost, and net profit per day.
type FinancialBreakdown struct {
	EstDailyRevenue string `json:"estDailyRevenue"`
	EstDailyCost    string `json:"estDailyCost"`
	NetDailyProfit  string `json:"netDailyProfit"`
}

// InvestmentOption is one micro-business option for a given capital.
type InvestmentOption struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	ExpectedReturn     string             `json:"expectedReturn"`
	RiskLevel          string             `json:"riskLevel"`
	Steps              []string           `json:"steps"`
	Pros               []string           `json:"pros"`
	Cons               []string           `json:"cons"`
	LocalPlatforms     []string           `json:"localPlatforms"`
	Timeline           string             `json:"timeline"`
	FinancialBreakdown FinancialBreakdown `json:"financialBreakdown"`
}

// InvestmentAdvice is capital-based micro-business advice.
type InvestmentAdvice struct {
	Capital         float64            `json:"capital"`
	Options         []InvestmentOption `json:"options"`
	GeneralAdvice   string             `json:"generalAdvice"`
	MarketSentiment string             `json:"marketSentiment"`
}

// StockInfo is the analysis of one listed company.
type StockInfo struct {
	Ticker           string   `json:"ticker"`
	CompanyName      string   `json:"companyName"`
	CurrentPrice     string   `json:"currentPrice"`
	RiskScore        float64  `json:"riskScore"`
	FeasibilityScore float64  `json:"feasibilityScore"`
	ExpectedReturn   string   `json:"expectedReturn"`
	DividendYield    string   `json:"dividendYield"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	Analysis         string   `json:"analysis"`
}

// LocalVenture is a realistic non-exchange investment venture.
type LocalVenture struct {
	Title         string   `json:"title"`
	MinCapital    string   `json:"minCapital"`
	ProfitRate    string   `json:"profitRate"`
	PotentialLoss string   `json:"potentialLoss"`
	Description   string   `json:"description"`
	RiskLevel     string   `json:"riskLevel"`
	Duration      string   `json:"duration"`
	HowToStart    []string `json:"howToStart"`
}

// StockMarketAnalysis covers the securities exchange and local ventures.
type StockMarketAnalysis struct {
	MarketStatus      string         `json:"marketStatus"`
	TopStocks         []StockInfo    `json:"topStocks"`
	LocalVentures     []LocalVenture `json:"localVentures"`
	InvestmentMethod  []string       `json:"investmentMethod"`
	GeneralRiskAdvice string         `json:"generalRiskAdvice"`
	LastUpdated       string         `json:"lastUpdated"`
	Sources           []genai.Source `json:"sources,omitempty"`
}

// MarketingChannel is one customer acquisition channel.
type MarketingChannel struct {
	Platform           string `json:"platform"`
	Strategy           string `json:"strategy"`
	HowToFindCustomers string `json:"howToFindCustomers"`
}

// Incentive is a promotion pattern for a marketing plan.
type Incentive struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MarketingPlan is a practical marketing plan for a business idea.
type MarketingPlan struct {
	Idea           string             `json:"idea"`
	TargetAudience []string           `json:"targetAudience"`
	Channels       []MarketingChannel `json:"channels"`
	Incentives     []Incentive        `json:"incentives"`
	ContentIdeas   []string           `json:"contentIdeas"`
	ExpertTip      string             `json:"expertTip"`
}

// SWOT is a strengths/weaknesses/opportunities/threats breakdown.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// BusinessAnalysis is a feasibility breakdown of a business idea.
type BusinessAnalysis struct {
	Idea                 string   `json:"idea"`
	SWOT                 SWOT     `json:"swot"`
	EstimatedStartupCost string   `json:"estimatedStartupCost"`
	FeasibilityScore     float64  `json:"feasibilityScore"`
	ActionSteps          []string `json:"actionSteps"`
}

// JobListing is one job opening found for a category.
type JobListing struct {
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	Salary   string `json:"salary,omitempty"`
	Location string `json:"location"`
	Contact  string `json:"contact,omitempty"`
	Link     string `json:"link,omitempty"`
	Source   string `json:"source"`
	IsUrgent bool   `json:"isUrgent,omitempty"`
}

// ExchangeRates holds current LAK exchange rates.
type ExchangeRates struct {
	USDLAK string `json:"USD_LAK"`
	THBLAK string `json:"THB_LAK"`
	CNYLAK string `json:"CNY_LAK"`
}

// Indicators holds key economic indicators.
type Indicators struct {
	GoldPrice        string `json:"goldPrice"`
	InflationRate    string `json:"inflationRate"`
	BankInterestRate string `json:"bankInterestRate"`
}

// MarketHistoryPoint is one day of exchange and gold price history.
type MarketHistoryPoint struct {
	Date string  `json:"date"`
	USD  float64 `json:"usd"`
	THB  float64 `json:"thb"`
	CNY  float64 `json:"cny"`
	Gold float64 `json:"gold"`
}

// MarketData is current financial market data with citations.
type MarketData struct {
	ExchangeRates ExchangeRates        `json:"exchangeRates"`
	Indicators    Indicators           `json:"indicators"`
	History       []MarketHistoryPoint `json:"history"`
	Summary       string               `json:"summary"`
	Sources       []genai.Source       `json:"sources,omitempty"`
}
