package advice

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleSkills() UserSkills {
	return UserSkills{
		HasBike:          true,
		HasSmartphone:    true,
		PhysicalStrength: true,
		Languages:        []string{"Lao", "Thai"},
		Education:        "secondary school",
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	r1, err := NewIncomePlanRequest(sampleSkills(), LanguageLao)
	if err != nil {
		t.Fatalf("NewIncomePlanRequest() error = %v", err)
	}
	r2, err := NewIncomePlanRequest(sampleSkills(), LanguageLao)
	if err != nil {
		t.Fatalf("NewIncomePlanRequest() error = %v", err)
	}

	if r1.Key != r2.Key {
		t.Errorf("same inputs produced different keys: %q vs %q", r1.Key, r2.Key)
	}
}

func TestCacheKeyVariesWithInput(t *testing.T) {
	base, _ := NewIncomePlanRequest(sampleSkills(), LanguageLao)

	changed := sampleSkills()
	changed.HasCar = true
	other, _ := NewIncomePlanRequest(changed, LanguageLao)

	if base.Key == other.Key {
		t.Error("different skills produced identical cache keys")
	}
}

func TestCacheKeyVariesWithLanguage(t *testing.T) {
	lao, _ := NewIncomePlanRequest(sampleSkills(), LanguageLao)
	eng, _ := NewIncomePlanRequest(sampleSkills(), LanguageEng)

	if lao.Key == eng.Key {
		t.Error("different languages produced identical cache keys")
	}
}

func TestCacheKeyEmbedsDomainAndVersion(t *testing.T) {
	r, _ := NewIncomePlanRequest(sampleSkills(), LanguageLao)
	if !strings.HasPrefix(r.Key, "advice:plan:v2:lo:") {
		t.Errorf("Key = %q, want advice:plan:v2:lo: prefix", r.Key)
	}

	stock, _ := NewStockAnalysisRequest(LanguageThai)
	if stock.Key != "advice:stock:v2:th" {
		t.Errorf("no-input key = %q, want advice:stock:v2:th", stock.Key)
	}
}

func TestBuilderRejectsInvalidLanguage(t *testing.T) {
	builders := map[string]func() error{
		"plan": func() error {
			_, err := NewIncomePlanRequest(sampleSkills(), "xx")
			return err
		},
		"invest": func() error {
			_, err := NewInvestmentRequest(1_000_000, UserSkills{}, "xx")
			return err
		},
		"stock": func() error {
			_, err := NewStockAnalysisRequest("xx")
			return err
		},
		"marketing": func() error {
			_, err := NewMarketingPlanRequest("noodle cart", "xx")
			return err
		},
		"business": func() error {
			_, err := NewBusinessAnalysisRequest("noodle cart", "xx")
			return err
		},
		"jobs": func() error {
			_, err := NewJobSearchRequest("Service & Labor", "xx")
			return err
		},
		"market": func() error {
			_, err := NewMarketDataRequest("xx")
			return err
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			if err := build(); !errors.Is(err, ErrInvalidLanguage) {
				t.Errorf("builder error = %v, want ErrInvalidLanguage", err)
			}
		})
	}
}

func TestBuilderInputValidation(t *testing.T) {
	if _, err := NewInvestmentRequest(-100, UserSkills{}, LanguageLao); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative capital error = %v, want ErrInvalidInput", err)
	}
	if _, err := NewMarketingPlanRequest("   ", LanguageLao); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank idea error = %v, want ErrInvalidInput", err)
	}
	if _, err := NewBusinessAnalysisRequest("", LanguageLao); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty idea error = %v, want ErrInvalidInput", err)
	}
	if _, err := NewJobSearchRequest("", LanguageLao); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty category error = %v, want ErrInvalidInput", err)
	}
}

func TestPromptCarriesInputsAndLanguage(t *testing.T) {
	r, err := NewInvestmentRequest(5_000_000, UserSkills{HasBike: true}, LanguageEng)
	if err != nil {
		t.Fatalf("NewInvestmentRequest() error = %v", err)
	}
	if !strings.Contains(r.Prompt, "5000000 LAK") {
		t.Errorf("Prompt does not mention the capital:\n%s", r.Prompt)
	}
	if !strings.Contains(r.Prompt, "English") {
		t.Errorf("Prompt does not carry the language directive:\n%s", r.Prompt)
	}
	if !strings.Contains(r.System, "English") {
		t.Errorf("System does not carry the language directive:\n%s", r.System)
	}

	m, err := NewMarketingPlanRequest("grilled chicken stall", LanguageLao)
	if err != nil {
		t.Fatalf("NewMarketingPlanRequest() error = %v", err)
	}
	if !strings.Contains(m.Prompt, "grilled chicken stall") {
		t.Errorf("Prompt does not mention the idea:\n%s", m.Prompt)
	}
}

func TestRequestProfiles(t *testing.T) {
	plan, _ := NewIncomePlanRequest(sampleSkills(), LanguageLao)
	invest, _ := NewInvestmentRequest(1_000_000, UserSkills{}, LanguageLao)
	stock, _ := NewStockAnalysisRequest(LanguageLao)
	marketing, _ := NewMarketingPlanRequest("idea", LanguageLao)
	business, _ := NewBusinessAnalysisRequest("idea", LanguageLao)
	jobs, _ := NewJobSearchRequest("Service & Labor", LanguageLao)
	market, _ := NewMarketDataRequest(LanguageLao)

	tests := []struct {
		name     string
		req      Request
		ttl      time.Duration
		model    string
		grounded bool
	}{
		{name: "plan", req: plan, ttl: 120 * time.Minute, model: ModelFast},
		{name: "invest", req: invest, ttl: 120 * time.Minute, model: ModelFast},
		{name: "stock", req: stock, ttl: 60 * time.Minute, model: ModelPro, grounded: true},
		{name: "marketing", req: marketing, ttl: 90 * time.Minute, model: ModelFast},
		{name: "business", req: business, ttl: 90 * time.Minute, model: ModelPro},
		{name: "jobs", req: jobs, ttl: 60 * time.Minute, model: ModelFast, grounded: true},
		{name: "market", req: market, ttl: 30 * time.Minute, model: ModelFast, grounded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.TTL != tt.ttl {
				t.Errorf("TTL = %v, want %v", tt.req.TTL, tt.ttl)
			}
			if tt.req.Model != tt.model {
				t.Errorf("Model = %q, want %q", tt.req.Model, tt.model)
			}
			if tt.req.Grounded != tt.grounded {
				t.Errorf("Grounded = %v, want %v", tt.req.Grounded, tt.grounded)
			}
			if tt.req.Schema == nil {
				t.Error("Schema is nil")
			}
			if tt.req.Domain == "" || tt.req.Key == "" {
				t.Error("Domain or Key is empty")
			}
		})
	}
}
