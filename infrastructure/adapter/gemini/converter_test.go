package gemini

import (
	"errors"
	"testing"

	sdk "google.golang.org/genai"

	"github.com/laokip/advisor/domain/genai"
)

func TestToSDKSchema(t *testing.T) {
	in := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dailyTarget": {Type: genai.TypeNumber, Description: "Daily income target in LAK"},
			"strategies": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":      {Type: genai.TypeString},
						"difficulty": {Type: genai.TypeString, Enum: []string{"Easy", "Medium", "Hard"}},
						"isUrgent":   {Type: genai.TypeBoolean},
					},
					Required: []string{"title"},
				},
			},
		},
		Required: []string{"dailyTarget", "strategies"},
	}

	out := toSDKSchema(in)
	if out == nil {
		t.Fatal("toSDKSchema() = nil")
	}
	if out.Type != sdk.TypeObject {
		t.Errorf("Type = %v, want object", out.Type)
	}
	if len(out.Required) != 2 {
		t.Errorf("Required = %v", out.Required)
	}

	target := out.Properties["dailyTarget"]
	if target == nil || target.Type != sdk.TypeNumber {
		t.Fatalf("dailyTarget = %+v, want number", target)
	}
	if target.Description != "Daily income target in LAK" {
		t.Errorf("Description = %q", target.Description)
	}

	items := out.Properties["strategies"].Items
	if items == nil || items.Type != sdk.TypeObject {
		t.Fatalf("strategies items = %+v, want object", items)
	}
	if items.Properties["isUrgent"].Type != sdk.TypeBoolean {
		t.Errorf("isUrgent type = %v, want boolean", items.Properties["isUrgent"].Type)
	}
	if got := items.Properties["difficulty"].Enum; len(got) != 3 {
		t.Errorf("difficulty enum = %v", got)
	}
}

func TestToSDKSchemaNil(t *testing.T) {
	if toSDKSchema(nil) != nil {
		t.Error("toSDKSchema(nil) != nil")
	}
}

func TestToSDKType(t *testing.T) {
	tests := []struct {
		in   genai.Type
		want sdk.Type
	}{
		{genai.TypeObject, sdk.TypeObject},
		{genai.TypeArray, sdk.TypeArray},
		{genai.TypeString, sdk.TypeString},
		{genai.TypeNumber, sdk.TypeNumber},
		{genai.TypeInteger, sdk.TypeInteger},
		{genai.TypeBoolean, sdk.TypeBoolean},
		{genai.Type("mystery"), sdk.TypeUnspecified},
	}

	for _, tt := range tests {
		if got := toSDKType(tt.in); got != tt.want {
			t.Errorf("toSDKType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeError(t *testing.T) {
	apiErr := sdk.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}

	err := normalizeError(apiErr)
	var ue *genai.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("normalizeError() = %T, want *genai.UpstreamError", err)
	}
	if ue.StatusCode != 429 || ue.Status != "RESOURCE_EXHAUSTED" {
		t.Errorf("UpstreamError = %+v", ue)
	}
	if !genai.IsTransient(err) {
		t.Error("normalized 429 not classified transient")
	}
}

func TestNormalizeErrorPassthrough(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")
	if got := normalizeError(plain); got != plain {
		t.Errorf("normalizeError() = %v, want the original error", got)
	}
}

func TestNewAdapterRequiresKey(t *testing.T) {
	_, err := NewAdapter(t.Context(), Config{})
	if err == nil {
		t.Error("NewAdapter() with empty key succeeded")
	}
}
