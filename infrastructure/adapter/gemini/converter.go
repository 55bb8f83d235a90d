package gemini

import (
	sdk "google.golang.org/genai"

	"github.com/laokip/advisor/domain/genai"
)

// toSDKSchema converts a domain schema to the SDK's schema type.
func toSDKSchema(s *genai.Schema) *sdk.Schema {
	if s == nil {
		return nil
	}

	out := &sdk.Schema{
		Type:        toSDKType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}

	if len(s.Enum) > 0 {
		out.Enum = s.Enum
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*sdk.Schema, len(s.Properties))
		for name, sub := range s.Properties {
			out.Properties[name] = toSDKSchema(sub)
		}
	}

	if s.Items != nil {
		out.Items = toSDKSchema(s.Items)
	}

	return out
}

// toSDKType maps domain schema types to SDK types.
func toSDKType(t genai.Type) sdk.Type {
	switch t {
	case genai.TypeObject:
		return sdk.TypeObject
	case genai.TypeArray:
		return sdk.TypeArray
	case genai.TypeString:
		return sdk.TypeString
	case genai.TypeNumber:
		return sdk.TypeNumber
	case genai.TypeInteger:
		return sdk.TypeInteger
	case genai.TypeBoolean:
		return sdk.TypeBoolean
	default:
		return sdk.TypeUnspecified
	}
}
