package advice

import "github.com/laokip/advisor/domain/genai"

// Schema literal helpers. Response schemas in this package are deeply
// nested; these keep the per-domain definitions readable.

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func strDesc(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

func num() *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber}
}

func numDesc(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: desc}
}

func boolean() *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean}
}

func strList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

func arr(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

func obj(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}
