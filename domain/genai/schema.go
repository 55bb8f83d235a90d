package genai

import (
	"encoding/json"
	"fmt"
)

// Type is a JSON schema value type.
type Type string

// Schema value types.
const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema describes the required shape of a structured response.
// It is sent to the backend to request machine-checkable output and
// used again on receipt to validate the response.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Enum        []string
}

// Validate checks data against the schema. Required fields must be
// present with matching types; unknown and optional fields pass through.
// A validation failure is a permanent error, never retried.
func (s *Schema) Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return s.validate(v, "$")
}

func (s *Schema) validate(v any, path string) error {
	if v == nil {
		return fmt.Errorf("%w: %s is null", ErrSchemaViolation, path)
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		for _, name := range s.Required {
			if _, present := obj[name]; !present {
				return fmt.Errorf("%w: %s missing required field %q", ErrSchemaViolation, path, name)
			}
		}
		for name, sub := range s.Properties {
			val, present := obj[name]
			if !present {
				continue
			}
			if err := sub.validate(val, path+"."+name); err != nil {
				return err
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
	case TypeString:
		str, ok := v.(string)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if len(s.Enum) > 0 {
			for _, e := range s.Enum {
				if str == e {
					return nil
				}
			}
			return fmt.Errorf("%w: %s value %q not in enum", ErrSchemaViolation, path, str)
		}
	case TypeNumber, TypeInteger:
		if _, ok := v.(float64); !ok {
			return typeMismatch(path, s.Type, v)
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return typeMismatch(path, s.Type, v)
		}
	}

	return nil
}

func typeMismatch(path string, want Type, got any) error {
	return fmt.Errorf("%w: %s expected %s, got %T", ErrSchemaViolation, path, want, got)
}
