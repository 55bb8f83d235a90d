// Package advice defines the advice domains: their input and result
// types and the request builders the gateway treats uniformly.
package advice

import "fmt"

// Language is the output language for generated advice.
// The domain is closed: exactly Lao, Thai, and English.
type Language string

// Supported languages.
const (
	LanguageLao  Language = "lo"
	LanguageThai Language = "th"
	LanguageEng  Language = "en"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageLao, LanguageThai, LanguageEng:
		return true
	}
	return false
}

// Name returns the language name used in prompt directives.
func (l Language) Name() string {
	switch l {
	case LanguageThai:
		return "Thai (ภาษาไทย)"
	case LanguageEng:
		return "English"
	default:
		return "Lao (ພາສາລາວ)"
	}
}

// ParseLanguage converts a language code to a Language.
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	return l, nil
}
