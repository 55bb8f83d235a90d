package advice

import "errors"

// Domain errors for advice requests.
var (
	// ErrInvalidLanguage indicates a language code outside lo/th/en.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrInvalidInput indicates request input that cannot be used.
	ErrInvalidInput = errors.New("invalid request input")

	// ErrGenerationFailed is the generic failure surfaced to consumers
	// when the backend response cannot be produced or parsed. Raw parse
	// errors never leak past the gateway.
	ErrGenerationFailed = errors.New("generation failed")
)
