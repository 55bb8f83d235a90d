package genai

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for the generative backend.
var (
	// ErrSchemaViolation indicates the response failed schema validation.
	// Always permanent.
	ErrSchemaViolation = errors.New("response schema violation")

	// ErrEmptyResponse indicates the backend returned no usable content.
	ErrEmptyResponse = errors.New("empty response from backend")
)

// UpstreamError is a normalized backend failure carrying the transport
// status code when one was available.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("upstream error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}

// transientMarkers are message fragments that indicate a retryable
// failure. The upstream error shape is inconsistent across transport
// layers, so the stringified error is checked in addition to the
// structured status code.
var transientMarkers = []string{"429", "quota", "resource_exhausted", "exhausted"}

// IsTransient reports whether err is a retryable upstream failure
// (rate limiting or overload). Everything else, including schema
// violations and auth failures, is permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSchemaViolation) {
		return false
	}

	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.StatusCode == 429 || ue.StatusCode == 503 {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
