package genai

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "rate limited", err: &UpstreamError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}, want: true},
		{name: "overloaded", err: &UpstreamError{StatusCode: 503, Status: "UNAVAILABLE", Message: "try again"}, want: true},
		{name: "unauthorized", err: &UpstreamError{StatusCode: 401, Status: "UNAUTHENTICATED", Message: "bad key"}, want: false},
		{name: "bad request", err: &UpstreamError{StatusCode: 400, Status: "INVALID_ARGUMENT", Message: "malformed"}, want: false},
		{name: "wrapped upstream 429", err: fmt.Errorf("call failed: %w", &UpstreamError{StatusCode: 429}), want: true},
		{name: "quota in message", err: errors.New("generate: quota exceeded for model"), want: true},
		{name: "resource_exhausted in message", err: errors.New("rpc error: RESOURCE_EXHAUSTED"), want: true},
		{name: "429 in message", err: errors.New("http status 429"), want: true},
		{name: "plain failure", err: errors.New("connection refused"), want: false},
		{name: "schema violation", err: ErrSchemaViolation, want: false},
		{name: "wrapped schema violation", err: fmt.Errorf("%w: $.advice missing", ErrSchemaViolation), want: false},
		{name: "empty response", err: ErrEmptyResponse, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	withStatus := &UpstreamError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "slow down"}
	if got := withStatus.Error(); got != "upstream error 429 (RESOURCE_EXHAUSTED): slow down" {
		t.Errorf("Error() = %q", got)
	}

	bare := &UpstreamError{StatusCode: 500, Message: "boom"}
	if got := bare.Error(); got != "upstream error 500: boom" {
		t.Errorf("Error() = %q", got)
	}
}
