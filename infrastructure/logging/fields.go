package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for gateway logging.

// RequestID adds a per-call request ID field.
func RequestID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("request_id", id)
	}
}

// Domain adds the advice domain tag.
func Domain(d string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("domain", d)
	}
}

// CacheKey adds the cache key field.
func CacheKey(key string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("cache_key", key)
	}
}

// Lang adds the output language field.
func Lang(code string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("lang", code)
	}
}

// Phase adds the per-call state machine phase.
func Phase(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("phase", p)
	}
}

// Model adds the backend model field.
func Model(m string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("model", m)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Err adds an error field.
func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Str("error", err.Error())
	}
}
