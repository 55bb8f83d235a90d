// Package application provides the gateway orchestrating cached,
// retried calls to the generative backend for every advice domain.
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"

	"github.com/laokip/advisor/domain/advice"
	"github.com/laokip/advisor/domain/cache"
	"github.com/laokip/advisor/domain/genai"
	"github.com/laokip/advisor/infrastructure/logging"
	"github.com/laokip/advisor/infrastructure/resilience"
	"github.com/laokip/advisor/infrastructure/statemachine"
	"github.com/laokip/advisor/infrastructure/telemetry"
)

// Gateway is the single orchestration path every advice call goes
// through: fresh cache hit → short circuit; miss → retry-wrapped
// backend call, validate, cache with TTL; total failure → stale cache
// fallback before surfacing the error.
type Gateway struct {
	gen     genai.Generator
	cache   *cache.TTLCache
	exec    *resilience.Executor[genai.Response]
	machine *statekit.MachineConfig[*statemachine.CallContext]
	metrics *telemetry.MetricsProvider
}

// Option configures the Gateway.
type Option func(*Gateway)

// WithRetry overrides the default retry configuration.
func WithRetry(cfg resilience.Config) Option {
	return func(g *Gateway) {
		g.exec = resilience.New[genai.Response](cfg)
	}
}

// WithMetrics enables metric recording.
func WithMetrics(mp *telemetry.MetricsProvider) Option {
	return func(g *Gateway) {
		g.metrics = mp
	}
}

// New creates a gateway over the given backend and TTL cache.
func New(gen genai.Generator, ttl *cache.TTLCache, opts ...Option) (*Gateway, error) {
	if gen == nil {
		return nil, errors.New("gateway: nil generator")
	}
	if ttl == nil {
		return nil, errors.New("gateway: nil cache")
	}

	machine, err := statemachine.NewCallMachine()
	if err != nil {
		return nil, fmt.Errorf("gateway: call machine: %w", err)
	}

	g := &Gateway{
		gen:     gen,
		cache:   ttl,
		exec:    resilience.New[genai.Response](resilience.DefaultConfig()),
		machine: machine,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// fetch runs the full per-call state machine for one domain request and
// decodes the result into T. The second return reports whether the
// result came from the stale fallback path.
func fetch[T any](ctx context.Context, g *Gateway, req advice.Request, buildErr error) (T, bool, error) {
	var zero T
	if buildErr != nil {
		return zero, false, buildErr
	}

	tracker := statemachine.NewTracker(g.machine, &statemachine.CallContext{
		RequestID: uuid.NewString(),
		Domain:    req.Domain,
		Key:       req.Key,
	})
	tracker.Start()
	defer tracker.Stop()

	g.recordRequest(ctx, req.Domain)
	tracker.Send(statemachine.EventCheck)

	// Fresh cache hit short-circuits the backend entirely.
	if raw, err := g.cache.GetFresh(ctx, req.Key); err == nil {
		var result T
		if err := json.Unmarshal(raw, &result); err == nil {
			tracker.Send(statemachine.EventHit)
			g.recordCacheHit(ctx, req.Domain)
			return result, false, nil
		}
		// Undecodable cached payload behaves as a miss.
	}
	g.recordCacheMiss(ctx, req.Domain)
	tracker.Send(statemachine.EventMiss)

	result, err := g.call(ctx, req)

	var typed T
	if err == nil {
		if uerr := json.Unmarshal(result, &typed); uerr != nil {
			// The backend produced JSON we cannot decode: permanent.
			err = fmt.Errorf("%w: %v", genai.ErrSchemaViolation, uerr)
		}
	}
	if err != nil {
		tracker.Send(statemachine.EventFail)
		return fallback[T](ctx, g, tracker, req, err)
	}

	tracker.Send(statemachine.EventSucceed)

	// Re-marshal the typed result (citations included) so cached and
	// live reads decode identically.
	if raw, merr := json.Marshal(typed); merr == nil {
		if perr := g.cache.Put(ctx, req.Key, raw, req.TTL); perr != nil {
			logging.Warn().
				Add(logging.Domain(req.Domain)).
				Add(logging.CacheKey(req.Key)).
				Add(logging.Err(perr)).
				Msg("cache write failed")
		}
	}
	tracker.Send(statemachine.EventCommit)

	return typed, false, nil
}

// call performs the retry-wrapped backend call, validates the response
// against the request schema, and merges grounding citations.
func (g *Gateway) call(ctx context.Context, req advice.Request) (json.RawMessage, error) {
	start := time.Now()
	resp, err := g.exec.Do(ctx, func(ctx context.Context) (genai.Response, error) {
		return g.gen.Generate(ctx, genai.Request{
			Model:    req.Model,
			Prompt:   req.Prompt,
			System:   req.System,
			Schema:   req.Schema,
			Grounded: req.Grounded,
		})
	})
	g.recordCallDuration(ctx, req.Domain, time.Since(start))
	if err != nil {
		return nil, err
	}

	if err := req.Schema.Validate(resp.JSON); err != nil {
		return nil, err
	}

	if req.Grounded && len(resp.Sources) > 0 {
		return mergeSources(resp.JSON, resp.Sources)
	}
	return resp.JSON, nil
}

// mergeSources attaches grounding citations to an object response.
// Array responses (job listings) keep their citations in the log only.
func mergeSources(raw json.RawMessage, sources []genai.Source) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Not an object; leave the payload untouched.
		return raw, nil
	}

	encoded, err := json.Marshal(sources)
	if err != nil {
		return raw, nil
	}
	obj["sources"] = encoded

	merged, err := json.Marshal(obj)
	if err != nil {
		return raw, nil
	}
	return merged, nil
}

// fallback attempts the stale-cache read after a failed backend call.
// A previously successful result for the same inputs survives a backend
// outage, trading freshness for availability.
func fallback[T any](ctx context.Context, g *Gateway, tracker *statemachine.Tracker, req advice.Request, callErr error) (T, bool, error) {
	var zero T

	raw, serr := g.cache.GetStale(ctx, req.Key)
	if serr == nil {
		var result T
		if uerr := json.Unmarshal(raw, &result); uerr == nil {
			tracker.Send(statemachine.EventStaleHit)
			g.recordStaleFallback(ctx, req.Domain)
			logging.Warn().
				Add(logging.Domain(req.Domain)).
				Add(logging.CacheKey(req.Key)).
				Add(logging.Err(callErr)).
				Msg("backend failed, serving stale result")
			return result, true, nil
		}
	}

	tracker.Send(statemachine.EventStaleMiss)
	g.recordFailure(ctx, req.Domain)

	if errors.Is(callErr, genai.ErrSchemaViolation) || errors.Is(callErr, genai.ErrEmptyResponse) {
		return zero, false, fmt.Errorf("%w: %v", advice.ErrGenerationFailed, callErr)
	}
	return zero, false, callErr
}

// Metric helpers tolerate a nil provider.

func (g *Gateway) recordRequest(ctx context.Context, domain string) {
	if g.metrics != nil {
		g.metrics.RecordRequest(ctx, domain)
	}
}

func (g *Gateway) recordCacheHit(ctx context.Context, domain string) {
	if g.metrics != nil {
		g.metrics.RecordCacheHit(ctx, domain)
	}
}

func (g *Gateway) recordCacheMiss(ctx context.Context, domain string) {
	if g.metrics != nil {
		g.metrics.RecordCacheMiss(ctx, domain)
	}
}

func (g *Gateway) recordStaleFallback(ctx context.Context, domain string) {
	if g.metrics != nil {
		g.metrics.RecordStaleFallback(ctx, domain)
	}
}

func (g *Gateway) recordFailure(ctx context.Context, domain string) {
	if g.metrics != nil {
		g.metrics.RecordFailure(ctx, domain)
	}
}

func (g *Gateway) recordCallDuration(ctx context.Context, domain string, d time.Duration) {
	if g.metrics != nil {
		g.metrics.RecordCallDuration(ctx, domain, d)
	}
}
