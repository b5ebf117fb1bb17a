package llm

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/lusakalabs/crucible/internal/cache"
	"github.com/lusakalabs/crucible/internal/model"
	"golang.org/x/time/rate"
)

// Gateway wraps the configured remote provider with the deterministic
// fallback. A Generate call never fails: remote transport errors and
// timeouts are counted as degradations and answered by the fallback, so a
// single gateway failure degrades quality, never control flow.
type Gateway struct {
	primary  Provider
	fallback Provider
	timeout  time.Duration
	limiter  *rate.Limiter
	cache    cache.Cache
	cacheTTL time.Duration
	verbose  bool

	degradations atomic.Int64
}

// NewGateway builds a gateway from runtime configuration. A nil cache
// disables response caching; an empty provider name yields fallback-only
// operation.
func NewGateway(cfg model.Config, responseCache cache.Cache) (*Gateway, error) {
	primary, err := NewProvider(ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if cfg.LLM.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.LLM.RequestsPerSecond), 1)
	}

	return &Gateway{
		primary:  primary,
		fallback: NewRulebased(),
		timeout:  cfg.LLM.Timeout(),
		limiter:  limiter,
		cache:    responseCache,
		cacheTTL: cfg.Cache.TTL,
		verbose:  cfg.Output.Verbose,
	}, nil
}

// NewFallbackGateway builds a gateway with no remote provider, for tests and
// pure-deterministic runs.
func NewFallbackGateway() *Gateway {
	return &Gateway{fallback: NewRulebased()}
}

// Generate produces text for the request, degrading to the deterministic
// fallback on any remote failure.
func (g *Gateway) Generate(ctx context.Context, req GenerateRequest) string {
	if g.primary == nil {
		return g.Fallback(req)
	}

	key := cache.ResponseKey(string(req.Role), req.System, req.Prompt)
	if g.cache != nil {
		if data, found := g.cache.Get(key); found {
			return string(data)
		}
	}

	text, err := g.callPrimary(ctx, req)
	if err != nil {
		g.degrade(req.Role, err)
		return g.Fallback(req)
	}

	if g.cache != nil {
		_ = g.cache.Set(key, []byte(text), g.cacheTTL)
	}
	return text
}

// Fallback answers the request with the deterministic provider directly.
// Used for forced retries after an ungrounded remote response.
func (g *Gateway) Fallback(req GenerateRequest) string {
	resp, _ := g.fallback.Generate(context.Background(), req)
	return resp.Text
}

// Degraded reports whether any call in this gateway's lifetime fell back
func (g *Gateway) Degraded() bool {
	return g.degradations.Load() > 0
}

// Degradations returns the number of calls answered by the fallback due to
// remote failure
func (g *Gateway) Degradations() int {
	return int(g.degradations.Load())
}

// callPrimary invokes the remote provider with rate limiting, a per-call
// timeout, and one bounded retry for transient failures.
func (g *Gateway) callPrimary(ctx context.Context, req GenerateRequest) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", classifyErr(err)
		}
	}

	callCtx := ctx
	var cancel context.CancelFunc
	if g.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.primary.Generate(callCtx, req)
	if err == nil {
		return resp.Text, nil
	}

	// One retry for transient failures, then give up and degrade
	if ctx.Err() == nil {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return "", classifyErr(ctx.Err())
		}
		retryCtx := ctx
		if g.timeout > 0 {
			var retryCancel context.CancelFunc
			retryCtx, retryCancel = context.WithTimeout(ctx, g.timeout)
			defer retryCancel()
		}
		if resp, retryErr := g.primary.Generate(retryCtx, req); retryErr == nil {
			return resp.Text, nil
		}
	}

	return "", err
}

// degrade records and optionally logs a fallback event
func (g *Gateway) degrade(role Role, err error) {
	g.degradations.Add(1)
	if g.verbose {
		fmt.Fprintf(os.Stderr, "gateway degraded (%s): %v; using rule-based fallback\n", role, err)
	}
}
