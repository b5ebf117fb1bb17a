package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lusakalabs/crucible/internal/cache"
)

// stubProvider is a scriptable Provider for gateway tests
type stubProvider struct {
	text  string
	err   error
	calls int
}

func (s *stubProvider) Name() string                         { return "stub" }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (s *stubProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func TestGateway_FallbackOnly(t *testing.T) {
	g := NewFallbackGateway()

	text := g.Generate(context.Background(), GenerateRequest{
		Role:   RoleAdversary,
		Prompt: "ASSUMPTION: x\n\nCANDIDATE FACTS:\nFACT F-001 | TAX | severe | Statement.\n",
	})

	if !strings.Contains(text, "CITES: F-001") {
		t.Errorf("fallback-only gateway should answer deterministically, got %q", text)
	}
	if g.Degraded() {
		t.Error("fallback-only operation is not a degradation")
	}
}

func TestGateway_DegradesOnPrimaryFailure(t *testing.T) {
	primary := &stubProvider{err: errors.New("connection refused")}
	g := &Gateway{primary: primary, fallback: NewRulebased()}

	text := g.Generate(context.Background(), GenerateRequest{
		Role:   RoleAdversary,
		Prompt: "ASSUMPTION: x\n\nCANDIDATE FACTS:\nFACT F-001 | TAX | severe | Statement.\n",
	})

	if !strings.Contains(text, "CITES: F-001") {
		t.Errorf("degraded call should still produce a grounded answer, got %q", text)
	}
	if !g.Degraded() {
		t.Error("failed primary call must count as a degradation")
	}
	if g.Degradations() != 1 {
		t.Errorf("degradations = %d, want 1", g.Degradations())
	}
	if primary.calls != 2 {
		t.Errorf("expected one retry before degrading, primary called %d times", primary.calls)
	}
}

func TestGateway_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubProvider{text: "CITES: F-001\nCONFIDENCE: 0.80\nARGUMENT: remote answer"}
	g := &Gateway{primary: primary, fallback: NewRulebased()}

	text := g.Generate(context.Background(), GenerateRequest{Role: RoleAdversary, Prompt: "x"})
	if text != primary.text {
		t.Errorf("expected primary answer, got %q", text)
	}
	if g.Degraded() {
		t.Error("healthy primary call must not count as degradation")
	}
}

func TestGateway_CachesResponses(t *testing.T) {
	primary := &stubProvider{text: "cached answer"}
	g := &Gateway{
		primary:  primary,
		fallback: NewRulebased(),
		cache:    cache.NewMemoryCache(time.Minute, time.Minute),
		cacheTTL: time.Minute,
	}

	req := GenerateRequest{Role: RoleJudge, System: "sys", Prompt: "same prompt"}
	first := g.Generate(context.Background(), req)
	second := g.Generate(context.Background(), req)

	if first != second {
		t.Errorf("cache hit should return identical text: %q vs %q", first, second)
	}
	if primary.calls != 1 {
		t.Errorf("second call should hit the cache, primary called %d times", primary.calls)
	}

	// Different role misses the cache
	g.Generate(context.Background(), GenerateRequest{Role: RoleProponent, System: "sys", Prompt: "same prompt"})
	if primary.calls != 2 {
		t.Errorf("different role must miss the cache, primary called %d times", primary.calls)
	}
}

func TestResponseKey_Distinct(t *testing.T) {
	a := cache.ResponseKey("adversary", "sys", "prompt")
	b := cache.ResponseKey("proponent", "sys", "prompt")
	c := cache.ResponseKey("adversary", "sys", "other prompt")

	if a == b || a == c {
		t.Error("cache keys must differ across roles and prompts")
	}
	if a != cache.ResponseKey("adversary", "sys", "prompt") {
		t.Error("cache key must be stable for identical input")
	}
}
