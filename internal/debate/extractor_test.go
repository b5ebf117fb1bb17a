package debate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/model"
)

// gatewayReturning builds a gateway whose remote provider always answers
// with the given text, for exercising the validation and fallback paths.
func gatewayReturning(t *testing.T, text string) *llm.Gateway {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"model":"test","response":%q,"done":true}`, text)
	}))
	t.Cleanup(server.Close)

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "ollama"
	cfg.LLM.BaseURL = server.URL
	cfg.LLM.RequestsPerSecond = 0
	cfg.Cache.Enabled = false

	gateway, err := llm.NewGateway(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return gateway
}

func TestExtractor_EmptyPlan(t *testing.T) {
	extractor := NewExtractor(llm.NewFallbackGateway())

	for _, plan := range []string{"", "   ", "\n\t\n"} {
		if _, err := extractor.Extract(context.Background(), plan); !errors.Is(err, model.ErrEmptyPlan) {
			t.Errorf("plan %q: expected ErrEmptyPlan, got %v", plan, err)
		}
	}
}

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor(llm.NewFallbackGateway())

	plan := "We will export raw copper concentrate duty-free to maximize margins.\n" +
		"Diesel costs are projected at ZMW 25 per litre for the full year."

	assumptions, err := extractor.Extract(context.Background(), plan)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(assumptions) == 0 {
		t.Fatal("expected assumptions from a substantive plan")
	}

	for i, a := range assumptions {
		if a.ID != fmt.Sprintf("A%d", i+1) {
			t.Errorf("assumption %d id = %s, want A%d", i, a.ID, i+1)
		}
		if a.Status != model.StatusPending {
			t.Errorf("assumption %s status = %s, want PENDING", a.ID, a.Status)
		}
		if a.Text == "" {
			t.Errorf("assumption %s has empty text", a.ID)
		}
		if a.RoundCount != 0 {
			t.Errorf("assumption %s round count = %d, want 0", a.ID, a.RoundCount)
		}
	}
}

func TestExtractor_HTMLPlan(t *testing.T) {
	extractor := NewExtractor(llm.NewFallbackGateway())

	plan := "<html><body><p>We will export raw copper concentrate duty-free.</p>" +
		"<script>alert('x')</script></body></html>"

	assumptions, err := extractor.Extract(context.Background(), plan)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(assumptions) == 0 {
		t.Fatal("expected assumptions from HTML plan")
	}
	for _, a := range assumptions {
		for _, markup := range []string{"<p>", "<html", "alert("} {
			if strings.Contains(a.Text, markup) {
				t.Errorf("markup leaked into assumption text: %q", a.Text)
			}
		}
	}
}

func TestExtractor_MalformedRemoteFallsBack(t *testing.T) {
	// Remote ignores the line format entirely; the deterministic provider
	// takes over
	extractor := NewExtractor(gatewayReturning(t, "Here are some thoughts about the plan, unstructured."))

	assumptions, err := extractor.Extract(context.Background(), "We will export copper duty-free.")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(assumptions) == 0 {
		t.Fatal("expected fallback extraction to produce assumptions")
	}
}

func TestExtractor_RemoteLineFormat(t *testing.T) {
	remote := "[MINING] ASSUMPTION: Export duties will not apply to concentrate.\n" +
		"[GENERAL] ASSUMPTION: Margins hold at 40%.\n" +
		"[MINING] ASSUMPTION: Export duties will not apply to concentrate.\n" // duplicate dropped

	extractor := NewExtractor(gatewayReturning(t, remote))

	assumptions, err := extractor.Extract(context.Background(), "any plan text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(assumptions) != 2 {
		t.Fatalf("expected 2 assumptions after dedup, got %d", len(assumptions))
	}
	if assumptions[0].CategoryHint != model.CategoryMining {
		t.Errorf("hint = %s, want MINING", assumptions[0].CategoryHint)
	}
	// GENERAL is not a store category; the hint falls back to text detection
	if assumptions[1].CategoryHint != "" {
		t.Errorf("hint = %s, want empty for uncategorizable text", assumptions[1].CategoryHint)
	}
}
