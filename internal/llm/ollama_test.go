package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("streaming must be disabled")
		}
		if req.Prompt != "test prompt" || req.System != "test system" {
			t.Errorf("prompt not forwarded: %+v", req)
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:    req.Model,
			Response: "  generated text  ",
			Done:     true,
		})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.2"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), GenerateRequest{
		Role:   RoleAdversary,
		System: "test system",
		Prompt: "test prompt",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "generated text" {
		t.Errorf("expected trimmed response text, got %q", resp.Text)
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Generate(context.Background(), GenerateRequest{Prompt: "x"}); err == nil {
		t.Error("expected error for API failure")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsAvailable(context.Background()) {
		t.Error("expected availability against healthy server")
	}

	server.Close()
	if p.IsAvailable(context.Background()) {
		t.Error("expected unavailability after server shutdown")
	}
}
