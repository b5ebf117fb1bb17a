package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lusakalabs/crucible/internal/model"
)

// MockRunner implements Runner
type MockRunner struct {
	ShouldError bool
}

func (m *MockRunner) Run(ctx context.Context, planText string) (*model.Verdict, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("debate error")
	}
	return &model.Verdict{
		RunID:   "test-run",
		Overall: model.VerdictPass,
	}, nil
}

func writePlanFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePlanFile(t, dir, "a.txt", "We will sell maize at a 30% margin."),
		writePlanFile(t, dir, "b.txt", "We plan to export copper duty-free."),
		writePlanFile(t, dir, "c.txt", "Fuel costs will stay at ZMW 25 per litre."),
	}

	processor := NewBatchProcessor(&MockRunner{}, 2)
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Verdict == nil {
				t.Error("expected verdict for successful run")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessPaths_RunnerError(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writePlanFile(t, dir, "a.txt", "Plan text.")}

	processor := NewBatchProcessor(&MockRunner{ShouldError: true}, 2)
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Verdict != nil {
		t.Error("expected nil verdict on error")
	}
}

func TestBatchProcessor_ProcessPaths_MissingFile(t *testing.T) {
	processor := NewBatchProcessor(&MockRunner{}, 2)
	results := processor.ProcessPaths(context.Background(), []string{"no_such_plan.txt"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error for missing plan file, got nil")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockRunner{}, 2)
	results := processor.ProcessPaths(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `plans/maize.txt
# comment
plans/copper.txt

plans/transport.txt`

	dir := t.TempDir()
	listPath := writePlanFile(t, dir, "plans.txt", content)

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"plans/maize.txt", "plans/copper.txt", "plans/transport.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}
	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("expected path %s at index %d, got %s", expected[i], i, path)
		}
	}
}

func TestReadPathsFromFile_NonExistent(t *testing.T) {
	_, err := ReadPathsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestReadPathsFromFile_Deduplication(t *testing.T) {
	dir := t.TempDir()
	listPath := writePlanFile(t, dir, "plans.txt", "plans/maize.txt\nplans/maize.txt\n")

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("expected 1 path after deduplication, got %d", len(paths))
	}
}

func TestPlanResult_GetError(t *testing.T) {
	r1 := &PlanResult{Path: "a.txt", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("debate failed")
	r2 := &PlanResult{Path: "a.txt", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessListFile(t *testing.T) {
	dir := t.TempDir()
	a := writePlanFile(t, dir, "a.txt", "We will sell maize at a 30% margin.")
	b := writePlanFile(t, dir, "b.txt", "We plan to export copper duty-free.")
	listPath := writePlanFile(t, dir, "plans.txt", a+"\n# comment\n\n"+b+"\n")

	processor := NewBatchProcessor(&MockRunner{}, 2)
	results, err := processor.ProcessListFile(context.Background(), listPath)
	if err != nil {
		t.Fatalf("ProcessListFile failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessListFile_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&MockRunner{}, 2)
	_, err := processor.ProcessListFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}
