package worker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lusakalabs/crucible/internal/model"
)

// Runner defines the interface for stress-testing a single plan
type Runner interface {
	Run(ctx context.Context, planText string) (*model.Verdict, error)
}

// PlanJob stress-tests one plan file
type PlanJob struct {
	Path   string
	Runner Runner
}

// Execute reads the plan file and runs the debate
func (j *PlanJob) Execute(ctx context.Context) Result {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &PlanResult{Path: j.Path, Error: fmt.Errorf("read plan: %w", err)}
	}

	verdict, err := j.Runner.Run(ctx, string(data))
	return &PlanResult{
		Path:    j.Path,
		Verdict: verdict,
		Error:   err,
	}
}

// PlanResult is the outcome of one plan job
type PlanResult struct {
	Path    string
	Verdict *model.Verdict
	Error   error
}

// GetError returns the error from the plan result
func (r *PlanResult) GetError() error {
	return r.Error
}

// BatchProcessor stress-tests multiple plan files concurrently
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// ProcessPaths runs the debate over each plan file concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*PlanResult {
	if len(paths) == 0 {
		return []*PlanResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Propagate caller cancellation to the workers' context so in-flight
	// debates see it
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.cancelFunc()
		case <-done:
		}
	}()

	for _, path := range paths {
		pool.Submit(&PlanJob{Path: path, Runner: b.runner})
	}

	results := pool.Wait()

	planResults := make([]*PlanResult, len(results))
	for i, result := range results {
		planResults[i] = result.(*PlanResult)
	}

	return planResults
}

// ProcessListFile reads plan file paths from a manifest (one per line) and
// processes them concurrently.
func (b *BatchProcessor) ProcessListFile(ctx context.Context, listPath string) ([]*PlanResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read plan list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads plan file paths from a manifest, skipping blanks,
// comments, and duplicates.
func ReadPathsFromFile(listPath string) ([]string, error) {
	data, err := os.ReadFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	var paths []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	return paths, nil
}
