package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/lusakalabs/crucible/internal/report"
	"github.com/lusakalabs/crucible/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter is defined in stress.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Stress-test multiple plans from a manifest in parallel",
	Long: `Batch stress-tests multiple business plans concurrently:
- Read plan file paths from the manifest (one per line)
- Debate plans in parallel with a configurable worker count
- Each plan still debates its assumptions concurrently
- Write an individual verdict report per plan

Example:
  crucible batch plans.txt
  crucible batch plans.txt --concurrency 8 --output-dir ./verdicts
  crucible batch plans.txt --llm ollama --timeout 30m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent plan debates")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./crucible-verdicts", "output directory for verdict reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Debate flags shared with the stress command
	batchCmd.Flags().IntVar(&maxRounds, "max-rounds", 3, "maximum revision rounds per assumption")
	batchCmd.Flags().IntVar(&topK, "top-k", 5, "candidate facts per assumption")
	batchCmd.Flags().Float64Var(&killThreshold, "kill-threshold", 0.55, "critique confidence below which non-severe attacks are dismissed")
	batchCmd.Flags().IntVar(&parallelism, "parallelism", 4, "concurrent assumption debates per plan")
	batchCmd.Flags().StringVar(&factsPath, "facts", "", "YAML fact file (default: builtin Zambia dataset)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable gateway response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed debate (default: deterministic)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Crucible Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Manifest:     %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)

	cfg := stressConfig()
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// One orchestrator shared across jobs: the fact store is immutable and
	// the gateway is safe for concurrent use
	orch, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(orch, concurrency)

	paths, err := worker.ReadPathsFromFile(file)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d plans from manifest\n", len(paths))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Debating plans with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results := processor.ProcessPaths(ctx, paths)

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		slug := planSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Verdict, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Verdict, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", result.Path, result.Verdict.Overall)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d plans\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// planSlug derives a filesystem-safe report name from the plan path
func planSlug(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '.':
			b.WriteRune('-')
		}
	}

	slug := b.String()
	if slug == "" {
		slug = "plan"
	}
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}
