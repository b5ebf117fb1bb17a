package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lusakalabs/crucible/internal/model"
	"github.com/lusakalabs/crucible/internal/report"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	outMD         string
	timeout       time.Duration
	maxRounds     int
	topK          int
	killThreshold float64
	parallelism   int
	factsPath     string
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// stressCmd represents the stress command
var stressCmd = &cobra.Command{
	Use:   "stress <plan-file>",
	Short: "Stress-test a single business plan through adversarial debate",
	Long: `Stress reads a business plan and subjects it to adversarial review:
- Extract the testable assumptions the plan depends on
- Attack each assumption with ground-truth regulatory and market facts
- Let a proponent rebut or revise under fire
- Judge each assumption and aggregate the overall verdict

Use "-" to read the plan from stdin.

Example:
  crucible stress plan.txt
  crucible stress plan.txt --json verdict.json --md verdict.md
  crucible stress plan.txt --llm openai --llm-model gpt-4o-mini
  cat plan.txt | crucible stress -`,
	Args: cobra.ExactArgs(1),
	RunE: runStress,
}

func init() {
	rootCmd.AddCommand(stressCmd)

	// Output flags
	stressCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	stressCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	stressCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Debate flags
	stressCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall stress-test timeout")
	stressCmd.Flags().IntVar(&maxRounds, "max-rounds", 3, "maximum revision rounds per assumption")
	stressCmd.Flags().IntVar(&topK, "top-k", 5, "candidate facts per assumption")
	stressCmd.Flags().Float64Var(&killThreshold, "kill-threshold", 0.55, "critique confidence below which non-severe attacks are dismissed")
	stressCmd.Flags().IntVar(&parallelism, "parallelism", 4, "concurrent assumption debates")
	stressCmd.Flags().StringVar(&factsPath, "facts", "", "YAML fact file (default: builtin Zambia dataset)")
	stressCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable gateway response cache")

	// LLM flags
	stressCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-backed debate (default: deterministic)")
	stressCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	stressCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

// stressConfig builds runtime configuration from the shared flags
func stressConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Debate.MaxRounds = maxRounds
	cfg.Debate.KillConfidenceThreshold = killThreshold
	cfg.Debate.RelevanceTopK = topK
	cfg.Debate.Parallelism = parallelism
	cfg.Facts.Path = factsPath
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
	}
	return cfg
}

// readPlan loads the plan text from a file, or stdin for "-"
func readPlan(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read plan: %w", err)
	}
	return string(data), nil
}

func runStress(cmd *cobra.Command, args []string) error {
	planText, err := readPlan(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := stressConfig()
	if verbose {
		fmt.Fprintf(os.Stderr, "Plan: %s\n", args[0])
		fmt.Fprintf(os.Stderr, "Max rounds: %d\n", cfg.Debate.MaxRounds)
		fmt.Fprintf(os.Stderr, "Kill threshold: %.2f\n", cfg.Debate.KillConfidenceThreshold)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		} else {
			fmt.Fprintf(os.Stderr, "LLM: disabled (deterministic debate)\n")
		}
		fmt.Fprintln(os.Stderr)
	}

	orch, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	verdict, err := orch.Run(ctx, planText)
	if err != nil {
		return fmt.Errorf("stress test failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Debated %d assumptions\n", len(verdict.Results))
		if verdict.GatewayDegradations > 0 {
			fmt.Fprintf(os.Stderr, "✓ %d gateway calls degraded to fallback\n", verdict.GatewayDegradations)
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(verdict, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(verdict, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(verdict)

	if verdict.Overall == model.VerdictFail {
		os.Exit(2)
	}
	return nil
}
