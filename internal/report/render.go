package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lusakalabs/crucible/internal/model"
)

// Renderer writes verdicts as JSON, Markdown, and console summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the verdict as indented JSON to the given path
func (r *Renderer) RenderJSON(verdict *model.Verdict, path string) error {
	data, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// RenderMarkdown writes a human-readable stress-test report to the given path
func (r *Renderer) RenderMarkdown(verdict *model.Verdict, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(r.Markdown(verdict)), 0o644)
}

// Markdown renders the full report as a Markdown document
func (r *Renderer) Markdown(verdict *model.Verdict) string {
	var b strings.Builder

	b.WriteString("# Business Plan Stress Test\n\n")
	b.WriteString(fmt.Sprintf("**Verdict: %s** %s\n\n", verdict.Overall, verdictEmoji(verdict.Overall)))
	b.WriteString(fmt.Sprintf("- Run: `%s`\n", verdict.RunID))
	b.WriteString(fmt.Sprintf("- Generated: %s\n", verdict.CreatedAt.Format("2006-01-02 15:04:05 UTC")))
	b.WriteString(fmt.Sprintf("- Assumptions tested: %d\n", len(verdict.Results)))
	if verdict.GatewayDegradations > 0 {
		b.WriteString(fmt.Sprintf("- Reasoning gateway degradations: %d (deterministic fallback used)\n", verdict.GatewayDegradations))
	}
	b.WriteString("\n")

	b.WriteString("## Rationale\n\n")
	b.WriteString(verdict.RationaleText + "\n\n")

	if len(verdict.FatalFlawIDs) > 0 {
		b.WriteString("## Fatal Flaws\n\n")
		for _, id := range verdict.FatalFlawIDs {
			b.WriteString(fmt.Sprintf("- `%s`\n", id))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Assumptions\n\n")
	b.WriteString("| ID | Status | Rounds | Assumption |\n")
	b.WriteString("|----|--------|--------|------------|\n")
	for _, res := range verdict.Results {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n",
			res.Assumption.ID, res.Assumption.Status, len(res.Rounds), escapeCell(res.Assumption.Text)))
	}
	b.WriteString("\n")

	b.WriteString("## Debate Transcript\n\n")
	for _, res := range verdict.Results {
		b.WriteString(fmt.Sprintf("### %s: %s\n\n", res.Assumption.ID, res.Assumption.Text))
		b.WriteString(fmt.Sprintf("Final status: **%s**", res.Assumption.Status))
		if res.Unresolved {
			b.WriteString(" (unresolved after maximum rounds)")
		}
		if res.KilledByError {
			b.WriteString(" (internal error during debate)")
		}
		b.WriteString("\n\n")

		for _, round := range res.Rounds {
			b.WriteString(fmt.Sprintf("**Round %d**\n\n", round.Critique.Round+1))
			cites := "none"
			if len(round.Critique.CitedFactIDs) > 0 {
				cites = strings.Join(round.Critique.CitedFactIDs, ", ")
			}
			b.WriteString(fmt.Sprintf("- Adversary (confidence %.2f, cites %s): %s\n",
				round.Critique.Confidence, cites, round.Critique.ArgumentText))
			if round.Defense != nil {
				b.WriteString(fmt.Sprintf("- Proponent (%s): %s\n", round.Defense.Kind, round.Defense.ArgumentText))
				if round.Defense.RevisedText != "" {
					b.WriteString(fmt.Sprintf("  - Revised: %s\n", round.Defense.RevisedText))
				}
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Generated by Crucible. Verdicts are grounded in a fixed fact database and are diagnostic, not legal or financial advice.*\n")
	}

	return b.String()
}

// RenderSummary prints a short verdict summary to stdout
func (r *Renderer) RenderSummary(verdict *model.Verdict) {
	var survived, revised, killed, cancelled int
	for _, res := range verdict.Results {
		switch res.Assumption.Status {
		case model.StatusSurvived:
			survived++
		case model.StatusRevised:
			revised++
		case model.StatusKilled:
			killed++
		case model.StatusCancelled:
			cancelled++
		}
	}

	fmt.Printf("\nVerdict: %s %s\n", verdict.Overall, verdictEmoji(verdict.Overall))
	fmt.Printf("Assumptions: %d tested, %d survived, %d revised, %d killed",
		len(verdict.Results), survived, revised, killed)
	if cancelled > 0 {
		fmt.Printf(", %d cancelled", cancelled)
	}
	fmt.Println()
	if len(verdict.FatalFlawIDs) > 0 {
		fmt.Printf("Fatal flaws: %s\n", strings.Join(verdict.FatalFlawIDs, ", "))
	}
	fmt.Printf("\n%s\n", verdict.RationaleText)
}

func verdictEmoji(v model.OverallVerdict) string {
	switch v {
	case model.VerdictPass:
		return "✅"
	case model.VerdictConditionalPass:
		return "⚠️"
	default:
		return "❌"
	}
}

// escapeCell keeps assumption text from breaking the Markdown table
func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "\\|")
}
