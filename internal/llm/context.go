package llm

import (
	"fmt"
	"strings"

	"github.com/lusakalabs/crucible/internal/model"
)

// Prompt conventions shared by the debate roles and the deterministic
// fallback provider. Candidate facts are embedded in prompts as one line
// per fact so the fallback can reason over exactly the same context the
// remote models see.

// Prompt section markers
const (
	PlanMarker       = "PLAN:"
	AssumptionMarker = "ASSUMPTION:"
	factMarker       = "FACT "
)

// FactRef is a fact as referenced inside a prompt
type FactRef struct {
	ID        string
	Category  model.Category
	Severity  model.Severity
	Statement string
}

// FormatFactLine renders a fact as a single prompt line:
//
//	FACT MINING-002 | MINING | severe | Export duty on raw copper ...
func FormatFactLine(f model.Fact) string {
	return fmt.Sprintf("%s%s | %s | %s | %s", factMarker, f.ID, f.Category, f.Severity, f.Statement)
}

// ParseFactLines extracts every FACT line from a prompt, in order
func ParseFactLines(prompt string) []FactRef {
	var refs []FactRef
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, factMarker) {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(line, factMarker), " | ", 4)
		if len(parts) != 4 {
			continue
		}
		severity, err := model.ParseSeverity(parts[2])
		if err != nil {
			continue
		}
		refs = append(refs, FactRef{
			ID:        strings.TrimSpace(parts[0]),
			Category:  model.Category(strings.TrimSpace(parts[1])),
			Severity:  severity,
			Statement: strings.TrimSpace(parts[3]),
		})
	}
	return refs
}

// sectionAfter returns the prompt text following the first occurrence of
// marker, up to the next blank-line-delimited ALL-CAPS section header.
func sectionAfter(prompt, marker string) string {
	idx := strings.Index(prompt, marker)
	if idx < 0 {
		return ""
	}
	rest := prompt[idx+len(marker):]

	// Stop at the next section header line (e.g. "CANDIDATE FACTS:")
	lines := strings.Split(rest, "\n")
	var kept []string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i > 0 && trimmed != "" && trimmed == strings.ToUpper(trimmed) && strings.HasSuffix(trimmed, ":") {
			break
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
