package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
)

// Rulebased is the deterministic fallback provider. It produces the same
// structured block formats the remote models are instructed to emit, derived
// purely from the prompt contents. Identical prompts always yield identical
// output, which keeps fallback-mode debates reproducible.
type Rulebased struct{}

// NewRulebased creates the deterministic fallback provider
func NewRulebased() *Rulebased {
	return &Rulebased{}
}

// Name returns the provider name
func (p *Rulebased) Name() string {
	return "rulebased"
}

// IsAvailable always reports true: the fallback has no external dependency
func (p *Rulebased) IsAvailable(ctx context.Context) bool {
	return true
}

// Generate dispatches on the request role. It never fails.
func (p *Rulebased) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var text string
	switch req.Role {
	case RoleExtractor:
		text = p.extract(req.Prompt)
	case RoleAdversary:
		text = p.attack(req.Prompt)
	case RoleProponent:
		text = p.defend(req.Prompt)
	case RoleJudge:
		text = p.rationale(req.Prompt)
	default:
		text = ""
	}
	return &GenerateResponse{Text: text, Model: "rulebased"}, nil
}

// Claim vocabulary: a sentence containing any of these reads as a testable
// assumption rather than narrative filler.
var claimIndicators = []string{
	"will", "expect", "assume", "project", "target", "plan to", "intend",
	"margin", "profit", "cost", "price", "revenue", "%", "zmw", "per litre",
	"duty-free", "tax-free",
}

// Per-category synthesized assumptions used when sentence detection finds
// nothing explicit but the plan clearly touches a sector.
var impliedAssumptions = map[model.Category]string{
	model.CategoryTax:          "The business qualifies for the assumed tax regime and rates.",
	model.CategoryEnergy:       "Fuel and electricity costs will remain stable at the assumed levels.",
	model.CategoryFinance:      "Financing is available at the assumed interest rate and terms.",
	model.CategoryLogistics:    "Transport routes will remain passable year-round without significant disruption.",
	model.CategoryMining:       "Mining licenses and permits can be obtained within the projected timeline and exports face no unplanned duties.",
	model.CategoryAgriculture:  "Agricultural commodity prices and market access will meet the projected levels.",
	model.CategoryLabor:        "Labor costs align with the assumed wage levels and statutory contributions are accounted for.",
	model.CategoryTrade:        "Import and export duties and fees are correctly estimated in the financial model.",
	model.CategoryDigital:      "All digital licensing and data protection requirements are met.",
	model.CategoryRegistration: "All necessary licenses, permits, and registrations have been identified and budgeted.",
}

const maxExtracted = 10

// extract applies deterministic heuristic segmentation to the plan text
// embedded in the prompt, yielding "[CATEGORY] ASSUMPTION: ..." lines.
func (p *Rulebased) extract(prompt string) string {
	plan := sectionAfter(prompt, PlanMarker)
	if plan == "" {
		plan = prompt
	}

	var lines []string
	seen := make(map[string]bool)
	emit := func(hint model.Category, text string) {
		if len(lines) >= maxExtracted {
			return
		}
		key := strings.ToLower(strings.TrimSpace(text))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		label := "GENERAL"
		if hint != "" {
			label = string(hint)
		}
		lines = append(lines, fmt.Sprintf("[%s] %s %s", label, AssumptionMarker, strings.TrimSpace(text)))
	}

	// Sentence-level claims
	for _, sentence := range splitSentences(plan) {
		lower := strings.ToLower(sentence)
		for _, indicator := range claimIndicators {
			if strings.Contains(lower, indicator) {
				emit(match.DetectHint(sentence), sentence)
				break
			}
		}
	}

	// Implied sector assumptions
	for _, category := range match.DetectCategories(plan) {
		emit(category, impliedAssumptions[category])
	}

	// Any non-empty plan yields at least one assumption
	if len(lines) == 0 {
		emit("", "The plan's financial projections are realistic under current market conditions.")
		emit(model.CategoryRegistration, impliedAssumptions[model.CategoryRegistration])
	}

	return strings.Join(lines, "\n")
}

// attack produces a CITES/CONFIDENCE/ARGUMENT block grounded in the FACT
// lines present in the prompt (prompt order is matcher ranking).
func (p *Rulebased) attack(prompt string) string {
	refs := ParseFactLines(prompt)
	if len(refs) == 0 {
		return "CITES: none\n" +
			"CONFIDENCE: 0.20\n" +
			"ARGUMENT: No ground-truth fact in the database matches this assumption; it cannot be stress-tested against the current record."
	}

	cited := refs
	if len(cited) > 3 {
		cited = cited[:3]
	}

	maxSev := model.SeverityInformational
	ids := make([]string, 0, len(cited))
	for _, r := range cited {
		ids = append(ids, r.ID)
		if r.Severity > maxSev {
			maxSev = r.Severity
		}
	}

	var confidence string
	switch maxSev {
	case model.SeveritySevere:
		confidence = "0.90"
	case model.SeverityModerate:
		confidence = "0.65"
	default:
		confidence = "0.40"
	}

	var b strings.Builder
	b.WriteString("CITES: " + strings.Join(ids, ", ") + "\n")
	b.WriteString("CONFIDENCE: " + confidence + "\n")
	b.WriteString("ARGUMENT: The assumption conflicts with the ground-truth record.")
	for i, r := range cited {
		if i >= 2 {
			break
		}
		b.WriteString(fmt.Sprintf(" %s (%s, %s): %s", r.ID, r.Category, r.Severity, firstClause(r.Statement)))
	}
	return b.String()
}

// defend produces a KIND/ARGUMENT[/REVISED] block. Severe citations are
// treated as unrebuttable; moderate ones trigger a narrowing revision unless
// the assumption text already accounts for the cited fact.
func (p *Rulebased) defend(prompt string) string {
	refs := ParseFactLines(prompt)
	assumption := sectionAfter(prompt, AssumptionMarker)

	maxSev := model.Severity(0)
	var top FactRef
	for i, r := range refs {
		if i == 0 || r.Severity > maxSev {
			top = r
		}
		if r.Severity > maxSev {
			maxSev = r.Severity
		}
	}

	switch {
	case len(refs) == 0:
		return "KIND: REBUTTAL\n" +
			"ARGUMENT: The critique cites no ground-truth fact; the assumption stands as stated."

	case maxSev == model.SeveritySevere:
		return "KIND: REBUTTAL\n" +
			fmt.Sprintf("ARGUMENT: The cited regulation %s is binding and directly contradicts the assumption; no rebuttal or narrowing overcomes it.", top.ID)

	case strings.Contains(assumption, top.ID):
		return "KIND: REBUTTAL\n" +
			fmt.Sprintf("ARGUMENT: The assumption was already revised to account for %s; the remaining citations do not invalidate the narrowed claim.", top.ID)

	case maxSev == model.SeverityModerate:
		revised := fmt.Sprintf("%s, revised to account for %s (%s)", assumption, top.ID, firstClause(top.Statement))
		return "KIND: REVISION\n" +
			fmt.Sprintf("ARGUMENT: The critique identifies a real cost and compliance risk; the assumption is narrowed to incorporate %s.", top.ID) + "\n" +
			"REVISED: " + revised

	default:
		return "KIND: REBUTTAL\n" +
			"ARGUMENT: The cited facts are informational context and do not invalidate the assumption as stated."
	}
}

// rationale renders a verdict rationale from the summary lines in the prompt
func (p *Rulebased) rationale(prompt string) string {
	outcome := promptValue(prompt, "OUTCOME:")
	killed := promptValue(prompt, "KILLED:")
	survived := promptValue(prompt, "SURVIVED:")
	revised := promptValue(prompt, "REVISED:")
	flaws := promptValue(prompt, "FATAL FLAWS:")

	var b strings.Builder
	switch outcome {
	case string(model.VerdictFail):
		b.WriteString("The plan fails the stress test: at least one core assumption is contradicted by a severe ground-truth fact")
		if flaws != "" && flaws != "none" {
			b.WriteString(" (" + flaws + ")")
		}
		b.WriteString(". ")
	case string(model.VerdictConditionalPass):
		b.WriteString("The plan passes conditionally: no severe contradiction was found, but some assumptions were killed or left unresolved after the maximum number of revision rounds. ")
	default:
		b.WriteString("The plan passes the stress test: every extracted assumption survived adversarial review against the ground-truth record. ")
	}
	b.WriteString(fmt.Sprintf("Of the extracted assumptions, %s survived, %s were revised, and %s were killed.", orZero(survived), orZero(revised), orZero(killed)))
	return b.String()
}

// splitSentences segments free text into sentence-like units. Bullet lines
// count as their own segments.
func splitSentences(text string) []string {
	var sentences []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• \t"))
		if line == "" {
			continue
		}

		var current strings.Builder
		runes := []rune(line)
		for i, r := range runes {
			current.WriteRune(r)
			atEnd := i == len(runes)-1
			if r == '.' || r == '!' || r == '?' || atEnd {
				if !atEnd && i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\t' {
					continue
				}
				sentence := strings.TrimSpace(current.String())
				if len(sentence) >= 15 && len(sentence) <= 500 {
					sentences = append(sentences, strings.TrimRight(sentence, "."))
				}
				current.Reset()
			}
		}
	}

	return sentences
}

// firstClause trims a statement to its first sentence for compact citations
func firstClause(statement string) string {
	if idx := strings.Index(statement, ". "); idx > 0 {
		return statement[:idx+1]
	}
	return statement
}

// promptValue extracts the value following "KEY:" on its own line
func promptValue(prompt, key string) string {
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, key) {
			return strings.TrimSpace(strings.TrimPrefix(line, key))
		}
	}
	return ""
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
