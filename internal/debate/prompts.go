package debate

import (
	"fmt"
	"strings"

	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/match"
	"github.com/lusakalabs/crucible/internal/model"
)

// System prompts per role. The user prompts embed plan text, assumptions,
// and candidate facts using the markers in internal/llm so the deterministic
// fallback parses exactly what the remote models see.

const extractorSystem = `You are an analyst extracting testable assumptions from a business plan for the Zambian market.
An assumption is a specific, falsifiable claim the plan depends on: a tax rate, a cost level, a regulatory condition, a market expectation.
Output one assumption per line in exactly this format:
[CATEGORY] ASSUMPTION: <one-sentence assumption>
CATEGORY is one of TAX, ENERGY, FINANCE, LOGISTICS, MINING, AGRICULTURE, LABOR, TRADE, DIGITAL, REGISTRATION, or GENERAL if none fits.
Extract at most 10 assumptions. Output nothing else.`

const adversarySystem = `You are a hostile due-diligence analyst. Attack the assumption below using ONLY the candidate facts provided.
Never invent facts. Cite facts by their exact IDs. If no candidate fact undermines the assumption, say so with low confidence.
Output exactly this format:
CITES: <comma-separated fact IDs, or "none">
CONFIDENCE: <0.00-1.00>
ARGUMENT: <why the cited facts undermine the assumption>`

const proponentSystem = `You are defending a business plan assumption against a critique grounded in ground-truth facts.
You may REBUT (argue the cited facts do not invalidate the assumption) or REVISE (narrow the assumption so it no longer conflicts).
Never deny a cited fact. Output exactly this format:
KIND: <REBUTTAL or REVISION>
ARGUMENT: <your defense>
REVISED: <the full revised assumption text, only if KIND is REVISION>`

const judgeSystem = `You are a neutral judge summarizing the outcome of an adversarial stress test of a business plan.
Write a concise rationale (3-5 sentences) for the overall verdict, naming the decisive facts. Do not invent facts or outcomes.`

// extractorPrompt embeds the plan text after the PLAN: marker
func extractorPrompt(planText string) string {
	return llm.PlanMarker + "\n" + planText
}

// adversaryPrompt lists the matcher's candidate facts in rank order
func adversaryPrompt(a model.Assumption, candidates []match.Match) string {
	var b strings.Builder
	b.WriteString(llm.AssumptionMarker + " " + a.Text + "\n\n")
	b.WriteString("CANDIDATE FACTS:\n")
	if len(candidates) == 0 {
		b.WriteString("(none)\n")
	}
	for _, m := range candidates {
		b.WriteString(llm.FormatFactLine(m.Fact) + "\n")
	}
	return b.String()
}

// proponentPrompt embeds the assumption, the critique, and the cited facts
func proponentPrompt(a model.Assumption, critique model.Critique, cited []model.Fact) string {
	var b strings.Builder
	b.WriteString(llm.AssumptionMarker + " " + a.Text + "\n\n")
	b.WriteString("CRITIQUE:\n")
	b.WriteString(critique.ArgumentText + "\n\n")
	b.WriteString("CITED FACTS:\n")
	if len(cited) == 0 {
		b.WriteString("(none)\n")
	}
	for _, f := range cited {
		b.WriteString(llm.FormatFactLine(f) + "\n")
	}
	return b.String()
}

// judgePrompt summarizes the per-assumption outcomes as KEY: value lines
func judgePrompt(overall model.OverallVerdict, results []model.AssumptionResult, fatalFlawIDs []string) string {
	var survived, revised, killed int
	for _, r := range results {
		switch r.Assumption.Status {
		case model.StatusSurvived:
			survived++
		case model.StatusRevised:
			revised++
		case model.StatusKilled:
			killed++
		}
	}

	flaws := "none"
	if len(fatalFlawIDs) > 0 {
		flaws = strings.Join(fatalFlawIDs, ", ")
	}

	var b strings.Builder
	b.WriteString("OUTCOME: " + string(overall) + "\n")
	b.WriteString(fmt.Sprintf("SURVIVED: %d\n", survived))
	b.WriteString(fmt.Sprintf("REVISED: %d\n", revised))
	b.WriteString(fmt.Sprintf("KILLED: %d\n", killed))
	b.WriteString("FATAL FLAWS: " + flaws + "\n\n")
	b.WriteString("ASSUMPTIONS:\n")
	for _, r := range results {
		b.WriteString(fmt.Sprintf("- [%s] %s\n", r.Assumption.Status, r.Assumption.Text))
	}
	return b.String()
}
