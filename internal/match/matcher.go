package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/model"
)

// Scoring weights. Raw scores are normalized per fact so the final score is
// always in [0,1] regardless of keyword count.
const (
	exactKeywordWeight = 3.0
	fuzzyKeywordWeight = 0.75
	categoryBoost      = 2.0
	fuzzyTokenRatio    = 0.75
	minScore           = 0.10
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// Tokenize extracts lowercase tokens from text
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Match is one scored candidate fact
type Match struct {
	Fact  model.Fact
	Score float64
}

// Matcher ranks facts by relevance to an assumption. It is a pure function
// of its inputs and the store contents: no hidden state, no randomness.
type Matcher struct {
	store *facts.Store
}

// NewMatcher creates a matcher over the given store
func NewMatcher(store *facts.Store) *Matcher {
	return &Matcher{store: store}
}

// Match returns at most topK facts scoring above the minimum threshold,
// descending by score with ties broken by Fact.ID ascending. Never fails;
// returns an empty slice when nothing clears the threshold.
func (m *Matcher) Match(assumptionText string, hint model.Category, topK int) []Match {
	if topK < 1 {
		topK = 1
	}

	tokens := Tokenize(assumptionText)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}
	joined := strings.Join(tokens, " ")

	var scored []Match
	for _, f := range m.store.All() {
		score := scoreFact(f, tokenSet, tokens, joined, hint)
		if score >= minScore {
			scored = append(scored, Match{Fact: f, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Fact.ID < scored[j].Fact.ID
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

// scoreFact computes the normalized relevance of one fact
func scoreFact(f model.Fact, tokenSet map[string]bool, tokens []string, joined string, hint model.Category) float64 {
	if len(f.Keywords) == 0 {
		return 0
	}

	raw := 0.0
	for _, keyword := range f.Keywords {
		kwTokens := Tokenize(keyword)
		if len(kwTokens) == 0 {
			continue
		}
		kwNorm := strings.Join(kwTokens, " ")

		// Exact match: token equality for single-word keywords, phrase
		// containment for multi-word keywords
		if len(kwTokens) == 1 {
			if tokenSet[kwNorm] {
				raw += exactKeywordWeight
				continue
			}
		} else if strings.Contains(joined, kwNorm) {
			raw += exactKeywordWeight
			continue
		}

		// Fuzzy match against individual tokens
		if len(kwNorm) >= 4 {
			for _, token := range tokens {
				if len(token) >= 4 && DiceCoefficient(kwNorm, token) >= fuzzyTokenRatio {
					raw += fuzzyKeywordWeight
					break
				}
			}
		}
	}

	// The boost amplifies keyword evidence; it never substitutes for it
	if raw == 0 {
		return 0
	}
	if hint != "" && f.Category == hint {
		raw += categoryBoost
	}

	max := exactKeywordWeight*float64(len(f.Keywords)) + categoryBoost
	score := raw / max
	if score > 1 {
		score = 1
	}
	return score
}
