package match

// DiceCoefficient computes bigram similarity between two strings, in [0,1].
// Used for fuzzy keyword matching so that near-forms like "logistic" still
// match the keyword "logistics".
func DiceCoefficient(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) < 2 || len(b) < 2 {
		return 0.0
	}

	bigrams := make(map[string]int)
	for i := 0; i < len(a)-1; i++ {
		bigrams[a[i:i+2]]++
	}

	shared := 0
	for i := 0; i < len(b)-1; i++ {
		bg := b[i : i+2]
		if bigrams[bg] > 0 {
			bigrams[bg]--
			shared++
		}
	}

	return 2.0 * float64(shared) / float64(len(a)+len(b)-2)
}
