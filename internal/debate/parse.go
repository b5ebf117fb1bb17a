package debate

import (
	"regexp"
	"strconv"
	"strings"
)

// parseFields scans a structured response for KEY: value blocks. A value
// continues across lines until the next known key. Keys are matched
// case-insensitively at line start.
func parseFields(text string, keys []string) map[string]string {
	fields := make(map[string]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)

		matched := false
		for _, key := range keys {
			if strings.HasPrefix(upper, key+":") {
				current = key
				fields[current] = strings.TrimSpace(trimmed[len(key)+1:])
				matched = true
				break
			}
		}
		if matched || current == "" {
			continue
		}
		if trimmed != "" {
			fields[current] = strings.TrimSpace(fields[current] + "\n" + trimmed)
		}
	}

	return fields
}

// parseIDList splits a CITES value into fact IDs, dropping "none" markers
func parseIDList(value string) []string {
	var ids []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	}) {
		id := strings.Trim(part, ".,;()[]")
		if id == "" || strings.EqualFold(id, "none") || strings.EqualFold(id, "n/a") {
			continue
		}
		ids = append(ids, strings.ToUpper(id))
	}
	return ids
}

// parseConfidence extracts the first number in a CONFIDENCE value, clamped
// to [0, 1]. Unparseable values default to 0.5.
func parseConfidence(value string) float64 {
	m := confidenceRe.FindString(value)
	if m == "" {
		return 0.5
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0.5
	}
	// Tolerate percentage-style answers
	if v > 1 && v <= 100 {
		v /= 100
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

var confidenceRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
