package debate

import (
	"reflect"
	"testing"
)

func TestParseFields(t *testing.T) {
	text := "CITES: A-001, B-002\n" +
		"CONFIDENCE: 0.75\n" +
		"ARGUMENT: First line.\n" +
		"Second line continues the argument.\n"

	fields := parseFields(text, critiqueKeys)

	if fields["CITES"] != "A-001, B-002" {
		t.Errorf("CITES = %q", fields["CITES"])
	}
	if fields["CONFIDENCE"] != "0.75" {
		t.Errorf("CONFIDENCE = %q", fields["CONFIDENCE"])
	}
	if fields["ARGUMENT"] != "First line.\nSecond line continues the argument." {
		t.Errorf("ARGUMENT = %q", fields["ARGUMENT"])
	}
}

func TestParseFields_CaseInsensitive(t *testing.T) {
	fields := parseFields("kind: revision\nargument: reasons\nrevised: new text", defenseKeys)

	if fields["KIND"] != "revision" {
		t.Errorf("KIND = %q", fields["KIND"])
	}
	if fields["REVISED"] != "new text" {
		t.Errorf("REVISED = %q", fields["REVISED"])
	}
}

func TestParseFields_IgnoresPreamble(t *testing.T) {
	fields := parseFields("Sure, here is my analysis:\nCITES: A-001\nCONFIDENCE: 1\nARGUMENT: x", critiqueKeys)
	if fields["CITES"] != "A-001" {
		t.Errorf("CITES = %q", fields["CITES"])
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"A-001, B-002", []string{"A-001", "B-002"}},
		{"a-001; b-002", []string{"A-001", "B-002"}},
		{"none", nil},
		{"", nil},
		{"N/A", nil},
		{"[MINING-002].", []string{"MINING-002"}},
	}

	for _, tt := range tests {
		if got := parseIDList(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseIDList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0.75", 0.75},
		{"0.90", 0.90},
		{"1", 1},
		{"85%", 0.85},
		{"roughly 0.6 overall", 0.6},
		{"high", 0.5},
		{"", 0.5},
		{"150", 1},
	}

	for _, tt := range tests {
		if got := parseConfidence(tt.input); got != tt.want {
			t.Errorf("parseConfidence(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
