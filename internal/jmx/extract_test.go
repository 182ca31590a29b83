package jmx

import (
	"strings"
	"testing"
)

const plan = `<?xml version="1.0" encoding="UTF-8"?>
<jmeterTestPlan version="1.2">
  <hashTree/>
</jmeterTestPlan>`

func TestExtractXML_FencedBlockTagged(t *testing.T) {
	text := "Here is your test plan:\n```xml\n" + plan + "\n```\nLet me know if you need changes."

	got := ExtractXML(text)
	if got != plan {
		t.Errorf("expected fenced block interior, got:\n%s", got)
	}
}

func TestExtractXML_FencedBlockUntagged(t *testing.T) {
	text := "```\n" + plan + "\n```"

	got := ExtractXML(text)
	if got != plan {
		t.Errorf("expected fenced block interior, got:\n%s", got)
	}
}

func TestExtractXML_PrologSpan(t *testing.T) {
	text := "The generated plan follows.\n" + plan + "\nAdjust thread counts as needed."

	got := ExtractXML(text)
	if got != plan {
		t.Errorf("expected prolog-to-closing-tag span, got:\n%s", got)
	}
}

func TestExtractXML_NoPattern(t *testing.T) {
	text := "Sorry, I cannot generate a test plan for this input."

	got := ExtractXML(text)
	if got != text {
		t.Errorf("expected full raw text, got:\n%s", got)
	}
}

func TestExtractXML_FencedBlockPreferredOverSpan(t *testing.T) {
	text := "Preamble with " + plan + " inline.\n```xml\n<jmeterTestPlan fenced=\"true\"/>\n```"

	got := ExtractXML(text)
	if !strings.Contains(got, "fenced=\"true\"") {
		t.Errorf("expected fenced block to win, got:\n%s", got)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"complete plan", plan, true},
		{"root element only", "<jmeterTestPlan/>", true},
		{"empty", "", false},
		{"whitespace", "   \n\t", false},
		{"prose without root", "I could not generate XML", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.candidate); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.candidate, got, tc.want)
			}
		})
	}
}
