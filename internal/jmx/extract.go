package jmx

import (
	"regexp"
	"strings"
)

// rootElement must appear in any accepted artifact.
const rootElement = "<jmeterTestPlan"

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:xml)?\\s*\\n?(.*?)```")
	xmlSpanRe     = regexp.MustCompile(`(?s)<\?xml.*?</jmeterTestPlan>`)
)

// ExtractXML pulls the candidate test-plan XML out of free-form model
// output. Preference order: the interior of the first fenced code block
// (optionally tagged "xml"), then a literal span from an XML prolog through
// the closing jmeterTestPlan tag, then the whole text. Best effort; callers
// must validate the result.
func ExtractXML(text string) string {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	if span := xmlSpanRe.FindString(text); span != "" {
		return span
	}

	return text
}

// IsValid reports whether the candidate is acceptable as a JMeter test plan:
// non-empty and containing the test-plan root element.
func IsValid(candidate string) bool {
	return strings.TrimSpace(candidate) != "" && strings.Contains(candidate, rootElement)
}
