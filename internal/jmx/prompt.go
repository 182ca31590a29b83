package jmx

import (
	"encoding/json"
	"fmt"
	"strings"

	"har2jmx/internal/har"
	"har2jmx/internal/models"
)

// BuildPrompt assembles the instruction template sent to the provider: JMeter
// test-plan conventions, the caller's thread-group parameters, and the full
// archive as pretty-printed JSON. The archive is appended verbatim so entry
// order survives into the prompt.
func BuildPrompt(h *har.HAR, planName string, load *models.LoadConfig) (string, error) {
	if load == nil {
		load = models.DefaultLoadConfig()
	}

	harJSON, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize HAR for prompt: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are generating an Apache JMeter test plan (JMX XML) named "%s" from a captured HTTP Archive (HAR).

Requirements:
- Produce a complete, valid jmeterTestPlan XML document (JMeter 5.x schema).
- Create one Thread Group configured with %d threads, a ramp-up period of %d seconds, a duration of %d seconds, and a loop count of %d.
- Add one HTTP Request sampler per HAR entry, in the order the entries appear, with the correct method, protocol, host, path, query parameters and request body.
- Attach an HTTP Header Manager to each sampler carrying that entry's request headers.
- Where request bodies or URLs contain values that appear in earlier responses (tokens, session IDs), add Regular Expression Extractors on the earlier request and reference the extracted variables for correlation.
- Add a CSV Data Set Config placeholder for parameterizing user-specific values.
- Include a Summary Report and a View Results Tree listener.
- Return only the XML document, with no commentary.

`, planName, load.Threads, load.RampUp, load.Duration, load.LoopCount)

	b.WriteString("HAR document:\n")
	b.Write(harJSON)
	b.WriteString("\n")

	return b.String(), nil
}
