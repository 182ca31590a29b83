package har

import (
	"net/url"
	"sort"
)

// Summary aggregates the archive's entries: how many requests it captured,
// which hostnames and methods appear, and the mean response time in
// milliseconds. AvgResponseTime is 0 for an empty archive; NaN is not
// representable in JSON.
type Summary struct {
	TotalRequests   int
	UniqueDomains   []string
	MethodsUsed     []string
	AvgResponseTime float64
}

// Summarize computes the aggregate over all entries. Hostnames come from
// each request URL; URLs that fail to parse or have no host contribute no
// domain. Domain and method sets are sorted.
func Summarize(h *HAR) Summary {
	summary := Summary{
		UniqueDomains: []string{},
		MethodsUsed:   []string{},
	}

	if h == nil || h.Log == nil {
		return summary
	}

	domains := make(map[string]struct{})
	methods := make(map[string]struct{})
	var totalTime float64

	for _, entry := range h.Log.Entries {
		if entry == nil || entry.Request == nil {
			continue
		}

		summary.TotalRequests++
		totalTime += entry.Time

		if entry.Request.Method != "" {
			methods[entry.Request.Method] = struct{}{}
		}

		if parsedURL, err := url.Parse(entry.Request.URL); err == nil && parsedURL.Hostname() != "" {
			domains[parsedURL.Hostname()] = struct{}{}
		}
	}

	for domain := range domains {
		summary.UniqueDomains = append(summary.UniqueDomains, domain)
	}
	for method := range methods {
		summary.MethodsUsed = append(summary.MethodsUsed, method)
	}
	sort.Strings(summary.UniqueDomains)
	sort.Strings(summary.MethodsUsed)

	if summary.TotalRequests > 0 {
		summary.AvgResponseTime = totalTime / float64(summary.TotalRequests)
	}

	return summary
}
