package har

import (
	"reflect"
	"testing"
)

func entry(method, url string, time float64) *Entry {
	return &Entry{
		Time: time,
		Request: &Request{
			Method: method,
			URL:    url,
		},
		Response: &Response{Status: 200},
	}
}

func TestSummarize_Counts(t *testing.T) {
	har := &HAR{
		Log: &Log{
			Entries: []*Entry{
				entry("GET", "https://api.example.com/users", 100),
				entry("GET", "https://api.example.com/orders", 200),
				entry("POST", "https://auth.example.com/token", 300),
			},
		},
	}

	summary := Summarize(har)

	if summary.TotalRequests != 3 {
		t.Errorf("expected 3 requests, got %d", summary.TotalRequests)
	}
	if summary.AvgResponseTime != 200 {
		t.Errorf("expected avg 200, got %f", summary.AvgResponseTime)
	}
}

func TestSummarize_UniqueDomainsCollapse(t *testing.T) {
	har := &HAR{
		Log: &Log{
			Entries: []*Entry{
				entry("GET", "https://api.example.com/a", 10),
				entry("GET", "https://api.example.com/b", 10),
				entry("GET", "https://cdn.example.com/c", 10),
			},
		},
	}

	summary := Summarize(har)

	want := []string{"api.example.com", "cdn.example.com"}
	if !reflect.DeepEqual(summary.UniqueDomains, want) {
		t.Errorf("expected domains %v, got %v", want, summary.UniqueDomains)
	}
}

func TestSummarize_MethodsUsed(t *testing.T) {
	har := &HAR{
		Log: &Log{
			Entries: []*Entry{
				entry("GET", "https://api.example.com/a", 10),
				entry("POST", "https://api.example.com/b", 10),
				entry("GET", "https://api.example.com/c", 10),
				entry("DELETE", "https://api.example.com/d", 10),
			},
		},
	}

	summary := Summarize(har)

	want := []string{"DELETE", "GET", "POST"}
	if !reflect.DeepEqual(summary.MethodsUsed, want) {
		t.Errorf("expected methods %v, got %v", want, summary.MethodsUsed)
	}
}

func TestSummarize_ZeroEntries(t *testing.T) {
	summary := Summarize(&HAR{Log: &Log{Entries: []*Entry{}}})

	if summary.TotalRequests != 0 {
		t.Errorf("expected 0 requests, got %d", summary.TotalRequests)
	}
	// Guarded: NaN is not representable in JSON, so the average is 0.
	if summary.AvgResponseTime != 0 {
		t.Errorf("expected avg 0 for empty archive, got %f", summary.AvgResponseTime)
	}
	if len(summary.UniqueDomains) != 0 || len(summary.MethodsUsed) != 0 {
		t.Error("expected empty domain and method sets")
	}
}

func TestSummarize_UnparseableURL(t *testing.T) {
	har := &HAR{
		Log: &Log{
			Entries: []*Entry{
				entry("GET", "://not-a-url", 10),
				entry("GET", "https://api.example.com/a", 10),
			},
		},
	}

	summary := Summarize(har)

	if summary.TotalRequests != 2 {
		t.Errorf("expected 2 requests, got %d", summary.TotalRequests)
	}
	want := []string{"api.example.com"}
	if !reflect.DeepEqual(summary.UniqueDomains, want) {
		t.Errorf("expected domains %v, got %v", want, summary.UniqueDomains)
	}
}

func TestSummarize_NilRequestSkipped(t *testing.T) {
	har := &HAR{
		Log: &Log{
			Entries: []*Entry{
				nil,
				{Time: 50},
				entry("GET", "https://api.example.com/a", 100),
			},
		},
	}

	summary := Summarize(har)

	if summary.TotalRequests != 1 {
		t.Errorf("expected 1 request, got %d", summary.TotalRequests)
	}
	if summary.AvgResponseTime != 100 {
		t.Errorf("expected avg 100, got %f", summary.AvgResponseTime)
	}
}
