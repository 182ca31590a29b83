package jmx

import (
	"strings"
	"testing"

	"har2jmx/internal/har"
	"har2jmx/internal/models"
)

func sampleDoc() *har.HAR {
	return &har.HAR{
		Log: &har.Log{
			Version: "1.2",
			Entries: []*har.Entry{
				{
					Time: 42,
					Request: &har.Request{
						Method: "GET",
						URL:    "https://api.example.com/v1/session",
					},
					Response: &har.Response{Status: 200},
				},
			},
		},
	}
}

func TestBuildPrompt_InterpolatesLoadConfig(t *testing.T) {
	load := &models.LoadConfig{Threads: 25, RampUp: 60, Duration: 900, LoopCount: 3}

	prompt, err := BuildPrompt(sampleDoc(), "Checkout Flow", load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"25 threads",
		"ramp-up period of 60 seconds",
		"duration of 900 seconds",
		"loop count of 3",
		`"Checkout Flow"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_DefaultLoadConfig(t *testing.T) {
	prompt, err := BuildPrompt(sampleDoc(), "HAR Performance Test", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "10 threads") {
		t.Error("expected default thread count in prompt")
	}
	if !strings.Contains(prompt, "ramp-up period of 30 seconds") {
		t.Error("expected default ramp-up in prompt")
	}
}

func TestBuildPrompt_EmbedsHARDocument(t *testing.T) {
	prompt, err := BuildPrompt(sampleDoc(), "Plan", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "https://api.example.com/v1/session") {
		t.Error("expected entry URL in prompt")
	}
	// Pretty-printed JSON, not compact
	if !strings.Contains(prompt, "\"method\": \"GET\"") {
		t.Error("expected indented HAR JSON in prompt")
	}
}
