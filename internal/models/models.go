package models

import "encoding/json"

// GenerateRequest is the body of POST /api/v1/generate. HARContent may be a
// JSON string holding the archive or the archive object itself.
type GenerateRequest struct {
	HARContent    json.RawMessage `json:"harContent"`
	LoadConfig    *LoadConfig     `json:"loadConfig,omitempty"`
	TestPlanName  string          `json:"testPlanName,omitempty"`
	AIProvider    string          `json:"aiProvider,omitempty"`
	ExcludeStatic bool            `json:"excludeStatic,omitempty"`
}

// LoadConfig holds the thread-group parameters interpolated into the prompt.
type LoadConfig struct {
	Threads   int `json:"threads"`
	RampUp    int `json:"rampUp"`
	Duration  int `json:"duration"`
	LoopCount int `json:"loopCount"`
}

// DefaultLoadConfig returns the thread-group parameters used when the caller
// omits loadConfig.
func DefaultLoadConfig() *LoadConfig {
	return &LoadConfig{
		Threads:   10,
		RampUp:    30,
		Duration:  300,
		LoopCount: 1,
	}
}

type GenerateResponse struct {
	JMXContent string   `json:"jmxContent"`
	Metadata   Metadata `json:"metadata"`
	Summary    Summary  `json:"summary"`
}

type Metadata struct {
	Provider      string `json:"provider"`
	GeneratedByAI bool   `json:"generatedByAI"`
	TestPlanName  string `json:"testPlanName"`
}

// Summary is the aggregate computed over the HAR entries. UniqueDomains and
// MethodsUsed are sorted so responses are stable across invocations.
type Summary struct {
	TotalRequests   int      `json:"totalRequests"`
	UniqueDomains   []string `json:"uniqueDomains"`
	MethodsUsed     []string `json:"methodsUsed"`
	AvgResponseTime float64  `json:"avgResponseTime"`
}

// Response structures
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
