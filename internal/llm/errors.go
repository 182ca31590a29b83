package llm

import "fmt"

// ConfigurationError reports a missing credential for the selected provider.
// It is raised before any outbound call is attempted.
type ConfigurationError struct {
	Provider string
	Missing  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is required for the %s provider", e.Missing, e.Provider)
}

// UpstreamAPIError reports a non-success status from the provider API. Body
// carries the provider's raw error payload for logging; callers return only
// the message to clients.
type UpstreamAPIError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Status)
}

// GenerationError reports a provider response that could not be turned into
// a usable artifact: an unrecognized response shape or a candidate that
// failed validation.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return e.Reason
}
