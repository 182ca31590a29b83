package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const googleModel = "gemini-2.5-flash"

// GoogleGenerator produces test-plan XML through the Gemini generate-content
// API, authenticated with an API key.
type GoogleGenerator struct {
	client *genai.Client
	logger *logrus.Entry
}

func NewGoogleGenerator(ctx context.Context, apiKey string, logger *logrus.Entry) (*GoogleGenerator, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: "google", Missing: "GOOGLE_AI_API_KEY"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GoogleGenerator{
		client: client,
		logger: logger.WithField("provider", "google"),
	}, nil
}

func (g *GoogleGenerator) Name() string {
	return string(ProviderGoogle)
}

func (g *GoogleGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, googleModel, contents, &genai.GenerateContentConfig{})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			g.logger.WithFields(logrus.Fields{
				"status_code": apiErr.Code,
				"api_error":   apiErr.Message,
			}).Error("Google AI API returned an error")
			return "", &UpstreamAPIError{
				Provider:   "google",
				StatusCode: apiErr.Code,
				Status:     apiErr.Status,
				Body:       apiErr.Message,
			}
		}
		return "", fmt.Errorf("genai generate content: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{Reason: "Google AI response contained no candidates"}
	}

	g.logger.WithField("model", googleModel).Info("Received Google AI response")
	return result.Candidates[0].Content.Parts[0].Text, nil
}
