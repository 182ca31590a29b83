package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sirupsen/logrus"
)

const (
	openAIModel = "gpt-4.1"

	// Test plans for large archives run long; cap completion length rather
	// than rely on model defaults.
	openAIMaxCompletionTokens = 16384

	openAISystemPrompt = "You are an expert JMeter test plan generator. Return only valid JMeter test plan XML, with no explanations."
)

// OpenAIGenerator produces test-plan XML through the OpenAI chat-completions
// API. A single blocking call per invocation; no retries, no streaming.
type OpenAIGenerator struct {
	client *openai.Client
	logger *logrus.Entry
}

func NewOpenAIGenerator(apiKey string, logger *logrus.Entry) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Provider: "openai", Missing: "OPENAI_API_KEY"}
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIGenerator{
		client: &client,
		logger: logger.WithField("provider", "openai"),
	}, nil
}

func (g *OpenAIGenerator) Name() string {
	return string(ProviderOpenAI)
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(openAIModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: param.NewOpt[int64](openAIMaxCompletionTokens),
	}

	result, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			g.logger.WithFields(logrus.Fields{
				"status_code": apiErr.StatusCode,
				"api_error":   apiErr.Message,
			}).Error("OpenAI API returned an error")
			return "", &UpstreamAPIError{
				Provider:   "openai",
				StatusCode: apiErr.StatusCode,
				Status:     apiErr.Message,
				Body:       apiErr.RawJSON(),
			}
		}
		return "", fmt.Errorf("openai generate content: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", &GenerationError{Reason: "OpenAI response contained no choices"}
	}

	g.logger.WithField("model", result.Model).Info("Received OpenAI response")
	return result.Choices[0].Message.Content, nil
}
