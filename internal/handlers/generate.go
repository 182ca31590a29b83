package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"har2jmx/internal/config"
	"har2jmx/internal/har"
	"har2jmx/internal/jmx"
	"har2jmx/internal/llm"
	"har2jmx/internal/models"
)

const defaultTestPlanName = "HAR Performance Test"

// GeneratorFactory builds the Generator for a provider. Swappable so tests
// run without provider credentials or network access.
type GeneratorFactory func(ctx context.Context, provider llm.Provider, cfg *config.Config, logger *logrus.Entry) (llm.Generator, error)

type GenerateHandler struct {
	cfg          *config.Config
	logger       *logrus.Logger
	newGenerator GeneratorFactory
}

func NewGenerateHandler(cfg *config.Config, logger *logrus.Logger) *GenerateHandler {
	return &GenerateHandler{
		cfg:          cfg,
		logger:       logger,
		newGenerator: llm.ForProvider,
	}
}

// Generate handles POST /api/v1/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.cfg.MaxRequestSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read request body",
		})
		return
	}

	var req models.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	provider, err := llm.ParseProvider(req.AIProvider)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_provider",
			Message: err.Error(),
		})
		return
	}

	doc, err := har.ParseContent(req.HARContent)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_har",
			Message: err.Error(),
		})
		return
	}

	if req.ExcludeStatic {
		doc = har.FilterStatic(doc)
	}

	planName := req.TestPlanName
	if planName == "" {
		planName = defaultTestPlanName
	}

	log := h.logger.WithFields(logrus.Fields{
		"provider":  string(provider),
		"entries":   len(doc.Log.Entries),
		"test_plan": planName,
	})
	log.Info("Generating JMeter test plan from HAR")

	prompt, err := jmx.BuildPrompt(doc, planName, req.LoadConfig)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "prompt_error",
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.ProviderTimeout)
	defer cancel()

	generator, err := h.newGenerator(ctx, provider, h.cfg, h.logger.WithField("component", "llm"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	rawText, err := generator.Generate(ctx, prompt)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	jmxContent := jmx.ExtractXML(rawText)
	if !jmx.IsValid(jmxContent) {
		h.respondError(c, log, &llm.GenerationError{
			Reason: "AI did not generate valid JMeter XML content",
		})
		return
	}

	log.Info("Test plan generated successfully")

	summary := har.Summarize(doc)
	c.JSON(http.StatusOK, models.GenerateResponse{
		JMXContent: jmxContent,
		Metadata: models.Metadata{
			Provider:      generator.Name(),
			GeneratedByAI: true,
			TestPlanName:  planName,
		},
		Summary: models.Summary{
			TotalRequests:   summary.TotalRequests,
			UniqueDomains:   summary.UniqueDomains,
			MethodsUsed:     summary.MethodsUsed,
			AvgResponseTime: summary.AvgResponseTime,
		},
	})
}

// respondError maps the provider error taxonomy onto HTTP statuses. Raw
// provider bodies and stack traces are logged, never returned.
func (h *GenerateHandler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var cfgErr *llm.ConfigurationError
	var upstreamErr *llm.UpstreamAPIError
	var genErr *llm.GenerationError

	switch {
	case errors.As(err, &cfgErr):
		log.WithError(err).Error("Provider configuration error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "configuration_error",
			Message: cfgErr.Error(),
		})
	case errors.As(err, &upstreamErr):
		log.WithFields(logrus.Fields{
			"status_code": upstreamErr.StatusCode,
			"body":        upstreamErr.Body,
		}).Error("Upstream provider error")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_api_error",
			Message: upstreamErr.Error(),
		})
	case errors.As(err, &genErr):
		log.WithError(err).Error("Generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "generation_error",
			Message: genErr.Error(),
		})
	default:
		log.WithError(err).Error("Generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
