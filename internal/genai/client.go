// Package genai wraps calls to the generative-content API used by the playground
// and the tutorial demos. Each call is a single outbound request: no retries,
// no caching and no rate limiting. Errors reach the caller unmodified.
package genai

import (
	"aistudio-academy/internal/metrics"
	"aistudio-academy/internal/models"
	"aistudio-academy/pkg/logger"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultSystemInstruction is used when the caller leaves the persona blank.
	DefaultSystemInstruction = "You are a helpful AI assistant."
	// FixedDemoModel serves the grounding and structured-output demos.
	FixedDemoModel = "gemini-3-flash-preview"
)

// ErrUnsupported is returned by backends that cannot serve a request feature.
var ErrUnsupported = errors.New("genai: feature not supported by provider")

// Request is the provider-neutral form of one generation call.
type Request struct {
	Model             string
	Prompt            string
	SystemInstruction string
	// Config is nil when sampling is left to the provider.
	Config          *models.GenerationConfig
	MaxOutputTokens *int
	StopSequences   []string

	// Grounding adds the search tool.
	Grounding bool
	// ResponseMIMEType and ResponseSchema constrain the output format.
	ResponseMIMEType string
	ResponseSchema   map[string]any
}

// Source is a web page the answer was grounded on.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type Usage struct {
	PromptTokens int `json:"promptTokens"`
	OutputTokens int `json:"outputTokens"`
}

type Response struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
	Usage   Usage    `json:"usage"`
}

// Backend performs the outbound call for one provider.
type Backend interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

type Client struct {
	backend Backend
	log     *zap.Logger
}

func NewClient(backend Backend) *Client {
	return &Client{backend: backend, log: logger.Named("genai")}
}

// RunPrompt sends prompt to modelID. A blank systemInstruction becomes the
// generic assistant persona and overrides are merged over DirectCallDefaults.
func (c *Client) RunPrompt(ctx context.Context, modelID, prompt, systemInstruction string, overrides *models.GenerationOverrides) (*Response, error) {
	if systemInstruction == "" {
		systemInstruction = DefaultSystemInstruction
	}

	cfg := models.Merge(models.DirectCallDefaults(), overrides)
	req := Request{
		Model:             modelID,
		Prompt:            prompt,
		SystemInstruction: systemInstruction,
		Config:            &cfg,
	}
	if overrides != nil {
		req.MaxOutputTokens = overrides.MaxOutputTokens
		req.StopSequences = overrides.StopSequences
	}

	return c.generate(ctx, "prompt", req)
}

// RunGroundingSearch answers prompt with the search tool enabled. Sampling is
// left to the provider.
func (c *Client) RunGroundingSearch(ctx context.Context, prompt string) (*Response, error) {
	return c.generate(ctx, "grounding", Request{
		Model:     FixedDemoModel,
		Prompt:    prompt,
		Grounding: true,
	})
}

// RunStructuredOutput asks for JSON conforming to schema and reports whether the
// returned text actually validates. A failed validation is not an error.
func (c *Client) RunStructuredOutput(ctx context.Context, prompt string, schema map[string]any) (*StructuredResult, error) {
	resp, err := c.generate(ctx, "structured", Request{
		Model:            FixedDemoModel,
		Prompt:           prompt,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, err
	}

	violations := ValidateAgainstSchema(schema, resp.Text)
	return &StructuredResult{
		Text:       resp.Text,
		Valid:      len(violations) == 0,
		Violations: violations,
		Usage:      resp.Usage,
	}, nil
}

func (c *Client) generate(ctx context.Context, kind string, req Request) (*Response, error) {
	start := time.Now()
	resp, err := c.backend.Generate(ctx, req)
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GenerationRequests.WithLabelValues(kind, "error").Inc()
		c.log.Error("generation failed",
			zap.String("kind", kind),
			zap.String("model", req.Model),
			zap.Duration("latency", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.GenerationRequests.WithLabelValues(kind, "ok").Inc()
	c.log.Info("generation completed",
		zap.String("kind", kind),
		zap.String("model", req.Model),
		zap.Duration("latency", elapsed),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)
	return resp, nil
}
