package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var _ Backend = (*GeminiBackend)(nil)

// GeminiBackend talks to the Gemini REST API.
type GeminiBackend struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGeminiBackend expects baseURL like "https://generativelanguage.googleapis.com"
// (no trailing slash). The key is not checked here; a missing key surfaces as a
// provider error on the first call.
func NewGeminiBackend(baseURL, apiKey string, client *http.Client) *GeminiBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// --- request types ---

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      *float64       `json:"temperature,omitempty"`
	TopP             *float64       `json:"topP,omitempty"`
	TopK             *int           `json:"topK,omitempty"`
	MaxOutputTokens  *int           `json:"maxOutputTokens,omitempty"`
	StopSequences    []string       `json:"stopSequences,omitempty"`
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

func (g geminiGenerationConfig) hasValues() bool {
	return g.Temperature != nil || g.TopP != nil || g.TopK != nil || g.MaxOutputTokens != nil ||
		len(g.StopSequences) > 0 || g.ResponseMIMEType != "" || g.ResponseSchema != nil
}

// --- response types ---

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

type geminiCandidate struct {
	Content           geminiContent `json:"content"`
	FinishReason      string        `json:"finishReason"`
	GroundingMetadata *struct {
		GroundingChunks []struct {
			Web *struct {
				URI   string `json:"uri"`
				Title string `json:"title"`
			} `json:"web"`
		} `json:"groundingChunks"`
	} `json:"groundingMetadata"`
}

func (g *GeminiBackend) Generate(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(buildGeminiRequest(req))
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return parseGeminiResponse(parsed), nil
}

func buildGeminiRequest(req Request) geminiRequest {
	out := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Prompt}},
		}},
	}

	gen := geminiGenerationConfig{
		MaxOutputTokens:  req.MaxOutputTokens,
		StopSequences:    req.StopSequences,
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   req.ResponseSchema,
	}
	if req.Config != nil {
		gen.Temperature = &req.Config.Temperature
		gen.TopP = &req.Config.TopP
		gen.TopK = &req.Config.TopK
	}
	if gen.hasValues() {
		out.GenerationConfig = &gen
	}

	if req.SystemInstruction != "" {
		out.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}
	if req.Grounding {
		out.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}
	return out
}

// parseGeminiResponse joins the text parts of the first candidate. A response
// without candidates yields empty text rather than an error.
func parseGeminiResponse(parsed geminiResponse) *Response {
	resp := &Response{
		Usage: Usage{
			PromptTokens: parsed.UsageMetadata.PromptTokenCount,
			OutputTokens: parsed.UsageMetadata.CandidatesTokenCount,
		},
	}
	if len(parsed.Candidates) == 0 {
		return resp
	}

	cand := parsed.Candidates[0]
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}
	resp.Text = b.String()

	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			resp.Sources = append(resp.Sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
		}
	}
	return resp
}
