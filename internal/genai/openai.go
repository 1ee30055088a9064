package genai

import (
	"context"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ Backend = (*OpenAIBackend)(nil)

// OpenAIBackend serves requests through an OpenAI-compatible chat completions
// endpoint. topK has no counterpart there and is dropped; grounding is not
// available.
type OpenAIBackend struct {
	opts []option.RequestOption
}

func NewOpenAIBackend(baseURL, apiKey string, client *http.Client) *OpenAIBackend {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if client != nil {
		opts = append(opts, option.WithHTTPClient(client))
	}
	return &OpenAIBackend{opts: opts}
}

func (o *OpenAIBackend) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Grounding {
		return nil, ErrUnsupported
	}

	client := openai.NewClient(o.opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{}
	if req.SystemInstruction != "" {
		msgs = append(msgs, openai.SystemMessage(req.SystemInstruction))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.Config != nil {
		params.Temperature = openai.Float(req.Config.Temperature)
		params.TopP = openai.Float(req.Config.TopP)
	}
	if req.MaxOutputTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*req.MaxOutputTokens))
	}
	if len(req.StopSequences) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{OfStringArray: req.StopSequences}
	}
	if req.ResponseMIMEType == "application/json" {
		params.ResponseFormat = responseFormat(req.ResponseSchema)
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Usage: Usage{
			PromptTokens: int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

func responseFormat(schema map[string]any) openai.ChatCompletionNewParamsResponseFormatUnion {
	if len(schema) == 0 {
		return openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   "structured_output",
				Schema: normalizeSchema(schema),
			},
		},
	}
}
