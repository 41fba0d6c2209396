package llm

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultGatewayURL is the OpenAI-compatible LLM gateway the docs assistant
// uses unless configured otherwise.
const DefaultGatewayURL = "https://ai.gateway.lovable.dev/v1"

// GatewayProvider implements Provider against an OpenAI-compatible chat
// completions gateway.
type GatewayProvider struct {
	client *openai.Client
	model  string
}

// NewGatewayProvider creates a provider for the gateway at baseURL.
func NewGatewayProvider(apiKey, baseURL, model string) *GatewayProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}
	cfg.BaseURL = baseURL
	return &GatewayProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *GatewayProvider) Name() string {
	return "gateway"
}

func (p *GatewayProvider) request(req CompletionRequest) openai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
}

func (p *GatewayProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, p.request(req))
	if err != nil {
		return nil, wrapGatewayError(err)
	}

	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
		FinishReason: finishReason,
	}, nil
}

func (p *GatewayProvider) Stream(ctx context.Context, req CompletionRequest) (ChunkStream, error) {
	apiReq := p.request(req)
	apiReq.Stream = true

	stream, err := p.client.CreateChatCompletionStream(ctx, apiReq)
	if err != nil {
		return nil, wrapGatewayError(err)
	}
	return &gatewayStream{stream: stream}, nil
}

type gatewayStream struct {
	stream *openai.ChatCompletionStream
}

func (s *gatewayStream) Recv() (StreamChunk, error) {
	resp, err := s.stream.Recv()
	if errors.Is(err, io.EOF) {
		return StreamChunk{}, io.EOF
	}
	if err != nil {
		return StreamChunk{}, wrapGatewayError(err)
	}

	var chunk StreamChunk
	if len(resp.Choices) > 0 {
		chunk.Content = resp.Choices[0].Delta.Content
		chunk.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return chunk, nil
}

func (s *gatewayStream) Close() error {
	return s.stream.Close()
}

// wrapGatewayError converts go-openai HTTP errors into *APIError so callers
// can branch on the status code.
func wrapGatewayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &APIError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error(), Err: err}
	}
	return err
}
