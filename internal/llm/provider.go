package llm

import "context"

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Stream sends a completion request and returns the reply as it is
	// generated.
	Stream(ctx context.Context, req CompletionRequest) (ChunkStream, error)
	// Name returns the name of this provider.
	Name() string
}

// ChunkStream yields the chunks of a streamed completion.
type ChunkStream interface {
	// Recv returns the next chunk, or io.EOF when the completion is done.
	Recv() (StreamChunk, error)
	Close() error
}
