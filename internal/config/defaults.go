package config

import "time"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".agentium-docs.yml"

const (
	defaultGatewayURL = "https://ai.gateway.lovable.dev/v1"
	defaultModel      = "google/gemini-3-flash-preview"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			RequestTimeout: 60 * time.Second,
		},
		Gateway: GatewayConfig{
			URL:   defaultGatewayURL,
			Model: defaultModel,
		},
		RateLimit: RateLimitConfig{
			Max:    20,
			Window: time.Hour,
		},
		Chat: ChatConfig{
			URL:         "http://localhost:8080/functions/v1/docs-ai-chat",
			MaxBuffered: 1 << 20,
		},
		Playground: PlaygroundConfig{
			URL:        "http://localhost:8080/functions/v1/agentium-api-proxy",
			LatencyMin: 50 * time.Millisecond,
			LatencyMax: 150 * time.Millisecond,
		},
		Log: LogConfig{
			Mode: LogDev,
		},
		Render: RenderConfig{
			HighlightStyle: "github",
		},
	}
}
