package config

import "time"

// LogMode selects the logger configuration.
type LogMode string

const (
	LogDev  LogMode = "dev"
	LogProd LogMode = "prod"
)

// Config is the top-level agentium-docs configuration, corresponding to
// .agentium-docs.yml.
type Config struct {
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	Gateway    GatewayConfig    `yaml:"gateway" koanf:"gateway"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" koanf:"rate_limit"`
	Chat       ChatConfig       `yaml:"chat" koanf:"chat"`
	Playground PlaygroundConfig `yaml:"playground" koanf:"playground"`
	Log        LogConfig        `yaml:"log" koanf:"log"`
	Render     RenderConfig     `yaml:"render" koanf:"render"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// GatewayConfig points the relay at the upstream LLM gateway.
type GatewayConfig struct {
	URL               string `yaml:"url" koanf:"url"`
	Model             string `yaml:"model" koanf:"model"`
	RequestsPerMinute int    `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// RateLimitConfig is the per-client allowance of the chat relay.
type RateLimitConfig struct {
	Max    int           `yaml:"max" koanf:"max"`
	Window time.Duration `yaml:"window" koanf:"window"`
}

// ChatConfig configures the chat client used by the ask command.
type ChatConfig struct {
	URL         string `yaml:"url" koanf:"url"`
	PublicKey   string `yaml:"public_key" koanf:"public_key"`
	MaxBuffered int    `yaml:"max_buffered" koanf:"max_buffered"`
}

// PlaygroundConfig bounds the simulated latency of the API playground mock.
type PlaygroundConfig struct {
	URL        string        `yaml:"url" koanf:"url"`
	LatencyMin time.Duration `yaml:"latency_min" koanf:"latency_min"`
	LatencyMax time.Duration `yaml:"latency_max" koanf:"latency_max"`
}

type LogConfig struct {
	Mode LogMode `yaml:"mode" koanf:"mode"`
}

type RenderConfig struct {
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
}
