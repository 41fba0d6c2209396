package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AGENTIUM_DOCS_"

// sections lists the top-level keys, used to turn AGENTIUM_DOCS_RATE_LIMIT_MAX
// into rate_limit.max.
var sections = []string{"server", "gateway", "rate_limit", "chat", "playground", "log", "render"}

// envAliases are short environment names kept for the chat client.
var envAliases = map[string]string{
	"public_key": "chat.public_key",
}

// envKey maps an environment variable name to a koanf key path.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if alias, ok := envAliases[key]; ok {
		return alias
	}
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return key
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AGENTIUM_DOCS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: AGENTIUM_DOCS_CHAT_URL -> chat.url, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogModes = map[LogMode]bool{
	LogDev:  true,
	LogProd: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must be non-negative")
	}

	if c.Gateway.URL == "" {
		return fmt.Errorf("gateway.url is required")
	}
	if c.Gateway.Model == "" {
		return fmt.Errorf("gateway.model is required")
	}
	if c.Gateway.RequestsPerMinute < 0 {
		return fmt.Errorf("gateway.requests_per_minute must be non-negative")
	}

	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("rate_limit.max must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}

	if c.Chat.URL == "" {
		return fmt.Errorf("chat.url is required")
	}
	if c.Chat.MaxBuffered < 0 {
		return fmt.Errorf("chat.max_buffered must be non-negative")
	}

	if c.Playground.LatencyMin < 0 || c.Playground.LatencyMax < c.Playground.LatencyMin {
		return fmt.Errorf("invalid playground latency range %s..%s", c.Playground.LatencyMin, c.Playground.LatencyMax)
	}

	if !validLogModes[c.Log.Mode] {
		return fmt.Errorf("invalid log.mode %q: must be one of dev, prod", c.Log.Mode)
	}

	return nil
}
