package llm

import (
	"fmt"
	"os"
)

// GatewayKeyEnvVar holds the API key for the LLM gateway.
const GatewayKeyEnvVar = "LLM_GATEWAY_API_KEY"

// ErrNoGatewayKey is returned when the gateway key is not configured.
var ErrNoGatewayKey = fmt.Errorf("%s environment variable is not set", GatewayKeyEnvVar)

// NewProvider creates the gateway provider from the environment, wrapped in
// a rate limiter when rpm is positive.
func NewProvider(baseURL, model string, rpm int) (Provider, error) {
	apiKey := os.Getenv(GatewayKeyEnvVar)
	if apiKey == "" {
		return nil, ErrNoGatewayKey
	}
	return NewRateLimitedProvider(NewGatewayProvider(apiKey, baseURL, model), rpm), nil
}
