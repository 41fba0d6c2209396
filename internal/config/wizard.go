package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/semiotic-labs/agentium-docs/internal/llm"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to agentium-docs! Let's configure the docs server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Listen port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Gateway model",
		Default: cfg.Gateway.Model,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	if model = strings.TrimSpace(model); model != "" {
		cfg.Gateway.Model = model
	}

	// 3. Log mode.
	logPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"dev  - colored console output",
			"prod - JSON lines",
		},
	}
	idx, _, err := logPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log mode: %w", err)
	}
	cfg.Log.Mode = []LogMode{LogDev, LogProd}[idx]

	// 4. CORS.
	corsPrompt := promptui.Prompt{
		Label:     "Allow all CORS origins",
		IsConfirm: true,
	}
	if _, err := corsPrompt.Run(); err == nil {
		cfg.Server.AllowAllOrigins = true
	}

	if os.Getenv(llm.GatewayKeyEnvVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running agentium-docs serve.\n", llm.GatewayKeyEnvVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
