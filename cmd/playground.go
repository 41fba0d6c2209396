package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/playground"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground [method] [key=value...]",
	Short: "Call an SDK method through the API playground proxy",
	Long: `Calls one of the playground methods (e.g. validate-caip2 chainId=eip155:84532)
against the playground proxy and prints the mock response. Without a method,
lists the available methods.`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listPlaygroundMethods()
	}

	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := playground.NewClient(cfg.Playground.URL, nil)
	res, err := client.Call(context.Background(), args[0], params)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, res.Response, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	label := "live"
	if res.Mock {
		label = "mock"
	}
	fmt.Printf("%d (%s)\n%s\n", res.StatusCode, label, out.String())
	return nil
}

func listPlaygroundMethods() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tCATEGORY\tPARAMETERS")
	for _, m := range playground.Methods {
		var ps []string
		for _, p := range m.Params {
			name := p.Name
			if p.Required {
				name += "*"
			}
			ps = append(ps, name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Category, strings.Join(ps, " "))
	}
	return w.Flush()
}

// parseParams turns key=value arguments into a parameter map.
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", a)
		}
		params[k] = v
	}
	return params, nil
}
