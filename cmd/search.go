package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation catalog",
	Long: `Searches the documentation catalog for the query as a literal,
case-insensitive substring and prints the ranked results. With -i, results
are shown in an interactive picker; without a query, one is prompted for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolP("interactive", "i", false, "pick a result interactively")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().StringSlice("section", nil, "only show results from sections matching these globs (e.g. api-*)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	sections, _ := cmd.Flags().GetStringSlice("section")

	idx := search.MustDefault()

	var query string
	if len(args) == 1 {
		query = args[0]
	} else if !interactive {
		return errors.New("a query is required unless --interactive is set")
	}

	if interactive {
		return searchInteractive(idx, query, sections)
	}

	results, err := search.FilterSections(idx.Search(query), sections...)
	if err != nil {
		return err
	}
	if jsonOutput {
		if results == nil {
			results = []search.SearchEntry{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}
	for i, e := range results {
		fmt.Printf("%d. %s  [%s] %s\n", i+1, e.Title, e.Type, e.Section)
		fmt.Printf("   %s\n", e.Preview)
		fmt.Printf("   #%s\n", e.SectionID)
	}
	return nil
}

func searchInteractive(idx *search.Index, query string, sections []string) error {
	for {
		if query == "" {
			prompt := promptui.Prompt{Label: "Search docs"}
			q, err := prompt.Run()
			if err != nil {
				return nil // Ctrl+C / Ctrl+D
			}
			query = q
			if query == "" {
				continue
			}
		}

		results, err := search.FilterSections(idx.Search(query), sections...)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No results for %q\n", query)
			query = ""
			continue
		}

		sel := promptui.Select{
			Label: fmt.Sprintf("Results for %q", query),
			Items: results,
			Size:  search.MaxResults,
			Templates: &promptui.SelectTemplates{
				Active:   "▸ {{ .Title | cyan }} {{ .Section | faint }}",
				Inactive: "  {{ .Title }} {{ .Section | faint }}",
				Selected: "{{ .Title | green }}",
				Details:  "{{ .Preview }}",
			},
			Searcher: func(input string, i int) bool {
				return strings.Contains(strings.ToLower(results[i].Title), strings.ToLower(input))
			},
		}
		i, _, err := sel.Run()
		if err != nil {
			// Escape closes the list; start over with a new query.
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			query = ""
			continue
		}

		e := results[i]
		fmt.Printf("\n%s (%s)\n%s\n\nSection: %s  #%s\n", e.Title, e.Type, e.Preview, e.Section, e.SectionID)
		return nil
	}
}
