package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reaper-tools/readocs/internal/adapters/driven/config/file"
	"github.com/reaper-tools/readocs/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [api] [query]",
	Short: "Search a reference corpus by substring",
	Long: `Searches one of the reference corpora with a case-insensitive
substring match against names, descriptions and grouping fields.
Results keep the corpus order.

The api argument is one of: jsfx, reascript, reawrap.

  readocs search jsfx convolution
  readocs search reascript track -n 25
  readocs search reawrap fx --json`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	// The configured default applies only when the flag is untouched.
	limit := searchLimit
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if v := configStore.GetInt(file.KeySearchLimit); v > 0 {
			limit = v
		}
	}

	ctx := context.Background()
	res, err := queryService.Query(ctx, domain.QueryRequest{
		Corpus:    domain.Corpus(args[0]),
		Operation: domain.OpSearch,
		Query:     args[1],
		Limit:     limit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, res.Records)
	}

	return outputSearchTable(cmd, res.Records)
}

func outputSearchJSON(cmd *cobra.Command, records []any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, records []any) error {
	if len(records) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, rec := range records {
		name, detail := summarizeRecord(rec)
		cmd.Printf("  [%d] %s\n", i+1, name)
		if detail != "" {
			cmd.Printf("      %s\n", truncate(detail, 100))
		}
	}
	cmd.Println()
	cmd.Printf("Total: %d results\n", len(records))

	return nil
}

// summarizeRecord produces the one-line name and detail for a search
// hit, whichever corpus it came from.
func summarizeRecord(rec any) (name, detail string) {
	switch r := rec.(type) {
	case domain.JSFXFunction:
		detail = r.Description
		if r.Category != "" {
			detail = r.Category + ": " + detail
		}
		return r.Name, detail
	case domain.ReaScriptFunction:
		return r.Name, r.Description
	case domain.MethodMatch:
		return r.Class + "." + r.Name, r.Method.Description
	default:
		return fmt.Sprintf("%v", rec), ""
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
