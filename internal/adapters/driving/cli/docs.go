package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Browse the bundled reference documents",
	Long: `Lists and prints the bundled reference documents: overviews of
the JSFX, ReaScript and ReaWrap APIs plus a getting-started guide.`,
	RunE: runDocsList,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available documents",
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Print a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if referenceService == nil {
		return errors.New("reference service not configured")
	}

	ctx := context.Background()
	docs, err := referenceService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents available.")
		return nil
	}

	cmd.Println("Available documents:")
	cmd.Println()
	for _, doc := range docs {
		cmd.Printf("  %-20s %s\n", doc.ID, doc.Title)
		if doc.Description != "" {
			cmd.Printf("  %-20s %s\n", "", doc.Description)
		}
	}
	cmd.Println()
	cmd.Println("Use 'readocs docs show [doc-id]' to print one.")

	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	if referenceService == nil {
		return errors.New("reference service not configured")
	}

	ctx := context.Background()
	data, err := referenceService.Read(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown document %q, try 'readocs docs list'", args[0])
		}
		return fmt.Errorf("failed to read document: %w", err)
	}

	cmd.Print(string(data))
	return nil
}
