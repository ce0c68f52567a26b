package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reaper-tools/readocs/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change readocs settings.

Known keys:
  data.dir      - directory holding the corpus JSON files
  docs.dir      - directory holding the reference documents
  search.limit  - default search result cap`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	cmd.Printf("  %-14s %s\n", file.KeyDataDir, displayValue(configStore.GetString(file.KeyDataDir)))
	cmd.Printf("  %-14s %s\n", file.KeyDocsDir, displayValue(configStore.GetString(file.KeyDocsDir)))

	limit := configStore.GetInt(file.KeySearchLimit)
	if limit > 0 {
		cmd.Printf("  %-14s %d\n", file.KeySearchLimit, limit)
	} else {
		cmd.Printf("  %-14s (default)\n", file.KeySearchLimit)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	switch key {
	case file.KeySearchLimit:
		cmd.Printf("%d\n", configStore.GetInt(key))
	default:
		cmd.Printf("%s\n", configStore.GetString(key))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	var value any = raw
	if key == file.KeySearchLimit {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid value %q for %s: expected a positive integer", raw, key)
		}
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func displayValue(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
