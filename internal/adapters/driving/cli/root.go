// Package cli implements the readocs command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/reaper-tools/readocs/internal/core/ports/driven"
	"github.com/reaper-tools/readocs/internal/core/ports/driving"
	"github.com/reaper-tools/readocs/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Wired once at startup via Configure.
var (
	queryService     driving.QueryService
	referenceService driving.ReferenceService
	corpusStore      driven.CorpusStore
	configStore      driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "readocs",
	Short: "REAPER scripting reference from the command line",
	Long: `readocs is a lookup and search tool for the REAPER scripting
reference corpora:

  jsfx      - JSFX audio-scripting functions
  reascript - the ReaScript API
  reawrap   - the ReaWrap class wrapper API

Use 'lookup' for exact name resolution, 'search' for substring
search, and 'docs' for the bundled reference documents.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Config holds the services the commands depend on.
type Config struct {
	Query     driving.QueryService
	Reference driving.ReferenceService
	Corpus    driven.CorpusStore
	Store     driven.ConfigStore
	Version   string
}

// Configure wires the services into the command tree. Must be called
// before Execute.
func Configure(cfg *Config) {
	queryService = cfg.Query
	referenceService = cfg.Reference
	corpusStore = cfg.Corpus
	configStore = cfg.Store
	if cfg.Version != "" {
		version = cfg.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
