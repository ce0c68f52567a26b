package main

import (
	"fmt"
	"os"
	"path/filepath"

	configfile "github.com/reaper-tools/readocs/internal/adapters/driven/config/file"
	storagefile "github.com/reaper-tools/readocs/internal/adapters/driven/storage/file"
	"github.com/reaper-tools/readocs/internal/adapters/driving/cli"
	"github.com/reaper-tools/readocs/internal/core/services"
)

// version is set at build time via:
//
//	go build -ldflags "-X main.version=x.y.z"
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	dataDir := configStore.GetString(configfile.KeyDataDir)
	if dataDir == "" {
		dataDir = defaultDir("data")
	}
	docsDir := configStore.GetString(configfile.KeyDocsDir)
	if docsDir == "" {
		docsDir = defaultDir("docs")
	}

	corpusStore := storagefile.NewCorpusStore(dataDir)
	referenceStore := storagefile.NewReferenceStore(docsDir)

	queryService := services.NewQueryService(
		services.NewLookupService(corpusStore),
		services.NewSearchService(corpusStore),
	)

	cli.Configure(&cli.Config{
		Query:     queryService,
		Reference: services.NewReferenceService(referenceStore),
		Corpus:    corpusStore,
		Store:     configStore,
		Version:   version,
	})

	return cli.Execute()
}

// defaultDir resolves a bundled data directory: next to the executable
// when installed from a release archive, under ~/.readocs otherwise.
func defaultDir(name string) string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".readocs", name)
}
