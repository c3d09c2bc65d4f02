package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/framecraft/storefront/internal/adapters/catalogfeed"
	"github.com/framecraft/storefront/internal/infrastructure/config"
	"github.com/framecraft/storefront/internal/infrastructure/logging"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// ImportFlags holds the CLI flags for the import-catalog command.
type ImportFlags struct {
	FeedPath string
	Verbose  bool
}

// ParseImportFlags parses command line flags for the import-catalog command.
func ParseImportFlags() *ImportFlags {
	flags := &ImportFlags{}
	flag.StringVar(&flags.FeedPath, "feed", "", "Path to the supplier feed JSON file")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// RunImport imports a supplier catalog feed into the store catalog.
func RunImport(cfg *config.Config, flags *ImportFlags) error {
	if flags.FeedPath == "" {
		return fmt.Errorf("missing -feed flag")
	}

	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "import")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	feedFile, err := os.Open(flags.FeedPath)
	if err != nil {
		return fmt.Errorf("failed to open feed: %w", err)
	}
	defer feedFile.Close()

	importer := catalogfeed.NewImporter(store, logger)
	result, err := importer.Import(feedFile)
	if err != nil {
		return err
	}

	PrintImportSummary(result)
	PrintCatalogSummary(store)
	return nil
}
