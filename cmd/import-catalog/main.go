// Command import-catalog imports a supplier feed into the store catalog.
package main

import (
	"fmt"
	"os"

	"github.com/framecraft/storefront/internal/cli"
	"github.com/framecraft/storefront/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseImportFlags()
	cfg := config.LoadOrEnv()

	if err := cli.RunImport(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
