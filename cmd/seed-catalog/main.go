// Command seed-catalog fills the catalog with generated demo data.
package main

import (
	"fmt"
	"os"

	"github.com/framecraft/storefront/internal/cli"
	"github.com/framecraft/storefront/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseSeedFlags()
	cfg := config.LoadOrEnv()

	if err := cli.RunSeed(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
