// Command api runs the storefront HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/framecraft/storefront/internal/cli"
	"github.com/framecraft/storefront/internal/infrastructure/config"
)

func main() {
	flags := cli.ParseServeFlags()
	cfg := config.LoadOrEnv()

	if err := cli.RunServe(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
