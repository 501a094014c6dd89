// migrate runs DB migrations from embedded SQL; use go run ./cmd/migrate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bhardwajRahul/defguard/internal/config"
	"github.com/bhardwajRahul/defguard/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := migrate.Run(cfg.DatabaseURL, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
