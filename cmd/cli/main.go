package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/metric-atlas/pkg/runtime/terminal"
	"github.com/de-tools/metric-atlas/pkg/services/catalog"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if os.Getenv("METRIC_ATLAS_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}
	ctx := logger.WithContext(context.Background())

	cat, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid metric catalog: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Catalog: cat,
		Output:  os.Stdout,
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
