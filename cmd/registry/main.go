package main

import (
	"context"
	"fmt"
	"os"

	"animal-registry/internal/cli"
)

// Inyectado vía ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	v := fmt.Sprintf("%s (commit: %s)", version, commit)
	if err := cli.Execute(context.Background(), v); err != nil {
		os.Exit(1)
	}
}
