package main

import (
	"context"
	"fmt"
	"os"

	"github.com/open-control-systems/monoclock/components/core"
)

func main() {
	if err := core.SetLogFile(os.Getenv("MONOCLOCK_LOG_PATH")); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to setup log file: ", err)
	}

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
