package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reoring/streamconv/internal/cli"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root := cli.NewRootCmd(version, buildDate)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
