package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subdeck/subdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override subdeck config path (optional)")
	pageSize := flag.Int("page-size", 0, "subscriptions per page (optional, defaults to 50)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath}
	if size := *pageSize; size > 0 {
		opts.PageSize = size
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "subdeck: %v\n", err)
		return 1
	}
	return 0
}
