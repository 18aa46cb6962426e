// cmd/scrape/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/scrape/internal/cli"
)

func main() {
	// An interrupt cancels the context so multi-page runs stop between pages
	// and still export what they collected.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
