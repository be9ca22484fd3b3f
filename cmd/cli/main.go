package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"creatorhub/cmd/cli/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command.Execute(ctx)
}
