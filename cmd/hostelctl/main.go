package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hostelhub/cmd/hostelctl/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command.Execute(ctx)
}
