package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("lifestyle failed", "err", err)
		stop()
		os.Exit(1)
	}
}
