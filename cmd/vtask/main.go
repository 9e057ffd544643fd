// Package main is the entry point for the vtask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vtask/internal/cli"
	"vtask/internal/commands"
	"vtask/internal/config"
	"vtask/internal/translator"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create translator factory
	factory := func(ctx context.Context, cfg *config.Config) (translator.Translator, error) {
		return translator.NewOpenAI(ctx, cfg)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
