package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("termlife", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath = flags.String("config", "", "path to a JSON config file")
		verbose    = flags.Bool("v", false, "log debug messages")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: termlife [-config file] [-v] [length width]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Only read a config file when asked for one
	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			logger.Error("failed to load config", "err", err)
			return exitError
		}
	}

	if err := utils.ParseDimensions(flags.Args(), &config); err != nil {
		return usageError(stderr, flags, err)
	}
	if err := config.Validate(); err != nil {
		if errors.Is(err, utils.ErrUsage) {
			return usageError(stderr, flags, err)
		}
		logger.Error("invalid config", "err", err)
		return exitError
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, stdout, logger); err != nil {
		logger.Error("game stopped", "err", err)
		return exitError
	}
	return exitOK
}

func usageError(stderr io.Writer, flags *flag.FlagSet, err error) int {
	fmt.Fprintln(stderr, err)
	flags.Usage()
	return exitUsage
}
