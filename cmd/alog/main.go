package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	errs "github.com/amirhossein-jamali/async-logger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/async-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/async-logger/internal/domain/usecase/journal"
	"github.com/amirhossein-jamali/async-logger/internal/infrastructure/adapter/cli"
	"github.com/amirhossein-jamali/async-logger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/async-logger/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/async-logger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/async-logger/internal/infrastructure/config"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive))
}

// run wires the application and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return errs.ExitCode(err)
	}

	if err := config.ApplyArgs(cfg, args); err != nil {
		fmt.Fprintln(stderr, config.Usage)
		return errs.ExitCode(err)
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "Configuration validation failed: %v\n", err)
		return errs.ExitCode(err)
	}

	// Create diagnostics logger
	diag, err := newDiagnostics(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize diagnostics: %v\n", err)
		return errs.ExitCodeFailure
	}
	defer diag.Flush()

	tp := timeProvider.NewRealTimeProvider()

	// Open the sink; without it there is nothing to do
	journalLogger, err := journal.NewLogger(sink.NewFileOpener(), cfg.Sink.Path, cfg.Threshold(), tp, diag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errs.ExitCode(err)
	}

	service := journal.NewService(journalLogger, tp, diag)

	shell := cli.NewShell(service, stdin, stdout, cli.Options{
		Prompt:      cfg.Shell.Prompt,
		Interactive: interactive,
	}, diag)

	if cfg.Shell.Banner {
		shell.PrintBanner(journalLogger.Path(), journalLogger.Threshold())
	}

	// SIGINT and SIGTERM end the shell the same way "exit" does
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := errs.ExitCodeOK
	if err := shell.Run(ctx); err != nil {
		diag.Error("Shell stopped on input error", map[string]any{
			"error": err.Error(),
		})
		exitCode = errs.ExitCodeFailure
	}

	// Drain the queue before closing the sink
	service.Shutdown()
	diag.Info("Journal drained", map[string]any{
		"path":      journalLogger.Path(),
		"processed": service.Processed(),
	})

	if err := journalLogger.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		exitCode = errs.ExitCode(err)
	}

	return exitCode
}

// newDiagnostics builds the stderr error channel from configuration
func newDiagnostics(cfg *config.Config) (coreport.Logger, error) {
	if cfg.Diagnostics.Quiet {
		return logger.NewNoopLogger(), nil
	}

	zapLogger, err := logger.NewZapLoggerFromOptions(logger.Options{
		Production: cfg.IsProduction(),
		Format:     cfg.Diagnostics.Format,
		Level:      coreport.ParseLogLevel(cfg.Diagnostics.Level),
	})
	if err != nil {
		return nil, err
	}
	return zapLogger, nil
}
