package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pcqueue/pkg/logger"
	"github.com/huynhanx03/go-pcqueue/pkg/office"
	"github.com/huynhanx03/go-pcqueue/pkg/settings"
	"github.com/huynhanx03/go-pcqueue/pkg/timer"
	"github.com/huynhanx03/go-pcqueue/pkg/unique"
)

const usage = `office emulates an office: clerks file documents into a bounded
queue and scanners print them.

CONFIG_FILE lines:
  nClerk   = X   number of clerks
  nDoc     = X   documents per clerk
  tClerk   = X   clerk delay before each document
  nScanner = X   number of scanners
  tScanner = X   scanner time per document
  sQueue   = X   queue capacity

Optional: timeUnit = s|ms, drain = true|false, logger.*, document.*`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "office CONFIG_FILE",
		Short:        "Run the clerk/scanner office simulation",
		Long:         usage,
		Args:         configArg,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, args[0])
		},
	}
}

// configArg requires exactly one CONFIG_FILE and prints the config format
// when it is missing.
func configArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrong number of arguments!\n\n%s\n\n", usage)
		return err
	}
	return nil
}

func run(ctx context.Context, path string) error {
	cfg, err := settings.Load(path)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	clock := timer.NewCachedTimer(timer.DefaultStep)
	defer clock.Stop()

	ids, err := unique.NewSnowflakeNode(cfg.Document, clock)
	if err != nil {
		return err
	}

	report, err := office.New(cfg.Office, ids, log).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Warn("office interrupted")
		return err
	}
	if err != nil {
		log.Error("office failed", zap.Error(err))
		return err
	}

	log.Info("office closed",
		zap.Ints("filed", report.Filed),
		zap.Int64s("scanned", report.Scanned),
		zap.Int("interrupted", report.Interrupted),
		zap.Int("pending", report.Pending),
	)
	fmt.Fprintf(os.Stdout, "filed %v, scanned %v, interrupted %d, pending %d\n",
		report.Filed, report.Scanned, report.Interrupted, report.Pending)
	return nil
}
