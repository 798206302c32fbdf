package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zerolag/zerolag/cmd/zerolag/tui"
	"github.com/zerolag/zerolag/pkg/zerolag/collector"
	"github.com/zerolag/zerolag/pkg/zerolag/config"
	"github.com/zerolag/zerolag/pkg/zerolag/logging"
	"github.com/zerolag/zerolag/pkg/zerolag/report"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// runScan is the main command handler.
func runScan(_ *cobra.Command, _ []string) error {
	mode, err := types.ParseMode(viper.GetString("mode"))
	if err != nil {
		return fmt.Errorf("invalid mode %q: use general or gaming", viper.GetString("mode"))
	}

	outDir, err := config.ExpandPath(viper.GetString("output_dir"))
	if err != nil {
		return fmt.Errorf("failed to expand output directory: %w", err)
	}
	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	collectorOpts := collector.Options{
		CPUSample:    time.Duration(viper.GetInt("collector.cpu_sample_ms")) * time.Millisecond,
		TopProcesses: viper.GetInt("collector.top_processes"),
	}

	if viper.GetBool("no_interactive") {
		return runNonInteractiveScan(mode, outDir, collectorOpts)
	}

	if err := initLogging(true); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	return tui.Run(tui.Options{
		Mode:      mode,
		OutputDir: outDir,
		Collector: collectorOpts,
	})
}

// runNonInteractiveScan collects, scores and writes the report files,
// then prints a styled summary.
func runNonInteractiveScan(mode types.Mode, outDir string, opts collector.Options) error {
	if err := initLogging(false); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		printInfo("\nInterrupted, stopping scan...")
		cancel()
	}()

	printInfo("Scanning host (%s mode)...", mode)

	snap := collector.New(opts).Collect(ctx)
	if ctx.Err() != nil {
		printInfo("Scan cancelled")
		return nil
	}

	profile := scoring.ProfileFor(mode)
	result := scoring.Score(snap, profile)
	recs := scoring.Recommend(snap, profile)

	doc := report.New(snap, result, recs)
	paths, err := report.WriteFiles(outDir, doc)
	if err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	if !getQuiet() {
		fmt.Print(renderSummary(doc))
	}
	printInfo("")
	for _, path := range paths {
		printInfo("  %s", path)
	}
	return nil
}
