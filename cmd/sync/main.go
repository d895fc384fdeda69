package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"leave-calendar-sync/config"
	"leave-calendar-sync/internal/app"
	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/pkg/log"
)

// main runs a single sync pass and prints the report.
//
// Usage:
//
//	go run ./cmd/sync                     # fetch the recent Slack window
//	go run ./cmd/sync -text "Kim - ..."   # reconcile inline text instead
//	go run ./cmd/sync -format json
func main() {
	format := flag.String("format", "yaml", "report format: yaml or json")
	text := flag.String("text", "", "process this text instead of fetching Slack history")
	flag.Parse()

	if *format != "yaml" && *format != "json" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration: ", err)
		os.Exit(1)
	}

	// Logs go to stderr through zap; stdout carries only the report.
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	leaveApp, err := app.NewLeave(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize leave domain: ", err)
		os.Exit(1)
	}

	var report leave.SyncReport
	if *text != "" {
		report = leaveApp.UseCase.ProcessText(ctx, *text)
	} else {
		report = leaveApp.UseCase.RunOnce(ctx)
	}

	if err := writeReport(os.Stdout, *format, report); err != nil {
		logger.Error(ctx, "Failed to write report: ", err)
		os.Exit(1)
	}
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}

func writeReport(w io.Writer, format string, report leave.SyncReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
