package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinytelemetry/clover/internal/analyzer"
	"github.com/tinytelemetry/clover/internal/export"
	"github.com/tinytelemetry/clover/internal/httpserver"
	"github.com/tinytelemetry/clover/internal/logparse"
	"github.com/tinytelemetry/clover/internal/logsource"
	"github.com/tinytelemetry/clover/internal/model"
	"github.com/tinytelemetry/clover/internal/ui"
	"golang.org/x/sync/errgroup"
)

// runAnalysis executes one full run: acquire lines, parse, aggregate,
// write artifacts, and optionally serve the finished report.
func runAnalysis(cfg appConfig) error {
	src, label, err := pickSource(cfg)
	if err != nil {
		return err
	}

	lines, err := src.Lines()
	if err != nil {
		// SourceUnavailable: the one fatal condition of a run.
		return err
	}

	records, malformed := logparse.ParseLines(lines)
	rep := analyzer.Aggregate(records, malformed)

	if err := writeArtifacts(cfg, rep, label); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Println(ui.Summary(rep, label))
	}

	if cfg.Serve {
		return serveReport(cfg, rep, label)
	}
	return nil
}

// pickSource selects the input source: an explicit file path wins,
// otherwise piped stdin.
func pickSource(cfg appConfig) (logsource.Source, string, error) {
	if cfg.LogFile != "" {
		src := logsource.NewFileSource(cfg.LogFile)
		return src, cfg.LogFile, nil
	}

	stdin := logsource.NewStdinSource()
	if stdin.Available() {
		return stdin, "stdin", nil
	}
	return nil, "", fmt.Errorf("no input: pass a log file path or pipe data on stdin")
}

func writeArtifacts(cfg appConfig, rep model.Report, label string) error {
	writer := export.NewWriter()

	if err := writer.WriteText(rep, label, cfg.TextOutput); err != nil {
		return err
	}
	if err := writer.WriteJSON(rep, cfg.JSONOutput); err != nil {
		return err
	}
	if cfg.CSVOutput != "" {
		if err := writer.WriteRankingsCSV(rep, cfg.CSVOutput); err != nil {
			return err
		}
	}
	return nil
}

// serveReport exposes the finished report over HTTP until SIGINT/SIGTERM.
func serveReport(cfg appConfig, rep model.Report, label string) error {
	api := httpserver.NewServer(cfg.APIAddr, rep, label)
	if err := api.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	defer api.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log.Printf("server: report API listening on %s", cfg.APIAddr)
	fmt.Printf("Report API on http://%s (Ctrl+C to stop)\n", cfg.APIAddr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down.")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})
	return g.Wait()
}
