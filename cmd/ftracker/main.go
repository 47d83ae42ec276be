package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/claude/ftracker/internal/config"
	"github.com/claude/ftracker/internal/ingest"
	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "", "path to a package file, - for stdin (default: built-in reference batch)")
	inputFormat := flag.String("input-format", "", "input format: text or yaml (default: from config or file extension)")
	outputFormat := flag.String("format", "", "output format: text or json (default: from config)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println("ftracker", Version)
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *inputFormat != "" {
		cfg.Input.Format = *inputFormat
	}
	if *outputFormat != "" {
		cfg.Output.Format = *outputFormat
	}
	if f := cfg.Output.Format; f != ingest.OutputText && f != ingest.OutputJSON {
		fmt.Fprintf(os.Stderr, "unknown output format %q\n", f)
		os.Exit(1)
	}

	// Summaries go to stdout, logs to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	packages, err := readPackages(*inputPath, cfg.Input.Format)
	if err != nil {
		log.Error("failed to read packages", "input", *inputPath, "error", err)
		os.Exit(1)
	}
	log.Debug("packages loaded", "count", len(packages))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := ingest.NewProvider(cfg.Output.Format, log)
	if _, err := provider.Ingest(ctx, packages, os.Stdout); err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
}

func readPackages(path, format string) ([]models.Package, error) {
	switch path {
	case "":
		return ingest.DefaultPackages(), nil
	case "-":
		return ingest.Parse(os.Stdin, format)
	default:
		return ingest.ParseFile(path, format)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ftracker [-config config.yaml] [-input packages.txt|packages.yaml|-] [-format text|json]\n\n")
	fmt.Fprintf(os.Stderr, "Workout types:\n")
	for _, k := range training.Catalog() {
		fmt.Fprintf(os.Stderr, "  %s  %-14s %s\n", k.Code, k.Name, strings.Join(k.Fields, ";"))
	}
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
