package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkalstad/pulse/internal/input"
	"github.com/mkalstad/pulse/internal/metrics"
	"github.com/mkalstad/pulse/internal/nav"
	"github.com/mkalstad/pulse/internal/tui"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	fs := flag.NewFlagSet("pulse", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default: $XDG_CONFIG_HOME/pulse/config.toml)")
	logPath := fs.String("log", "", "write debug logs to this file")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println("pulse " + version)
		return
	}

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "pulse: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	if configPath == "" {
		configPath = tui.DefaultConfigPath()
	}
	cfg, err := tui.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Stdout belongs to the dashboard, so logs go to a file or nowhere.
	logW := io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logW = f
	}
	log := slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(log)

	term, err := input.OpenTerminal()
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Restore(); err != nil {
			log.Error("restore terminal", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := metrics.NewStore()
	collector := metrics.NewCollector(cfg.Sample.ProcRoot, cfg.Sample.SysRoot, cfg.Sample.BatteryMAh)
	sampler := metrics.NewSampler(collector, store, cfg.Sample.Interval.Duration, cfg.Sample.StoragePath)

	samplerDone := make(chan struct{})
	go func() {
		defer close(samplerDone)
		sampler.Run(ctx)
	}()

	dec := input.NewDecoder(input.StartReader(os.Stdin))
	_, height := term.Size()
	st := nav.NewState(cfg.Display.BrowserStart, tui.PageSize(height))

	app := tui.NewApp(store, dec, st, term, os.Stdout, tui.BuildTheme(cfg.Theme),
		cfg.Display.RenderInterval.Duration, log)

	log.Info("starting", "version", version, "sample_interval", cfg.Sample.Interval.Duration)
	runErr := app.Run(ctx)

	// Quit keys end the app without touching the context; cancel and
	// join so the sampler logs its shutdown before we return.
	cancel()
	<-samplerDone

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
