// sysdeck is a desktop telemetry dashboard.
//
// It samples CPU, memory, disk, GPU, network, and hardware inventory from
// the local machine and presents them through an interactive TUI, a
// one-shot text report, or an HTTP/WebSocket server with Prometheus
// metrics.
//
// Usage:
//
//	sysdeck [flags]
//
// Flags:
//
//	-tui              Launch the interactive TUI (the default mode)
//	-once             Print one snapshot and exit
//	-json             With -once, emit the snapshot as JSON
//	-serve            Run the HTTP/WebSocket server
//	-addr string      Listen address override for -serve
//	-config string    Path to configuration file (default: ~/.config/sysdeck/config.yaml)
//	-interval string  Poll interval override (e.g. 500ms, 2s)
//	-theme string     Theme override (dark|light)
//	-volume string    Volume override for disk reporting
//	-verbose          Enable debug logging to stderr
//	-version          Print version and exit
//
// With no mode flag the interactive TUI starts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysdeck/config"
	"gitlab.com/tinyland/lab/sysdeck/display/tui"
	buildinfo "gitlab.com/tinyland/lab/sysdeck/internal/version"
	"gitlab.com/tinyland/lab/sysdeck/launcher"
	"gitlab.com/tinyland/lab/sysdeck/probe"
	"gitlab.com/tinyland/lab/sysdeck/server"
	"gitlab.com/tinyland/lab/sysdeck/snapshot"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file (default: ~/.config/sysdeck/config.yaml)")
		runTUI       = flag.Bool("tui", false, "Launch the interactive TUI (the default mode)")
		runOnce      = flag.Bool("once", false, "Print one snapshot and exit")
		jsonOut      = flag.Bool("json", false, "With -once, emit the snapshot as JSON")
		runServe     = flag.Bool("serve", false, "Run the HTTP/WebSocket server")
		addrFlag     = flag.String("addr", "", "Listen address override for -serve")
		intervalFlag = flag.String("interval", "", "Poll interval override (e.g. 500ms, 2s)")
		themeFlag    = flag.String("theme", "", "Theme override (dark|light)")
		volumeFlag   = flag.String("volume", "", "Volume override for disk reporting")
		verbose      = flag.Bool("verbose", false, "Enable debug logging to stderr")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	buildinfo.Set(buildinfo.Info{Version: version, Commit: commit, BuildTime: date})
	if *showVersion {
		fmt.Printf("sysdeck %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags win over file settings.
	if *intervalFlag != "" {
		cfg.Poll.Interval = *intervalFlag
	}
	if *themeFlag != "" {
		cfg.Display.Theme = *themeFlag
	}
	if *volumeFlag != "" {
		cfg.Storage.Volume = *volumeFlag
	}
	if *addrFlag != "" {
		cfg.Serve.Addr = *addrFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(*verbose, *runServe)

	sys := probe.NewSystem(cfg.ProbeTimeout(), logger)
	assembler := snapshot.NewAssembler(sys, snapshot.Options{
		Volume:   cfg.Storage.Volume,
		CacheTTL: cfg.CacheTTL(),
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *runOnce && *runServe, *runOnce && *runTUI, *runServe && *runTUI:
		fmt.Fprintln(os.Stderr, "flags -tui, -once, and -serve are mutually exclusive")
		os.Exit(2)
	case *runOnce:
		os.Exit(runOnceMode(ctx, assembler, cfg, *jsonOut))
	case *runServe:
		os.Exit(runServeMode(ctx, assembler, cfg, logger))
	default:
		os.Exit(runTUIMode(assembler, cfg, logger))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadConfig(path)
}

// buildLogger returns a logger appropriate for the mode. The TUI owns the
// terminal, so logging is discarded there unless -verbose routes it to
// stderr, where bubbletea's alt screen hides it until exit.
func buildLogger(verbose, serve bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if !serve && !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runOnceMode(ctx context.Context, assembler *snapshot.Assembler, cfg *config.Config, asJSON bool) int {
	snap := assembler.Poll(ctx)

	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode snapshot: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Print(renderReport(snap, cfg))
	return 0
}

func runServeMode(ctx context.Context, assembler *snapshot.Assembler, cfg *config.Config, logger *slog.Logger) int {
	poller := server.NewPoller(assembler, cfg.PollInterval(), logger)
	srv := server.New(server.Options{
		Addr:     cfg.Serve.Addr,
		Interval: cfg.PollInterval(),
		Logger:   logger,
	}, poller, assembler)

	go func() {
		if err := poller.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("poller stopped", "err", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
			return 1
		}
		<-errCh
		return 0
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			return 1
		}
		return 0
	}
}

func runTUIMode(assembler *snapshot.Assembler, cfg *config.Config, logger *slog.Logger) int {
	defer func() {
		if r := recover(); r != nil {
			// Restore the terminal from the alt screen before printing.
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "sysdeck: TUI panic: %v\n", r)
			os.Exit(1)
		}
	}()

	model := tui.NewModel(tui.ModelOptions{
		Poller:   assembler,
		Launcher: launcher.New(cfg.Monitor.Candidates, logger),
		Interval: cfg.PollInterval(),
		Theme:    cfg.Display.Theme,
		WarnAt:   cfg.Display.WarnPercent,
		CritAt:   cfg.Display.CritPercent,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return 1
	}
	return 0
}
