// Package launcher starts an external system monitor on request from the
// dashboard. Candidates are probed in order on PATH and the first hit is
// started detached, so the dashboard keeps running.
package launcher

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultCandidates is the probe order when no candidates are configured.
// GUI monitors come first so launching from a terminal dashboard opens a
// separate window instead of fighting over the same tty.
var DefaultCandidates = []string{
	"gnome-system-monitor",
	"plasma-systemmonitor",
	"ksysguard",
	"xfce4-taskmanager",
	"mate-system-monitor",
}

// Result reports the outcome of a launch attempt.
type Result struct {
	// Launched is true when a candidate was found and started.
	Launched bool

	// Tool is the candidate that was started, empty when none was found.
	Tool string

	// Message is a one-line human-readable outcome for the status bar.
	Message string
}

// Launcher probes for and starts an external system monitor.
type Launcher struct {
	candidates []string
	logger     *slog.Logger

	// Injectable for testing.
	lookPath     func(string) (string, error)
	startCommand func(path string) error
}

// New returns a launcher probing the given candidates in order. An empty
// list falls back to DefaultCandidates.
func New(candidates []string, logger *slog.Logger) *Launcher {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Launcher{
		candidates: candidates,
		logger:     logger,
		lookPath:   exec.LookPath,
		startCommand: func(path string) error {
			return exec.Command(path).Start()
		},
	}
}

// Launch starts the first candidate found on PATH. It never blocks on the
// started process and never returns an error; failure is reported in the
// Result so the dashboard can show it without dying.
func (l *Launcher) Launch() Result {
	for _, name := range l.candidates {
		path, err := l.lookPath(name)
		if err != nil {
			continue
		}

		if err := l.startCommand(path); err != nil {
			l.logger.Warn("monitor start failed", "tool", name, "error", err)
			return Result{
				Tool:    name,
				Message: fmt.Sprintf("failed to start %s: %v", name, err),
			}
		}

		l.logger.Info("monitor started", "tool", name, "path", path)
		return Result{
			Launched: true,
			Tool:     name,
			Message:  fmt.Sprintf("launched %s", name),
		}
	}

	return Result{
		Message: fmt.Sprintf("no system monitor found (tried %s)",
			strings.Join(l.candidates, ", ")),
	}
}
