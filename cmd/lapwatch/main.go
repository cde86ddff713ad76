package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/sentry_ext"
	"github.com/lapwatch/lapwatch/internal/stopwatch"
	"github.com/lapwatch/lapwatch/internal/storage"
	"github.com/lapwatch/lapwatch/internal/tickloop"
	"github.com/lapwatch/lapwatch/internal/tui"
	"github.com/lapwatch/lapwatch/internal/version"
	"github.com/lapwatch/lapwatch/internal/watcher"
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	dataDir := flag.String("data-dir", "",
		"directory for lap history and preferences (default: the user config dir)")
	interval := flag.Duration("interval", tickloop.DefaultInterval,
		"how often the display refreshes")
	fresh := flag.Bool("fresh", false,
		"start with a clean timer instead of restoring the last session")
	showVersion := flag.Bool("version", false,
		"print the version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lapwatch - a drift-free terminal stopwatch\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  lapwatch [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  LAPWATCH_DATA_DIR         Where lap history and preferences are stored\n")
		fmt.Fprintf(os.Stderr, "  LAPWATCH_DEBUG            Enable debug logging (creates lapwatch.debug.log)\n")
		fmt.Fprintf(os.Stderr, "  LAPWATCH_ERROR_REPORTING  Set to false to disable error reporting\n")
		fmt.Fprintf(os.Stderr, "  LAPWATCH_SENTRY_DSN       Error reporting destination\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Println("lapwatch", version.Version)
		return 0
	}

	// Sentry reporting.
	enableErrorReporting := true
	if os.Getenv("LAPWATCH_ERROR_REPORTING") != "" {
		enableErrorReporting, _ = strconv.ParseBool(os.Getenv("LAPWATCH_ERROR_REPORTING"))
	}

	sentryClient := sentry_ext.New(sentry_ext.Params{
		Disabled:         !enableErrorReporting,
		DSN:              os.Getenv("LAPWATCH_SENTRY_DSN"),
		AttachStacktrace: true,
		Release:          version.Version,
		Environment:      version.Environment,
	})
	defer sentryClient.Flush(2 * time.Second)

	// Enable debug logging if LAPWATCH_DEBUG env var is set.
	var writer io.Writer
	if os.Getenv("LAPWATCH_DEBUG") != "" {
		loggerFile, err := os.OpenFile("lapwatch.debug.log", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Println("fatal:", err)
			return 1
		}
		writer = loggerFile
		defer func() {
			_ = loggerFile.Close()
		}()
	} else {
		writer = io.Discard
	}

	logger := observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(
			writer,
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		)),
		&observability.CoreLoggerParams{
			Tags:   observability.Tags{"version": version.Version},
			Sentry: sentryClient,
		},
	)

	dir := *dataDir
	if dir == "" {
		dir = storage.DefaultDir()
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create data directory: %v\n", err)
		return 1
	}
	logger.Info("main: starting", "data_dir", dir)

	store := storage.NewFileStore(afero.NewOsFs(), dir, logger)

	// Engine snapshots and preference change notifications reach the UI
	// through this channel.
	events := make(chan tea.Msg, 64)

	engine := stopwatch.New(stopwatch.Params{
		Interval: *interval,
		Storage:  store,
		Logger:   logger,
		OnTick:   tui.ForwardSnapshots(events),
		Resume:   !*fresh,
	})
	defer engine.Close()

	prefs := tui.LoadPreferences(store, logger)

	// Write the preferences file up front so the watcher has a file to
	// poll even on a first run.
	prefs.Persist()

	prefsWatcher := watcher.New(watcher.Params{Logger: logger})
	defer prefsWatcher.Finish()

	if err := prefsWatcher.Watch(store.PreferencesPath(), tui.NotifyPrefsChanged(events)); err != nil {
		logger.CaptureWarn("main: not watching preferences", "error", err.Error())
	}

	model := tui.New(tui.Params{
		Engine: engine,
		Prefs:  prefs,
		Events: events,
		Logger: logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error(fmt.Sprintf("lapwatch: %v", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
