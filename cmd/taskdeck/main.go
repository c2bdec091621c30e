package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"taskdeck/internal/storage"
	"taskdeck/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env values feed the TASKDECK_* lookups below; a missing file is fine.
	_ = godotenv.Load()

	var (
		configPath  string
		dbPath      string
		stateFile   string
		exportDir   string
		logLevel    string
		noAltScreen bool
		notifyFlag  bool
	)

	flagSet := pflag.NewFlagSet("taskdeck", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file")
	flagSet.StringVar(&dbPath, "db", "", "path to the SQLite database")
	flagSet.StringVar(&stateFile, "state-file", "", "path to the session state file")
	flagSet.StringVar(&exportDir, "export-dir", "", "directory for exported task reports")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flagSet.BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of on the alternate screen")
	flagSet.BoolVar(&notifyFlag, "desktop-notifications", false, "send desktop notifications for status updates")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(logLevel)}))

	cfg := update.DefaultRuntimeConfig()
	if configPath != "" {
		loaded, err := update.RuntimeConfigFromFile(cfg, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if stateFile != "" {
		cfg.StateFilePath = stateFile
	}
	if exportDir != "" {
		cfg.ExportDir = exportDir
	}
	if noAltScreen {
		cfg.AltScreen = false
	}
	if flagSet.Changed("desktop-notifications") {
		cfg.DesktopNotifications = notifyFlag
	}

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer repo.Close()
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("migrate database %s: %w", cfg.DBPath, err)
	}
	logger.Info("database ready", "path", cfg.DBPath)

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	model := update.NewModelWithConfig(repo, notifier, cfg)
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("taskdeck failed: %w", err)
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `taskdeck — terminal task tracker.

Tasks live in a local SQLite database. The board view lists pending and
completed tasks with add/edit/delete, filtering and CSV/JSON/PDF export;
the dashboard view shows completion metrics. Press ? inside the app for
key bindings, or / for the command palette.

Settings are resolved in order: built-in defaults, then the YAML config
file (--config), then TASKDECK_* environment variables (a local .env
file is honored), then flags.

Usage:
  taskdeck [flags]

Examples:
  # Run with the default taskdeck.db in the current directory
  taskdeck

  # Keep the database and exports somewhere else
  taskdeck --db ~/tasks/taskdeck.db --export-dir ~/tasks/reports

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
