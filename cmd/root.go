package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/deskcycle/internal/config"
	"github.com/Norgate-AV/deskcycle/internal/engine"
	"github.com/Norgate-AV/deskcycle/internal/hotkey"
	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/timeouts"
	"github.com/Norgate-AV/deskcycle/internal/tray"
	"github.com/Norgate-AV/deskcycle/internal/version"
	"github.com/Norgate-AV/deskcycle/internal/windows"
)

// RootCmd is the root command for the deskcycle CLI application.
var RootCmd = &cobra.Command{
	Use:          "deskcycle",
	Short:        "deskcycle - Wallpaper, focus and hotkeys per Windows virtual desktop",
	Version:      version.GetVersion(),
	Args:         cobra.NoArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().StringP("config", "c", "", "settings file (default %APPDATA%\\deskcycle\\config.yaml)")
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// loadSettings reads the settings file, creating it with defaults when it
// does not exist so "Settings" always has something to open
func loadSettings(path string, log logger.LoggerInterface) (config.Settings, error) {
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		log.Info("Creating default settings", slog.String("path", path))
		if err := config.Save(path, s); err != nil {
			return config.Settings{}, err
		}
	}

	return s, nil
}

// relay forwards callbacks from OS threads to the manager once it exists
type relay struct {
	mgr atomic.Pointer[engine.Manager]
}

func (r *relay) post(ev engine.Event) {
	if m := r.mgr.Load(); m != nil {
		m.Post(ev)
	}
}

// setupSignalHandlers turns console close, Ctrl+C and SIGTERM into a quit
// request and waits for the manager to finish its teardown
func setupSignalHandlers(log logger.LoggerInterface, r *relay, cancel context.CancelFunc) {
	_ = windows.SetConsoleCtrlHandler(func(ctrlType uint32) uintptr {
		log.Debug("Received console control event",
			slog.String("type", windows.GetCtrlTypeName(ctrlType)),
			slog.Uint64("code", uint64(ctrlType)),
		)

		r.post(engine.Quit())

		// Windows terminates the process once the handler returns
		if m := r.mgr.Load(); m != nil {
			select {
			case <-m.Done():
			case <-time.After(timeouts.ShutdownTimeout):
				log.Warn("Timed out waiting for shutdown")
			}
		}

		return 1
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("Interrupt signal received, shutting down", slog.Any("signal", sig))
		cancel()
	}()
}

// runTray wires the OS backend, the tray and the settings watcher to a
// manager and blocks until the tray exits
func runTray(cfg *Config, log logger.LoggerInterface) error {
	settings, err := loadSettings(cfg.ConfigPath, log)
	if err != nil {
		return err
	}

	r := &relay{}

	client, err := windows.NewClient(log, windows.DesktopEvents{
		Changed:   func() { r.post(engine.DesktopChanged()) },
		Created:   func() { r.post(engine.DesktopCreated()) },
		Destroyed: func() { r.post(engine.DesktopDestroyed()) },
	})
	if err != nil {
		return fmt.Errorf("virtual desktop backend unavailable: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		started atomic.Bool
		mgr     *engine.Manager
		runErr  = make(chan error, 1)
		tr      *tray.Tray
	)

	tr = tray.New(log, tray.Options{
		Tooltip:    logger.AppName,
		OnSettings: func() { r.post(engine.OpenSettings()) },
		OnQuit:     func() { r.post(engine.Quit()) },
		OnReady: func() {
			started.Store(true)

			go func() {
				err := mgr.Run(ctx)
				runErr <- err
				tr.Quit()
			}()
		},
	})

	mgr, err = engine.NewManager(log, engine.Dependencies{
		Desktops:  client.Desktops,
		Windows:   client.Window,
		Wallpaper: client.Wallpaper,
		Icon:      tr,
		Notifier:  tr,
		Shell:     client.Shell,
		Registrar: hotkey.NewRegistrar(log),
	}, engine.Options{
		Settings:   settings,
		ConfigPath: cfg.ConfigPath,
	})
	if err != nil {
		return err
	}

	r.mgr.Store(mgr)

	watcher, err := config.NewWatcher(cfg.ConfigPath, log, func(s config.Settings) {
		r.post(engine.SettingsChanged(s))
	})
	if err != nil {
		log.Warn("Settings will not reload automatically", slog.Any("error", err))
	} else {
		defer watcher.Close()
	}

	setupSignalHandlers(log, r, cancel)

	log.Debug("Elevation", slog.Bool("elevated", windows.IsElevated()))

	if err := tr.Run(); err != nil {
		return err
	}

	if !started.Load() {
		return nil
	}

	// The tray can also go away on its own (explorer restart, session end)
	r.post(engine.Quit())

	select {
	case err := <-runErr:
		return err
	case <-time.After(timeouts.ShutdownTimeout):
		log.Warn("Timed out waiting for shutdown")
		return nil
	}
}

// Execute runs the tray instance.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting deskcycle", version.LogAttrs()...)
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.String("config", cfg.ConfigPath),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details\n")
		}
	}()

	if err := runTray(cfg, log); err != nil {
		log.Error("deskcycle stopped with an error", slog.Any("error", err))
		return err
	}

	log.Info("deskcycle stopped")
	return nil
}
