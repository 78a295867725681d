// Zengrowd is the zengrow productivity daemon. It serves the task, habit,
// focus, and mindfulness APIs over HTTP, persists alarms and wellness
// reminders in SQLite, and runs the background checkers that fire them.
//
// Usage:
//
//	# Start with defaults
//	zengrowd serve
//
//	# Configure via file and environment
//	zengrowd serve --config ~/.config/zengrow/config.yaml
//	ZENGROW_SERVER_PORT=9000 zengrowd serve
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Alwaysrakesh/Zen-Grow/internal/alarm"
	"github.com/Alwaysrakesh/Zen-Grow/internal/config"
	"github.com/Alwaysrakesh/Zen-Grow/internal/focus"
	"github.com/Alwaysrakesh/Zen-Grow/internal/habit"
	"github.com/Alwaysrakesh/Zen-Grow/internal/httpapi"
	"github.com/Alwaysrakesh/Zen-Grow/internal/logging"
	"github.com/Alwaysrakesh/Zen-Grow/internal/notify"
	"github.com/Alwaysrakesh/Zen-Grow/internal/persistence"
	"github.com/Alwaysrakesh/Zen-Grow/internal/reminder"
	"github.com/Alwaysrakesh/Zen-Grow/internal/schedule"
	"github.com/Alwaysrakesh/Zen-Grow/internal/task"
	"github.com/Alwaysrakesh/Zen-Grow/internal/telemetry"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "zengrowd",
	Short:   "Personal productivity and wellness daemon",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the zengrowd HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zengrowd\n")
		fmt.Printf("Version:    %s\n", version)
		fmt.Printf("Commit:     %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run starts the daemon and blocks until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting zengrowd",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr()),
		zap.String("database", cfg.Database.Path),
	)

	tel, err := telemetry.New(telemetry.Config{
		ServiceName:    "zengrowd",
		ServiceVersion: version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		_ = tel.Shutdown(context.Background())
	}()

	db, err := persistence.Open(cfg.Database.Path, logger.Named("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if cfg.Reminders.SeedDefaults {
		if err := db.SeedDefaultReminders(ctx, httpapi.DefaultUserID); err != nil {
			return fmt.Errorf("failed to seed reminders: %w", err)
		}
	}

	tasks := task.NewService(logger.Named("task"))
	habits := habit.NewService(logger.Named("habit"))
	focusSvc := focus.NewService(logger.Named("focus"))
	days := schedule.NewDayStore()

	var assistant *schedule.Service
	if cfg.OpenAI.APIKey.IsSet() {
		llm, err := schedule.NewOpenAIClient(schedule.ClientConfig{
			APIKey:  cfg.OpenAI.APIKey.Value(),
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout.Duration(),
		})
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		assistant, err = schedule.NewService(llm, db, days, logger.Named("assistant"))
		if err != nil {
			return fmt.Errorf("failed to create assistant: %w", err)
		}
	} else {
		logger.Warn("no model API key configured, assistant endpoints disabled")
	}

	notifier := notify.NewLogNotifier(logger.Named("notify"))

	if cfg.Alarms.Enabled {
		alarms, err := alarm.NewChecker(db, notifier, httpapi.DefaultUserID, logger.Named("alarm"),
			alarm.WithInterval(cfg.Alarms.CheckInterval.Duration()))
		if err != nil {
			return fmt.Errorf("failed to create alarm checker: %w", err)
		}
		if err := alarms.Start(); err != nil {
			return fmt.Errorf("failed to start alarm checker: %w", err)
		}
		defer alarms.Stop()
	}

	if cfg.Reminders.Enabled {
		reminders, err := reminder.NewChecker(db, notifier, httpapi.DefaultUserID, logger.Named("reminder"),
			reminder.WithInterval(cfg.Reminders.CheckInterval.Duration()))
		if err != nil {
			return fmt.Errorf("failed to create reminder checker: %w", err)
		}
		if err := reminders.Start(); err != nil {
			return fmt.Errorf("failed to start reminder checker: %w", err)
		}
		defer reminders.Stop()
	}

	server, err := httpapi.NewServer(httpapi.Services{
		Tasks:     tasks,
		Habits:    habits,
		Focus:     focusSvc,
		Days:      days,
		Assistant: assistant,
		DB:        db,
	}, logger.Named("http"), &httpapi.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Duration())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
