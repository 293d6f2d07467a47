// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	File      string
	LogLevel  string
	LogFormat string
	Style     string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.StandardLogger())

	// AppContainer holds the wired dependencies once PersistentPreRunE has run
	AppContainer *container.Container

	// SharedFlags are the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A personal expense tracker backed by a CSV file.",
		Long: `expense-tracker records dated expenses (amount, category, payment method)
in a CSV file and shows them as tables, category reports and a spending dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Expense CSV file (default from store.file)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Style, "style", "", "Output style (auto, dark, light, notty)")
}

// Setup loads configuration, applies flag overrides and builds AppContainer.
func Setup(cmd *cobra.Command) error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if err := ApplyFlags(cmd, cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Command starting",
		logging.F(logging.FieldCommand, cmd.Name()),
		logging.F(logging.FieldFile, cfg.Store.File))
	return nil
}

// ApplyFlags overrides cfg with the persistent flags the user set.
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("file") {
		if SharedFlags.File == "" {
			return fmt.Errorf("--file must not be empty")
		}
		cfg.Store.File = SharedFlags.File
	}
	if flags.Changed("log-level") {
		if _, err := logrus.ParseLevel(SharedFlags.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %s", SharedFlags.LogLevel)
		}
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		if SharedFlags.LogFormat != "text" && SharedFlags.LogFormat != "json" {
			return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", SharedFlags.LogFormat)
		}
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("style") {
		cfg.Display.Style = SharedFlags.Style
	}
	return nil
}

// GetContainer returns AppContainer or an error when no command set it up.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}
