// Package cli wires the toastbar command line: config loading, flag
// overrides, log setup and the program run.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastbar/internal/app"
	"github.com/riordanpawley/toastbar/internal/config"
	"github.com/riordanpawley/toastbar/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// Runner starts the program with the effective config
type Runner func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error

type rootFlags struct {
	configPath  string
	rtl         bool
	noMouse     bool
	debugMode   bool
	logFilePath string

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

// NewRootCmd builds the command tree. run is called by the root command;
// RunTUI in production.
func NewRootCmd(run Runner) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "toastbar",
		Short: "toastbar - undo toasts for a terminal mailbox",
		Long:  "toastbar is a terminal mailbox demo whose archive, delete and mark-read actions can be undone from a toast bar",
		Example: `  toastbar
  toastbar --rtl
  toastbar --config ./demo.json --debug`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			flags.cfg = cfg

			// Set up logging before the TUI owns the terminal
			if err := flags.setupLogging(); err != nil {
				level := slog.LevelInfo
				if flags.debugMode {
					level = slog.LevelDebug
				}
				flags.logger = logging.NewLogger(cmd.ErrOrStderr(), level)
				slog.SetDefault(flags.logger)
				flags.logger.Warn("Failed to open log file, logging to stderr", "error", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logFile != nil {
				if err := flags.logFile.Close(); err != nil {
					slog.Error("Failed to close log file", "error", err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.logger.Info("starting", "version", Version, "theme", flags.cfg.Theme, "rtl", flags.cfg.Layout.RTL)
			return run(cmd.Context(), flags.cfg, flags.logger)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a config file (default: ./"+config.FileName+")")
	cmd.PersistentFlags().BoolVarP(&flags.debugMode, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFilePath, "log-file", "", "Path to the log file (default: from config)")
	cmd.Flags().BoolVar(&flags.rtl, "rtl", false, "Lay the toast bar out right to left")
	cmd.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newConfigCmd(&flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the config file and applies the flags set on the command
// line
func (f *rootFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if changed(cmd, "rtl") {
		cfg.Layout.RTL = f.rtl
	}
	if changed(cmd, "no-mouse") {
		cfg.Layout.SetMouse(!f.noMouse)
	}
	if f.logFilePath != "" {
		cfg.Log.File = f.logFilePath
	}
	if f.debugMode {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// changed reports whether a local flag was set; subcommands don't carry the
// root's layout flags
func changed(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func (f *rootFlags) setupLogging() error {
	logger, closer, err := logging.Setup(logging.Options{
		File:       f.cfg.Log.File,
		Level:      f.cfg.Log.Level,
		MaxSizeMB:  f.cfg.Log.MaxSizeMB,
		MaxBackups: f.cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	f.logger = logger
	f.logFile = closer
	return nil
}

// Execute runs the command tree with args
func Execute(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	rootCmd := NewRootCmd(RunTUI)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// RunTUI runs the mailbox until the user quits
func RunTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Layout.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app.New(cfg, app.WithContext(ctx), app.WithLogger(logger)), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
