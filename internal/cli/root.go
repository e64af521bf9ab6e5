// Package cli wires the riji commands: import, parse and preview.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rijikit/riji/internal/diary"
	"github.com/rijikit/riji/internal/version"
)

// NewRootCommand creates the top-level Cobra command hosting the subcommands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "riji",
		Short:   "Import diary app exports into a Markdown note vault.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newImportCommand(ctx),
		newParseCommand(ctx),
		newPreviewCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}

// initConfig loads ~/.riji/config.yaml when present. A missing file is fine;
// every key has a default.
func initConfig() error {
	viper.SetDefault("vault", "")
	viper.SetDefault("strategy", string(diary.StrategyNearestDate))
	viper.SetDefault("dialect", dialectAuto)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(home, ".riji"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).ExecuteContext(ctx)
}

// Main is a helper used by cmd/riji/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
