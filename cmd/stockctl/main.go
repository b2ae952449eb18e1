// Command stockctl runs operator tasks against the stockroom database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stockroom/internal/app"
	"stockroom/internal/config"
	"stockroom/internal/logging"
)

var (
	verbose bool
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "stockctl",
	Short:         "Operator tool for the stockroom service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(crowdedCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(invalidateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env is what every subcommand starts from.
type env struct {
	cfg    *config.AppConfig
	logger *zap.Logger
}

func newEnv() env {
	cfg := config.Load()
	return env{cfg: cfg, logger: logging.New(cfg.Location(), verbose || cfg.Debug)}
}

// withApp connects every backend, runs fn and releases the connections.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	e := newEnv()
	defer func() { _ = e.logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	a, err := app.New(ctx, e.cfg, nil, e.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			e.logger.Warn("close connections", zap.Error(err))
		}
	}()
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
