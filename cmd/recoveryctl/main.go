// Command recoveryctl is an operator CLI for the reflection service: it
// prints the current theme, generates reflections locally or against a
// server, runs database migrations and checks server health.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recoverylock-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "recoveryctl",
		Short: "Operator CLI for the Recovery Lock reflection service",
		Long: `recoveryctl works with the reflection service from the command line.

Configuration is read the same way as the server: CONFIG_PATH or ./config.yaml,
overridden by environment variables.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	root.AddCommand(
		newThemeCmd(opts),
		newReflectCmd(opts),
		newMigrateCmd(opts),
		newHealthCmd(opts),
	)
	return root
}
