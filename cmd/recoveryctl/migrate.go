package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/recoverylock-backend/internal/adapter/postgres/migrations"
	"github.com/heartmarshall/recoverylock-backend/internal/app"
	"github.com/heartmarshall/recoverylock-backend/internal/config"
)

var errNoDSN = errors.New("no database configured: pass --dsn or set DATABASE_DSN")

type migrateResult struct {
	Action   string              `json:"action"             yaml:"action"`
	Versions []int64             `json:"versions,omitempty" yaml:"versions,omitempty"`
	Status   []migrations.Status `json:"status,omitempty"   yaml:"status,omitempty"`
}

func (m migrateResult) writeText(w io.Writer) error {
	var b strings.Builder
	switch m.Action {
	case "status":
		for _, s := range m.Status {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(&b, "%-6d %-8s %s\n", s.Version, state, s.Path)
		}
	default:
		if len(m.Versions) == 0 {
			b.WriteString("no migrations to run\n")
		}
		for _, v := range m.Versions {
			fmt.Fprintf(&b, "%s %d\n", m.Action, v)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newMigrateCmd(root *rootOptions) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the check-in history schema",
		Long: `Apply, roll back or list the embedded PostgreSQL migrations.

Examples:
  recoveryctl migrate up --dsn postgres://localhost/recoverylock
  recoveryctl migrate status`,
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default from config)")

	run := func(action string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			target, err := resolveDSN(dsn)
			if err != nil {
				return err
			}
			res, err := runMigration(ctx, target, action)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.output, res)
		}
	}

	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply all pending migrations", Args: cobra.NoArgs, RunE: run("up")},
		&cobra.Command{Use: "down", Short: "Roll back the latest migration", Args: cobra.NoArgs, RunE: run("down")},
		&cobra.Command{Use: "status", Short: "List migrations and whether they are applied", Args: cobra.NoArgs, RunE: run("status")},
	)
	return cmd
}

func resolveDSN(flag string) (string, error) {
	if strings.TrimSpace(flag) != "" {
		return flag, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if !cfg.Database.Enabled() {
		return "", errNoDSN
	}
	return cfg.Database.DSN, nil
}

func runMigration(ctx context.Context, dsn, action string) (migrateResult, error) {
	db, err := app.OpenSQL(ctx, dsn)
	if err != nil {
		return migrateResult{}, err
	}
	defer db.Close()

	res := migrateResult{Action: action}
	switch action {
	case "up":
		res.Versions, err = migrations.Up(ctx, db)
	case "down":
		var v int64
		v, err = migrations.Down(ctx, db)
		if v > 0 {
			res.Versions = []int64{v}
		}
	case "status":
		res.Status, err = migrations.List(ctx, db)
	default:
		err = fmt.Errorf("unknown migrate action %q", action)
	}
	return res, err
}
