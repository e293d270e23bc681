package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"cylindertrack/internal/config"
	"cylindertrack/internal/repository/postgres"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the cylindertrack database schema",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newUpCmd(),
		newDownCmd(),
		newStepsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// withMigrator opens the embedded migrations against the configured database.
func withMigrator(fn func(m *migrate.Migrate) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	m, err := postgres.NewMigrator(&cfg.DB)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Up()); err != nil {
					return fmt.Errorf("migration up failed: %w", err)
				}
				cmd.Println("migrations applied successfully")
				return nil
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Down()); err != nil {
					return fmt.Errorf("migration down failed: %w", err)
				}
				cmd.Println("migrations reverted successfully")
				return nil
			})
		},
	}
}

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps N",
		Short: "Apply N migrations, or revert when N is negative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid steps argument: %w", err)
			}
			return withMigrator(func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Steps(n)); err != nil {
					return fmt.Errorf("migration steps failed: %w", err)
				}
				cmd.Printf("applied %d migration steps\n", n)
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("version: none")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				cmd.Printf("version: %d, dirty: %v\n", version, dirty)
				return nil
			})
		},
	}
}
