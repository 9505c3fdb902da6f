package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safezone/config"
	"safezone/internal/errors"
	logs "safezone/internal/infra/log"
	"safezone/internal/infra/persistence/postgres"
	"safezone/internal/usecase"
	"safezone/internal/usecase/impl"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "safezonectl",
		Usage: "Operator commands for the safe zone backend",
		Commands: []*cli.Command{
			migrateCommand(),
			cleanupCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Run(ctx, args); err != nil {
		log.Fatal(err)
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withApp(ctx, func(deps appDeps) error {
						if err := postgres.RunMigrations(ctx, deps.DB); err != nil {
							return err
						}
						version, err := postgres.MigrationVersion(ctx, deps.DB)
						if err != nil {
							return err
						}
						fmt.Printf("schema at version %d\n", version)

						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "print the state of every migration",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return withApp(ctx, func(deps appDeps) error {
						if err := postgres.MigrationStatus(ctx, deps.DB); err != nil {
							return err
						}
						current, err := postgres.MigrationVersion(ctx, deps.DB)
						if err != nil {
							return err
						}
						latest, err := postgres.LatestMigrationVersion(deps.DB)
						if err != nil {
							return err
						}
						fmt.Printf("current %d, latest %d\n", current, latest)

						return nil
					})
				},
			},
		},
	}
}

func cleanupCommand() *cli.Command {
	return &cli.Command{
		Name:  "cleanup",
		Usage: "delete incidents and device registrations past retention",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dry-run", Usage: "count what would be deleted without deleting"},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withApp(ctx, func(deps appDeps) error {
				return runCleanup(ctx, os.Stdout, deps.Retention, c.Bool("dry-run"), c.Bool("json"))
			})
		},
	}
}

func runCleanup(ctx context.Context, w io.Writer, retention usecase.RetentionUsecase, dryRun, asJSON bool) error {
	report, err := retention.Sweep(ctx, dryRun)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(w, report)
	}

	verb := "deleted"
	if report.DryRun {
		verb = "would delete"
	}
	fmt.Fprintf(w, "%s %d incidents older than %s\n", verb, report.IncidentsPurged, report.IncidentCutoff.Format(time.DateOnly))
	fmt.Fprintf(w, "%s %d inactive devices older than %s\n", verb, report.DevicesPurged, report.DeviceCutoff.Format(time.DateOnly))

	return nil
}

type appDeps struct {
	DB        *gorm.DB
	Retention usecase.RetentionUsecase
}

// withApp starts the database module, runs fn and stops it again.
func withApp(ctx context.Context, fn func(appDeps) error) error {
	var deps appDeps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewRetentionService,
		),
		fx.Populate(&deps.DB, &deps.Retention),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			log.Printf("stop dependencies: %v", err)
		}
	}()

	return fn(deps)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
