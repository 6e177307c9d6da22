package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hospital-dashboard/cmd/bootstrap"
	"hospital-dashboard/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// defaultPatientID is the demo patient the dashboard opens on.
const defaultPatientID int64 = 1

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.Migrate(ctx); err != nil {
				app.Close()
				return err
			}
			if err := app.InitServer(ctx); err != nil {
				app.Close()
				return err
			}
			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (or roll back with --down N)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			if down > 0 {
				return database.MigrateDown(app.DB, down, app.Log)
			}
			return database.Migrate(app.DB, app.Log)
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "number of migrations to roll back")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo patient when the database is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := database.Seed(cmd.Context(), app.DB, app.Log)
			if err != nil {
				return err
			}
			if id == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already has data, seed skipped.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database seeded with patient id: %d\n", id)
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	var (
		patientID int64
		essential bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the text summary of a patient record",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()
			app.InitAssistant()

			build := app.Summaries.BuildFull
			if essential {
				build = app.Summaries.BuildEssential
			}

			text, err := build(cmd.Context(), patientID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().Int64Var(&patientID, "patient", defaultPatientID, "patient id")
	cmd.Flags().BoolVar(&essential, "essential", false, "print only the essentials")
	return cmd
}

func askCmd() *cobra.Command {
	var (
		patientID int64
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a question about a patient record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()
			app.InitAssistant()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := app.Assistant.Answer(ctx, patientID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Reply)
			app.Log.WithFields(logrus.Fields{
				"state":  result.State,
				"reason": result.Reason,
			}).Debug("assistant outcome")
			return nil
		},
	}

	cmd.Flags().Int64Var(&patientID, "patient", defaultPatientID, "patient id")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline")
	return cmd
}
