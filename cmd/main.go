package main

import (
	"context"
	"fmt"
	"os"

	"practice-booking-service/cmd/bootstrap"
	"practice-booking-service/config"
	"practice-booking-service/internal/infrastructure/database"
	"practice-booking-service/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "practice-booking",
		Short: "Healthcare practice booking API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.DB)
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg.DB, steps)
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	cmd.AddCommand(downCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with a demo practice",
		RunE: func(cmd *cobra.Command, args []string) error {
			practitioners, _ := cmd.Flags().GetInt("practitioners")
			patients, _ := cmd.Flags().GetInt("patients")
			randSeed, _ := cmd.Flags().GetUint64("seed")

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, logrus.StandardLogger())
			if err != nil {
				return err
			}

			summary, err := bootstrap.NewSeeder(db, logrus.StandardLogger()).Run(context.Background(), seed.Options{
				Practitioners: practitioners,
				Patients:      patients,
				Seed:          randSeed,
			})
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			fmt.Printf("Seeded %q: %d practitioners, %d slots, %d patients.\n",
				summary.PracticeName, summary.Practitioners, summary.Slots, summary.Patients)
			fmt.Printf("Login as %s / %s\n", summary.OwnerEmail, seed.DemoPassword)
			return nil
		},
	}
	cmd.Flags().Int("practitioners", 5, "Number of practitioners to create")
	cmd.Flags().Int("patients", 20, "Number of patients to create")
	cmd.Flags().Uint64("seed", 0, "Random seed, 0 for a random one")
	return cmd
}
