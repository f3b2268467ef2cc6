package main

import (
	"context"
	"fmt"
	"time"

	"github.com/linskybing/recruit-go/internal/api/middleware"
	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/config"
	"github.com/linskybing/recruit-go/internal/config/db"
	"github.com/linskybing/recruit-go/internal/cron"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "recruitctl",
		Short:         "Administer the candidate workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
		},
	}
	root.AddCommand(
		newMigrateCmd(),
		newSeedCatalogCmd(),
		newSweepCmd(),
		newTokenCmd(),
	)
	return root
}

func openRepos() (*repository.Repos, error) {
	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return repository.NewRepositories(db.DB), nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the workflow schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openRepos(); err != nil {
				return err
			}
			fmt.Println("Schema up to date")
			return nil
		},
	}
}

func newSeedCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-catalog",
		Short: "Upsert the default main and sub status catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := openRepos()
			if err != nil {
				return err
			}
			if err := application.NewStatusService(repos).SeedCatalog(context.Background()); err != nil {
				return err
			}
			fmt.Println("Status catalog seeded")
			return nil
		},
	}
}

func newSweepCmd() *cobra.Command {
	var once bool
	var staleDays int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Assign CREs to candidates stuck in RNR",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !once {
				return fmt.Errorf("use the scheduler binary for periodic sweeps; pass --once to run a single pass")
			}
			repos, err := openRepos()
			if err != nil {
				return err
			}
			ctx := context.Background()
			publisher, closePublisher := events.NewPublisher(ctx, config.RedisURL, config.EventChannelPrefix)
			defer closePublisher()

			staffing := application.NewStaffingService(repos, publisher, config.SystemUserID)
			if !cmd.Flags().Changed("stale-days") {
				staleDays = config.RNRStaleDays
			}
			res, err := cron.NewRNRSweep(staffing, staffing, staleDays).Run(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Scanned %d, assigned %d, failed %d\n", res.Scanned, res.Assigned, res.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single sweep and exit")
	cmd.Flags().IntVar(&staleDays, "stale-days", 3, "Days in RNR before a CRE is assigned")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID uint
	var username string
	var admin bool
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a JWT for a workflow user",
		RunE: func(cmd *cobra.Command, args []string) error {
			middleware.Init()
			token, err := middleware.GenerateToken(userID, username, admin, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().UintVar(&userID, "user-id", 0, "User ID")
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant admin claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
