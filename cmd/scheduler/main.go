package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/linskybing/recruit-go/internal/application"
	"github.com/linskybing/recruit-go/internal/config"
	"github.com/linskybing/recruit-go/internal/config/db"
	"github.com/linskybing/recruit-go/internal/cron"
	"github.com/linskybing/recruit-go/internal/events"
	"github.com/linskybing/recruit-go/internal/repository"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, closePublisher := events.NewPublisher(ctx, config.RedisURL, config.EventChannelPrefix)
	defer closePublisher()

	repos := repository.NewRepositories(db.DB)
	staffing := application.NewStaffingService(repos, publisher, config.SystemUserID)
	sweep := cron.NewRNRSweep(staffing, staffing, config.RNRStaleDays)
	sched := cron.NewScheduler(sweep, config.RNRSweepSpec)

	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Shutdown signal")
	cancel()
	sched.Stop()
}
