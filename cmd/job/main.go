package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"todo-backend/config"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"
	"todo-backend/pkg/infrastructure/scheduler"
	"todo-backend/pkg/registry"

	"go.uber.org/zap"
)

func main() {
	once := flag.Bool("once", false, "Run the stats job once and exit")
	flag.Parse()

	config.ReadConfig(config.ReadConfigOption{})

	l, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer l.Sync()

	gateway, err := datastore.NewClient()
	if err != nil {
		l.Fatal("failed to open db connection", zap.Error(err))
	}
	defer gateway.Close()

	ctrl := registry.New(gateway).NewController()
	s := scheduler.NewScheduler(ctrl.Todo, l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		if _, err := s.RunStatsJob(ctx); err != nil {
			l.Fatal("stats job failed", zap.Error(err))
		}
		return
	}

	if err := s.Start(ctx, config.C.Cron.StatsSchedule); err != nil {
		l.Fatal("failed to start scheduler", zap.Error(err))
	}
	<-ctx.Done()
	s.Stop()
}
