package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-backend/config"
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"
	"todo-backend/pkg/infrastructure/router"
	"todo-backend/pkg/registry"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	l, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer l.Sync()

	gateway := newDBClient(l)
	ctrl := newController(gateway)

	e := router.New(ctrl, router.Options{
		Logger: l,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		l.Info("server starting", zap.String("address", ":"+config.C.Server.Address))
		if err := e.Start(":" + config.C.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var result *multierror.Error
	if err := e.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := gateway.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		l.Fatal("shutdown failed", zap.Error(err))
	}
	l.Info("server stopped")
}

func newDBClient(l *zap.Logger) *datastore.Gateway {
	gateway, err := datastore.NewClient(datastore.WithLogger(l))
	if err != nil {
		l.Fatal("failed to open db connection", zap.Error(err))
	}
	return gateway
}

func newController(gateway *datastore.Gateway) controller.Controller {
	r := registry.NewWithOptions(gateway, registry.RegistryOptions{
		StrictNotFound: config.C.API.StrictNotFound,
	})
	return r.NewController()
}
