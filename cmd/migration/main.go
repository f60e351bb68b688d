package main

import (
	"context"
	"log"

	"todo-backend/config"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"

	"entgo.io/ent/dialect/sql/schema"
	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	l, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer l.Sync()

	gateway, err := datastore.NewClient(datastore.WithLogger(l))
	if err != nil {
		l.Fatal("failed opening db client", zap.Error(err))
	}
	defer gateway.Close()
	createDBSchema(l, gateway)
}

func createDBSchema(l *zap.Logger, gateway *datastore.Gateway) {
	if err := datastore.CreateSchema(
		context.Background(),
		gateway,
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
	); err != nil {
		l.Fatal("failed creating schema resources", zap.Error(err))
	}
	l.Info("schema created", zap.String("dialect", gateway.Dialect()))
}
