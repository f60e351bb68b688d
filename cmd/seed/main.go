package main

import (
	"context"
	"flag"
	"log"

	"todo-backend/config"
	"todo-backend/pkg/adapter/repository/todorepository"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"

	"go.uber.org/zap"
)

var seedTodos = []string{
	"Buy milk",
	"Walk the dog",
	"Read a chapter",
}

func main() {
	force := flag.Bool("force", false, "Insert the sample todos even when the table is not empty")
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

	ctx := context.Background()
	repo := todorepository.NewTodoRepository(gateway)

	n, err := repo.Count(ctx)
	if err != nil {
		l.Fatal("failed to count todos", zap.Error(err))
	}
	if n > 0 && !*force {
		l.Info("todos already present, skipping seed", zap.Int("count", n))
		return
	}

	for _, text := range seedTodos {
		todo, err := repo.Create(ctx, model.CreateTodoInput{Todo: text})
		if err != nil {
			l.Fatal("failed to seed todo", zap.String("todo", text), zap.Error(err))
		}
		l.Info("seeded todo", zap.Int64("id", todo.ID), zap.String("todo", todo.Todo))
	}
}
