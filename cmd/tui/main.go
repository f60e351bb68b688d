package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-backend/config"
	"todo-backend/pkg/client"
	"todo-backend/pkg/frontend/tui"

	"github.com/charmbracelet/log"
)

func main() {
	logFile := flag.String("log", "todo-tui.log", "File the client log is written to")
	baseURL := flag.String("base-url", "", "Todo backend base URL (default client.base_url)")
	flag.Parse()

	config.ReadConfig(config.ReadConfigOption{Quiet: true, AllowMissingFile: true})
	if *baseURL != "" {
		config.C.Client.BaseURL = *baseURL
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "tui",
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	api := client.NewAPI()
	logger.Info("starting", "base_url", api.BaseURL())
	app := client.NewApp(api, client.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, app); err != nil {
		logger.Error("tui stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		stop()
		f.Close()
		os.Exit(1)
	}
}
