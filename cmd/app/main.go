package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	storage, err := cmd.OpenStorage(configs)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, storage, logger)

	loaded, err := app.CreateLoadDataCommandHandler().Handle(context.Background(), commands.NewLoadDataCommand())
	if err != nil {
		log.Fatalf("Error loading data: %v", err)
	}
	logger.Info("Data loaded",
		"accounts", loaded.Accounts,
		"menu_items", loaded.MenuItems,
		"promo_codes", loaded.PromoCodes,
		"seeded_accounts", loaded.SeededAccounts,
		"seeded_menu", loaded.SeededMenu,
		"seeded_promo_codes", loaded.SeededPromoCodes,
	)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	jobManager.StartAll()

	startWebServer(app, configs.HTTPPort, logger)

	jobManager.StopAll()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := jobManager.FinalFlush(ctx); err != nil {
		logger.Error("Final flush failed", "error", err)
		return
	}
	logger.Info("Stopped")
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the process environment and defaults still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		StorageDriver:  envOr("STORAGE_DRIVER", cmd.StorageDriverFile),
		DataDir:        envOr("DATA_DIR", "data"),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		FlushSchedule:  envOr("FLUSH_SCHEDULE", "0 */5 * * * *"),
		ReportSchedule: envOr("REPORT_SCHEDULE", "0 * * * * *"),
	}
}

func envOr(key, fallback string) string {
	return cmp.Or(os.Getenv(key), fallback)
}

// startWebServer serves until SIGINT or SIGTERM, then shuts the server down.
func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpin.NewEcho(app.CreateHTTPServer())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
