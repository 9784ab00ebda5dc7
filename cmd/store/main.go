package main

import (
	"os"

	"github.com/joho/godotenv"

	catalogrepo "github.com/sakuraclothing/store-cli/internal/catalog/repository"
	catalogservice "github.com/sakuraclothing/store-cli/internal/catalog/service"
	"github.com/sakuraclothing/store-cli/internal/cli"
	orderrepo "github.com/sakuraclothing/store-cli/internal/order/repository"
	orderservice "github.com/sakuraclothing/store-cli/internal/order/service"
	"github.com/sakuraclothing/store-cli/internal/platform/config"
	"github.com/sakuraclothing/store-cli/internal/platform/logger"
	userrepo "github.com/sakuraclothing/store-cli/internal/user/repository"
	userservice "github.com/sakuraclothing/store-cli/internal/user/service"
)

func main() {
	// .env opsional; environment yang sudah ada tidak ditimpa.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	// Log operasional masuk ke file supaya tidak mengotori layar menu.
	if logFile, err := os.OpenFile("store.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		defer logFile.Close()
		logger.SetOutput(logFile)
	}

	seedAdmin, err := userservice.DefaultAdmin(cfg.BcryptCost)
	if err != nil {
		logger.Error("Failed to prepare default admin account", err)
		os.Exit(1)
	}

	users, err := userrepo.NewJSONUserRepository(cfg.UsersPath(), seedAdmin)
	if err != nil {
		logger.Error("Failed to open users file", err)
		os.Exit(1)
	}
	catalog, err := catalogrepo.NewJSONCatalogRepository(cfg.CatalogPath())
	if err != nil {
		logger.Error("Failed to open catalog file", err)
		os.Exit(1)
	}
	history := orderrepo.NewJSONHistoryRepository(cfg.HistoryPath())

	shell, err := cli.NewShell(
		userservice.NewUserService(users, cfg.BcryptCost),
		catalogservice.NewCatalogService(catalog, cfg.LowStockThreshold),
		orderservice.NewCheckoutService(catalog, history),
	)
	if err != nil {
		logger.Error("Failed to start shell", err)
		os.Exit(1)
	}
	defer shell.Close()

	if err := shell.Run(); err != nil {
		logger.Error("Session ended with error", err)
		os.Exit(1)
	}
}
