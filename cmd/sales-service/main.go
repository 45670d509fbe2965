package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/config"
	deliveryhttp "github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http"
	publisher "github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/kafka"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/metrics"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/migrate"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/repository"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/usecase"
)

func main() {
	// .env is optional, real deployments inject env directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.MustLoad()
	logger.Info("config loaded", zap.String("env", cfg.Env))

	db := postgres.MustInitDB(cfg)
	if cfg.SalesDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.SalesDB.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	kafkaPublisher := publisher.NewDefaultKafkaPublisher([]string{
		fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port),
	})

	salesMetrics := metrics.NewSalesMetrics()

	userRepo := repository.NewDefaultUserRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	deviceRepo := repository.NewDefaultDeviceRepository(db)
	allocationRepo := repository.NewDefaultAllocationRepository(db)
	commissionRepo := repository.NewDefaultCommissionRepository(db)
	saleRepo := repository.NewDefaultSaleRepository(db)
	receiptSeq := repository.NewPGReceiptSequence(db)

	userUc := usecase.NewDefaultUserUsecase(userRepo)
	stockUc := usecase.NewDefaultStockUsecase(deviceRepo, userRepo, allocationRepo, kafkaPublisher, salesMetrics)
	commissionUc := usecase.NewDefaultCommissionUsecase(commissionRepo, userRepo, salesMetrics)
	saleUc := usecase.NewDefaultSaleUsecase(saleRepo, deviceRepo, productRepo, userRepo, commissionUc, receiptSeq, kafkaPublisher, salesMetrics)

	e := deliveryhttp.NewRouter(stockUc, saleUc, commissionUc, userUc)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	logger.Info("starting http server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
