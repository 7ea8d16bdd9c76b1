package main

import (
	"fmt"
	"log"

	"github.com/campuskart/campus-market-service/internal/config"
	"github.com/campuskart/campus-market-service/internal/delivery/httpapi"
	publisher "github.com/campuskart/campus-market-service/internal/infrastructure/kafka"
	"github.com/campuskart/campus-market-service/internal/infrastructure/metrics"
	"github.com/campuskart/campus-market-service/internal/infrastructure/migrate"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/repository"
	"github.com/campuskart/campus-market-service/internal/security"
	"github.com/campuskart/campus-market-service/internal/usecase"
	orderusecase "github.com/campuskart/campus-market-service/internal/usecase/order"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MarketDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MarketDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka order events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	orderPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer orderPublisher.Close()

	// Metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	cartRepo := repository.NewDefaultCartRepository(db)

	// Token manager
	tokens := security.NewTokenManager(cfg.Auth.JWTSecret)

	// Usecases
	userUsecase := usecase.NewDefaultUserUsecase(userRepo, tokens, cfg.Auth.EmailDomain)
	productUsecase := usecase.NewDefaultProductUsecase(productRepo)
	cartUsecase := usecase.NewDefaultCartUsecase(cartRepo, productRepo)
	orderUsecase := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		productRepo,
		cartRepo,
		orderPublisher,
		orderMetrics,
	)

	// HTTP handlers
	userHandler := httpapi.NewUserHandler(userUsecase)
	productHandler := httpapi.NewProductHandler(productUsecase)
	cartHandler := httpapi.NewCartHandler(cartUsecase)
	orderHandler := httpapi.NewOrderHandler(orderUsecase)

	router := httpapi.NewRouter(tokens, userHandler, productHandler, cartHandler, orderHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
