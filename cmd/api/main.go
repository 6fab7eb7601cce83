package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "bopLand/docs"
	"bopLand/internal/api/handlers"
	"bopLand/internal/api/server"
	"bopLand/internal/auth"
	"bopLand/internal/config"
	"bopLand/internal/domain"
	"bopLand/internal/forecast"
	"bopLand/internal/logger"
	"bopLand/internal/service"
	storageGorm "bopLand/internal/storage/gorm"
)

const metricsInterval = 15 * time.Second

// @title        BOP Land API
// @version      1.0
// @description  Учёт BOP сонд, их клапанов и превенторов, тестов и их одобрения.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}

	envConfig, err := config.NewEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	db, err := storageGorm.ConnectDB(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	ctx, cancelMetrics := context.WithCancel(context.Background())
	defer cancelMetrics()

	if err := storageGorm.StartMetrics(ctx, db, metricsInterval); err != nil {
		log.Fatal().Err(err).Msg("failed to start metrics collection")
	}

	tokens := auth.NewTokenManager(envConfig.JWT.Secret, envConfig.JWT.TTL)
	forecastClient := forecast.NewClient(envConfig.Forecast.BaseURL, envConfig.Forecast.Timeout)
	appService := service.New(storageGorm.NewTxManager(db), tokens, forecastClient)

	if envConfig.SeedData {
		err := appService.Seed(ctx, domain.RegisterInput{
			Name:     envConfig.Seed.AdminName,
			Email:    envConfig.Seed.AdminEmail,
			Password: envConfig.Seed.AdminPassword,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed initial data")
		}
	}

	appHandler := handlers.NewHandler(appService, tokens, envConfig.CORSAllowedOrigins)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(shutdownCtx)
	cancelMetrics()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("service shutdown gracefully")
}
