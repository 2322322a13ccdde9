package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/cache"
	"github.com/nftshinessy/montoks/internal/client"
	"github.com/nftshinessy/montoks/internal/config"
	"github.com/nftshinessy/montoks/internal/pkg/logger"
	"github.com/nftshinessy/montoks/internal/restapi"
	"github.com/nftshinessy/montoks/internal/service"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Secrets (API keys, RPC URL) come from the environment; .env is
	// optional and only used in development.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on environment")
	}

	cfgPath := getEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.NewLogger(cfg.Logging)
	defer zapLogger.Sync()
	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	monorailClient := client.NewMonorailClient(
		cfg.Monorail.BaseURL,
		cfg.Monorail.Identifier,
		time.Duration(cfg.Monorail.RequestTimeoutMillis)*time.Millisecond,
		zapLogger,
	)
	blockvisionClient := client.NewBlockvisionClient(
		cfg.Blockvision.BaseURL,
		cfg.Blockvision.ApiKey,
		time.Duration(cfg.Blockvision.RequestTimeoutMillis)*time.Millisecond,
		zapLogger,
	)
	etherscanClient := client.NewEtherscanClient(
		cfg.Etherscan.BaseURL,
		cfg.Etherscan.ApiKey,
		cfg.Etherscan.ChainID,
		time.Duration(cfg.Etherscan.RequestTimeoutMillis)*time.Millisecond,
		zapLogger,
	)
	gasClient := client.NewGasPriceClient(
		cfg.Rpc.URL,
		time.Duration(cfg.Rpc.RequestTimeoutMillis)*time.Millisecond,
		zapLogger,
	)
	zapLogger.Info("Upstream clients initialized")

	tokenCache := cache.NewTokenCache(
		cfg.Cache.MaxEntries,
		time.Duration(cfg.Cache.TTLHours)*time.Hour,
		zapLogger,
	)

	holderCounter := service.NewHolderCounter(blockvisionClient, zapLogger)
	creatorResolver := service.NewCreatorResolver(etherscanClient, zapLogger)
	tokenService := service.NewTokenService(
		monorailClient,
		blockvisionClient,
		holderCounter,
		creatorResolver,
		tokenCache,
		zapLogger,
	)
	priceService := service.NewPriceService(
		monorailClient,
		gasClient,
		time.Duration(cfg.Prices.MonTTLSeconds)*time.Second,
		time.Duration(cfg.Prices.GasTTLSeconds)*time.Second,
		zapLogger,
	)
	zapLogger.Info("Services initialized")

	tokenHandler := restapi.NewTokenHandler(tokenService, zapLogger)
	proxyHandler := restapi.NewProxyHandler(monorailClient, blockvisionClient, priceService, zapLogger)
	router := restapi.SetupRouter(tokenHandler, proxyHandler, cfg, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
