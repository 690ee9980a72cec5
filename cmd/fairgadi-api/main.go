// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fairgadi/internal/auth"
	"fairgadi/internal/config"
	httptransport "fairgadi/internal/http"
	"fairgadi/internal/infra"
	gmaps "fairgadi/internal/maps"
	"fairgadi/internal/modules/fare"
	"fairgadi/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	userStore := user.NewStore(dbPool)
	if err := userStore.InitSchema(ctx); err != nil {
		logger.Fatal("init schema", zap.Error(err))
	}
	userSvc := user.NewService(userStore)

	sessionStore := auth.NewSessionStore(redisClient)
	tokenManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, sessionStore)

	distanceSvc, err := gmaps.NewDistanceService(cfg.Maps.APIKey, cfg.Maps.UpstreamTimeout)
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}
	fareSvc := fare.NewService(distanceSvc, fare.DefaultCatalog())

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Fare:                fareSvc,
		User:                userSvc,
		Tokens:              tokenManager,
		Logger:              logger,
		RequireEstimateAuth: cfg.Auth.EstimateAuth,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
