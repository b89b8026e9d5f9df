package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pawconnect/internal/config"
	"pawconnect/internal/database"
	"pawconnect/internal/middleware"
	jwtsvc "pawconnect/internal/pkg/jwt"
	"pawconnect/internal/repository"
	"pawconnect/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	r := server.NewRouter(server.Options{
		Store:  store,
		Tokens: jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL),
		Session: middleware.SessionConfig{
			Secure:   cfg.CookieSecure,
			SameSite: cfg.SameSite(),
		},
		CORSOrigins: cfg.CORSAllowedOrigins,
		RequestLog:  true,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening addr=%s store=%s", cfg.HTTPAddr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (repository.KVStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreRedis:
		client, err := repository.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil

	case config.StoreSQL:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigrateStore(db); err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewGormStore(db), closeDB, nil
	}

	log.Println("using in-memory session store; data is lost on restart")
	return repository.NewMemoryStore(), func() {}, nil
}
